package driver

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oisee/desbitslice/pkg/result"
)

// WorkerPool runs shard searches across multiple OS threads, one shard at
// a time per worker, worker i pinned to logical CPU i mod NumCPU. Adapted from the
// teacher's pkg/search/worker.go: the same buffered-channel dispatch,
// atomic counters, and ticker-driven progress line, generalized from Z80
// instruction-sequence tasks to disjoint key-prefix shards.
type WorkerPool struct {
	NumWorkers int
	Results    *result.Table
	checked    atomic.Int64
	completed  atomic.Int64
}

// NewWorkerPool creates a pool with the given number of workers; 0 means
// runtime.NumCPU().
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		NumWorkers: numWorkers,
		Results:    result.NewTable(),
	}
}

// Checked returns the number of keys checked so far across all workers.
func (wp *WorkerPool) Checked() int64 {
	return wp.checked.Load()
}

// RunShards distributes shards across workers, worker i pinned to logical
// CPU i mod NumCPU, searching for keys that encrypt plaintext to ciphertext. It
// blocks until every shard has been checked.
func (wp *WorkerPool) RunShards(plaintext, ciphertext uint64, shards []Shard) {
	totalShards := int64(len(shards))
	ch := make(chan Shard, len(shards))
	for _, s := range shards {
		ch <- s
	}
	close(ch)

	done := make(chan struct{})
	startTime := time.Now()
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		var lastChecked int64
		lastTime := startTime
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				now := time.Now()
				comp := wp.completed.Load()
				checked := wp.checked.Load()
				found := wp.Results.Len()
				elapsed := now.Sub(startTime)

				dt := now.Sub(lastTime).Seconds()
				dc := checked - lastChecked
				rate := float64(dc) / dt
				lastChecked = checked
				lastTime = now

				var eta string
				if comp > 0 {
					remaining := time.Duration(float64(elapsed) * float64(totalShards-comp) / float64(comp))
					eta = remaining.Round(time.Second).String()
				} else {
					eta = "..."
				}

				pct := float64(comp) / float64(totalShards) * 100
				fmt.Printf("  [%s] %d/%d shards (%.1f%%) | %d found | %.1fM keys/s | ETA %s\n",
					elapsed.Round(time.Second), comp, totalShards, pct, found, rate/1e6, eta)
			}
		}
	}()

	var wg sync.WaitGroup
	cpus := runtime.NumCPU()
	for i := 0; i < wp.NumWorkers; i++ {
		wg.Add(1)
		cpu := i % cpus
		go func() {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			_ = PinToCPU(cpu)

			for shard := range ch {
				tag := ShardTag(shard)
				cfg := Config{
					Plaintext:  plaintext,
					Ciphertext: ciphertext,
					Shard:      shard,
					OnBatch: func(n uint64) {
						wp.checked.Add(int64(n))
					},
				}
				for _, m := range Run(cfg) {
					wp.Results.Add(result.Match{
						EffectiveKey: m.EffectiveKey,
						ShardIndex:   shard.Index,
						ShardTag:     tag,
					})
				}
				wp.completed.Add(1)
			}
		}()
	}
	wg.Wait()

	close(done)
	elapsed := time.Since(startTime)
	comp := wp.completed.Load()
	checked := wp.checked.Load()
	found := wp.Results.Len()
	rate := float64(checked) / elapsed.Seconds()
	fmt.Printf("  [%s] %d/%d shards (100.0%%) | %d found | %.1fM keys/s avg | DONE\n",
		elapsed.Round(time.Second), comp, totalShards, found, rate/1e6)
}
