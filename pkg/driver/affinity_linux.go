//go:build linux

package driver

import "golang.org/x/sys/unix"

// PinToCPU pins the calling OS thread to a single logical CPU. Each shard
// worker's hot loop is pure ALU work with no syscalls or allocation once
// it starts a batch, so there's nothing to gain — and throughput to lose —
// from letting the scheduler migrate it between cores mid-run.
//
// The caller must have already locked the calling goroutine to its OS
// thread (runtime.LockOSThread) before calling this.
func PinToCPU(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}
