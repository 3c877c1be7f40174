// Command deskrack runs a bitsliced, 64-way-parallel exhaustive DES
// key search against a known plaintext/ciphertext pair.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/oisee/desbitslice/pkg/bitslice"
	"github.com/oisee/desbitslice/pkg/desref"
	"github.com/oisee/desbitslice/pkg/driver"
	"github.com/oisee/desbitslice/pkg/jobs"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskrack",
		Short: "Bitsliced exhaustive DES key search",
	}

	// search command
	var plaintextHex, ciphertextHex string
	var jobsFile string
	var numWorkers int
	var numShards int

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search the 56-bit key space for a key matching a known plaintext/ciphertext pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := driver.NewRunID()

			var toRun []jobs.Job
			if jobsFile != "" {
				loaded, err := jobs.Load(jobsFile)
				if err != nil {
					return err
				}
				toRun = loaded
			} else {
				if plaintextHex == "" || ciphertextHex == "" {
					return fmt.Errorf("--plaintext and --ciphertext are required (or use --jobs)")
				}
				toRun = []jobs.Job{{Name: "cli", PlaintextHex: plaintextHex, CiphertextHex: ciphertextHex, Workers: numWorkers}}
			}

			fmt.Printf("deskrack run %s\n", runID)
			for _, job := range toRun {
				if err := runJob(job, numWorkers, numShards); err != nil {
					return fmt.Errorf("job %q: %w", job.Name, err)
				}
			}
			return nil
		},
	}
	searchCmd.Flags().StringVar(&plaintextHex, "plaintext", "", "Known plaintext, hex, 16 digits")
	searchCmd.Flags().StringVar(&ciphertextHex, "ciphertext", "", "Known ciphertext, hex, 16 digits")
	searchCmd.Flags().StringVar(&jobsFile, "jobs", "", "YAML batch file of searches to run")
	searchCmd.Flags().IntVar(&numWorkers, "workers", 0, "Number of workers (0 = NumCPU)")
	searchCmd.Flags().IntVar(&numShards, "shards", 0, "Number of prefix shards (0 = workers)")

	// selftest command
	selftestCmd := &cobra.Command{
		Use:   "selftest",
		Short: "Check the bitsliced kernel against the scalar oracle on the NIST test vector",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelftest()
		},
	}

	// oracle command
	var oracleKeyHex, oracleBlockHex string
	var oracleDecrypt bool
	oracleCmd := &cobra.Command{
		Use:   "oracle",
		Short: "Run the scalar reference DES implementation on one block",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseHex64(oracleKeyHex, "--key")
			if err != nil {
				return err
			}
			block, err := parseHex64(oracleBlockHex, "--block")
			if err != nil {
				return err
			}
			var out uint64
			if oracleDecrypt {
				out = desref.Decrypt(block, key)
			} else {
				out = desref.Encrypt(block, key)
			}
			fmt.Printf("0x%016x\n", out)
			return nil
		},
	}
	oracleCmd.Flags().StringVar(&oracleKeyHex, "key", "", "64-bit key, hex")
	oracleCmd.Flags().StringVar(&oracleBlockHex, "block", "", "64-bit block, hex")
	oracleCmd.Flags().BoolVar(&oracleDecrypt, "decrypt", false, "Decrypt instead of encrypt")

	rootCmd.AddCommand(searchCmd, selftestCmd, oracleCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runJob(job jobs.Job, defaultWorkers, defaultShards int) error {
	plaintext, err := parseHex64(job.PlaintextHex, "plaintext")
	if err != nil {
		return err
	}
	ciphertext, err := parseHex64(job.CiphertextHex, "ciphertext")
	if err != nil {
		return err
	}

	workers := job.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	pool := driver.NewWorkerPool(workers)
	shards := defaultShards
	if shards <= 0 {
		shards = pool.NumWorkers
	}

	fmt.Printf("job %q: plaintext=0x%016x ciphertext=0x%016x shards=%d\n",
		job.Name, plaintext, ciphertext, shards)

	pool.RunShards(plaintext, ciphertext, driver.Partition(shards))

	for _, m := range pool.Results.Matches() {
		fmt.Printf("MATCH effective_key=0x%014x shard=%s\n", m.EffectiveKey, m.ShardTag)
	}
	if pool.Results.Len() == 0 {
		fmt.Println("no match found")
	}
	return nil
}

func runSelftest() error {
	const plaintext = 0x02468aceeca86420
	const key = 0x0f1571c947d9e859

	want := desref.Encrypt(plaintext, key)

	effective := bitslice.PackEffectiveKey(key)
	blockLanes := bitslice.Zip64(bitslice.Broadcast64(bitslice.PackBlock(plaintext)))
	keyLanes := bitslice.Zip56(bitslice.Broadcast64(effective))

	got := bitslice.Unzip64(bitslice.Encrypt(blockLanes, keyLanes))[0]
	gotBlock := bitslice.UnpackBlock(got)

	if gotBlock != want {
		return fmt.Errorf("selftest FAILED: bitsliced kernel gave 0x%016x, scalar oracle gave 0x%016x", gotBlock, want)
	}
	fmt.Printf("selftest PASSED: 0x%016x\n", gotBlock)
	return nil
}

func parseHex64(s, label string) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.TrimPrefix(s, "0X")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", label, s, err)
	}
	return v, nil
}
