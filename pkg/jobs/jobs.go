// Package jobs parses the --jobs batch file: a declarative list of
// searches to run back to back, each its own plaintext/ciphertext pair and
// worker count. Parsed with sigs.k8s.io/yaml, the same library the pack's
// SnellerInc-sneller repo uses for declarative config unmarshalling, so
// the YAML is decoded via its JSON struct tags rather than a bespoke YAML
// tag set.
package jobs

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Job is one search to run: a known plaintext/ciphertext pair, in hex, and
// an optional worker override.
type Job struct {
	Name          string `json:"name"`
	PlaintextHex  string `json:"plaintext"`
	CiphertextHex string `json:"ciphertext"`
	Workers       int    `json:"workers,omitempty"`
}

// File is the top-level shape of a --jobs YAML file.
type File struct {
	Jobs []Job `json:"jobs"`
}

// Load reads and parses a --jobs YAML file.
func Load(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading jobs file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing jobs file: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, fmt.Errorf("jobs file %s defines no jobs", path)
	}
	for i, j := range f.Jobs {
		if j.PlaintextHex == "" || j.CiphertextHex == "" {
			return nil, fmt.Errorf("job %d (%q) missing plaintext or ciphertext", i, j.Name)
		}
	}
	return f.Jobs, nil
}
