// Package validate checks that a pipeline run produced every artifact it was
// supposed to. The master command fails with a non-zero exit when any
// expected output file is missing or empty.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputResult is the check result for one expected artifact
type OutputResult struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
	Size    int64  `json:"size_bytes"`
	Missing string `json:"missing,omitempty"` // Reason when the check failed
}

// Validator verifies expected output files in a directory
type Validator struct {
	dir string
}

// NewValidator creates a validator rooted at the output directory
func NewValidator(dir string) *Validator {
	return &Validator{dir: dir}
}

// Check stats each expected file name and reports per-file results
func (v *Validator) Check(expected []string) []OutputResult {
	results := make([]OutputResult, 0, len(expected))
	for _, name := range expected {
		path := filepath.Join(v.dir, name)
		result := OutputResult{Name: name, Path: path}

		info, err := os.Stat(path)
		switch {
		case err != nil:
			result.Missing = "not found"
		case info.IsDir():
			result.Missing = "is a directory"
		case info.Size() == 0:
			result.Exists = true
			result.Missing = "empty file"
		default:
			result.Exists = true
			result.Size = info.Size()
		}
		results = append(results, result)
	}
	return results
}

// RequireAll checks every expected file and returns an error naming the
// failures, if any
func (v *Validator) RequireAll(expected []string) error {
	var failed []string
	for _, r := range v.Check(expected) {
		if r.Missing != "" {
			failed = append(failed, fmt.Sprintf("%s (%s)", r.Name, r.Missing))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("missing expected outputs: %s", strings.Join(failed, ", "))
	}
	return nil
}
