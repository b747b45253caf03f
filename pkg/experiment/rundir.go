package experiment

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultResultsRoot is where run artifacts are collected when no explicit
// results directory is configured.
const DefaultResultsRoot = "results"

// RunDir returns the directory where the runner is expected to write the
// artifacts of one experiment, keyed by its exp_name.
func RunDir(resultsRoot, expName string) string {
	return filepath.Join(resultsRoot, expName)
}

// EnsureRunDir creates the run directory for an experiment and returns its
// path.
func EnsureRunDir(resultsRoot, expName string) (string, error) {
	dir := RunDir(resultsRoot, expName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating run directory: %w", err)
	}
	return dir, nil
}

// RunLogPath returns the path of the launcher-side capture of the runner's
// output for a run directory.
func RunLogPath(runDir string) string {
	return filepath.Join(runDir, "run.log")
}
