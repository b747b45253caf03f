package experiment

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// lockFileName returns the path of a run directory's lock file.
func lockFileName(runDir string) string {
	return filepath.Join(runDir, ".launch.lock")
}

// CreateLockFile marks a run directory as having a launch in flight,
// recording the launcher's process ID.
func CreateLockFile(runDir string, pid int) error {
	content := []byte(strconv.Itoa(pid))
	return os.WriteFile(lockFileName(runDir), content, 0644)
}

// RemoveLockFile deletes a run directory's lock file.
func RemoveLockFile(runDir string) error {
	err := os.Remove(lockFileName(runDir))
	// It's not an error if the file doesn't exist.
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// ReadLockFile reads the PID from a run directory's lock file.
func ReadLockFile(runDir string) (int, error) {
	content, err := os.ReadFile(lockFileName(runDir))
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(string(content))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in lock file: %w", err)
	}
	return pid, nil
}
