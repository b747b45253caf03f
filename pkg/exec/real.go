package exec

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// RealCommandExecutor implements CommandExecutor using the actual os/exec
// package. This is the production implementation that executes real system
// commands.
type RealCommandExecutor struct{}

// LookPath searches for an executable named file in the directories
// named by the PATH environment variable.
func (e *RealCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes the command and waits for it to finish. The child inherits
// the parent's environment. Cancelling the context kills the child.
func (e *RealCommandExecutor) Run(ctx context.Context, dir string, stdout, stderr io.Writer, name string, arg ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, arg...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The child ran and exited non-zero. Report the code, not an error.
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
