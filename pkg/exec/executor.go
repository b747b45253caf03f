package exec

import (
	"context"
	"io"
)

// CommandExecutor defines an interface for running external commands.
// This abstraction allows for easier testing by providing a mockable interface.
type CommandExecutor interface {
	// LookPath searches for an executable named file in the directories
	// named by the PATH environment variable.
	LookPath(file string) (string, error)

	// Run starts the command with the given name and arguments in dir,
	// streaming its output to stdout and stderr. It blocks until the
	// command exits and returns the child's exit code. A non-zero exit
	// code is not an error at this layer; err is reserved for failures
	// to start or wait on the process itself.
	Run(ctx context.Context, dir string, stdout, stderr io.Writer, name string, arg ...string) (int, error)
}
