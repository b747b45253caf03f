package exec

import (
	"context"
	"io"
	"strings"
)

// MockCommandExecutor is a mock implementation of CommandExecutor for testing.
// It records all commands that would be executed without actually running them.
type MockCommandExecutor struct {
	// Commands records each invocation as "name arg1 arg2 ...".
	Commands []string

	// Args records the raw argument list of each invocation.
	Args [][]string

	// LookPathFunc allows custom behavior for LookPath in tests.
	LookPathFunc func(file string) (string, error)

	// RunFunc allows custom behavior for Run in tests. When nil, Run
	// reports exit code 0.
	RunFunc func(ctx context.Context, dir string, stdout, stderr io.Writer, name string, arg ...string) (int, error)
}

// LookPath implements the CommandExecutor interface for testing.
func (m *MockCommandExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	// By default, assume commands exist
	return "/path/to/" + file, nil
}

// Run implements the CommandExecutor interface for testing.
// It records the command that would be executed.
func (m *MockCommandExecutor) Run(ctx context.Context, dir string, stdout, stderr io.Writer, name string, arg ...string) (int, error) {
	cmdStr := name
	if len(arg) > 0 {
		cmdStr = name + " " + strings.Join(arg, " ")
	}
	m.Commands = append(m.Commands, cmdStr)
	m.Args = append(m.Args, append([]string{name}, arg...))

	if m.RunFunc != nil {
		return m.RunFunc(ctx, dir, stdout, stderr, name, arg...)
	}
	return 0, nil
}
