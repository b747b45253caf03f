package experiment

import "fmt"

// LaunchError reports that the child process could not be started at all:
// the interpreter is not on PATH or the runner script does not exist. It is
// raised before any side effect, so a failed launch leaves nothing behind.
type LaunchError struct {
	Target string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch %s: %v", e.Target, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ChildExitError reports a non-zero exit from the experiment runner. The
// reason is opaque to the launcher; the code is surfaced verbatim so the
// caller can mirror it as its own exit status.
type ChildExitError struct {
	Code int
}

func (e *ChildExitError) Error() string {
	return fmt.Sprintf("experiment runner exited with code %d", e.Code)
}
