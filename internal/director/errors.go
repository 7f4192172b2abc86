package director

import (
	"errors"
	"os"
	"os/exec"
)

// Usage is the one-line synopsis printed for a malformed invocation.
const Usage = "director NEWWD COMMAND [ARG]..."

// Exit statuses for each failure class.
const (
	ExitUsage = 1
	ExitChdir = 2
	ExitExec  = 3
)

// UsageError reports an invocation that could not be parsed.
type UsageError struct {
	// Err is the option parsing error, if any. It is nil when the
	// invocation was merely too short.
	Err error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return e.Err.Error() + "\n" + Usage
	}
	return Usage
}

func (e *UsageError) Unwrap() error { return e.Err }

// DirectoryChangeError reports a failure to change into the new working
// directory.
type DirectoryChangeError struct {
	Path string
	Err  error
}

func (e *DirectoryChangeError) Error() string {
	return "cd: " + e.Path + ": " + describe(e.Err)
}

func (e *DirectoryChangeError) Unwrap() error { return e.Err }

// ExecError reports a failure to replace the process with the command.
type ExecError struct {
	Command string
	Err     error
}

func (e *ExecError) Error() string {
	return "exec: " + e.Command + ": " + describe(e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// ExitCode returns the process exit status for err. Errors outside of the
// director taxonomy are treated as usage errors.
func ExitCode(err error) int {
	var (
		chdirErr *DirectoryChangeError
		execErr  *ExecError
	)
	switch {
	case err == nil:
		return 0
	case errors.As(err, &chdirErr):
		return ExitChdir
	case errors.As(err, &execErr):
		return ExitExec
	default:
		return ExitUsage
	}
}

// describe strips the operation and path that the os and os/exec packages
// add, leaving only the system's description of the error.
func describe(err error) string {
	var (
		pathErr *os.PathError
		lookErr *exec.Error
	)
	switch {
	case err == nil:
		return "unknown error"
	case errors.As(err, &pathErr):
		return pathErr.Err.Error()
	case errors.As(err, &lookErr):
		return lookErr.Err.Error()
	default:
		return err.Error()
	}
}
