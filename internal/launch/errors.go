package launch

import "fmt"

// LaunchError reports a server process that could not start or exited
// with a non-zero status.
type LaunchError struct {
	// Path is the executable that was run
	Path string
	// ExitCode is the process exit status, or -1 if it never started
	ExitCode int
	// Err is the underlying error if any
	Err error
}

func (e *LaunchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("server launch via %s failed (exit code %d): %v", e.Path, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("server launch via %s failed (exit code %d)", e.Path, e.ExitCode)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// PrerequisiteError reports something the server needs that is missing,
// such as the java binary or the server jar.
type PrerequisiteError struct {
	// Name is the missing prerequisite
	Name string
	// Hint tells the user how to fix it
	Hint string
	Err  error
}

func (e *PrerequisiteError) Error() string {
	msg := fmt.Sprintf("%s is not available", e.Name)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Hint != "" {
		msg += "\nHint: " + e.Hint
	}
	return msg
}

func (e *PrerequisiteError) Unwrap() error {
	return e.Err
}
