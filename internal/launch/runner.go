package launch

//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"
)

// Command is one process invocation.
type Command struct {
	Path   string
	Args   []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner runs a command to completion and reports its exit code.
// A process that ran and exited non-zero is not an error.
type Runner interface {
	Run(ctx context.Context, cmd Command) (int, error)
}

// stopGrace is how long an interrupted server gets to save its world
// before it is killed.
const stopGrace = 30 * time.Second

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner. Cancelling ctx sends an interrupt first and only
// kills the process once stopGrace has passed.
func (ExecRunner) Run(ctx context.Context, c Command) (int, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	cmd.Cancel = func() error {
		return stopProcess(cmd.Process, runtime.GOOS)
	}
	cmd.WaitDelay = stopGrace

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// stopProcess asks p to shut down. Windows cannot deliver os.Interrupt to
// another process, so there the server is killed straight away.
func stopProcess(p *os.Process, goos string) error {
	if goos == "windows" {
		return p.Kill()
	}
	return p.Signal(os.Interrupt)
}
