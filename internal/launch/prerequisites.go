package launch

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// JavaCheck describes the java runtime found on this machine.
type JavaCheck struct {
	// Path is the resolved executable
	Path string
	// Version is the first line of "java -version"
	Version string
}

const javaHint = "Install a Java runtime (https://adoptium.net) or pass --java with its path"

// CheckJava resolves javaPath and asks it for its version.
func CheckJava(ctx context.Context, runner Runner, javaPath string) (*JavaCheck, error) {
	path, err := exec.LookPath(javaPath)
	if err != nil {
		return nil, &PrerequisiteError{Name: javaPath, Hint: javaHint, Err: err}
	}

	versionCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// java -version writes to stderr
	var out bytes.Buffer
	exitCode, err := runner.Run(versionCtx, Command{
		Path:   path,
		Args:   []string{"-version"},
		Stdout: &out,
		Stderr: &out,
	})
	if err != nil {
		return nil, &PrerequisiteError{Name: javaPath, Hint: javaHint, Err: err}
	}
	if exitCode != 0 {
		return nil, &PrerequisiteError{
			Name: javaPath,
			Hint: javaHint,
			Err:  &LaunchError{Path: path, ExitCode: exitCode},
		}
	}

	first, _, _ := strings.Cut(strings.TrimSpace(out.String()), "\n")
	return &JavaCheck{Path: path, Version: strings.TrimSpace(first)}, nil
}

// CheckJar reports whether the server jar exists.
func CheckJar(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &PrerequisiteError{
			Name: path,
			Hint: "Download the server jar from https://www.minecraft.net/download/server or pass --jar",
			Err:  err,
		}
	}
	if info.IsDir() {
		return &PrerequisiteError{Name: path, Err: errors.New("is a directory")}
	}
	return nil
}

// Preflight checks java and the server jar before Launch.
func (l *Launcher) Preflight(ctx context.Context) error {
	java, err := CheckJava(ctx, l.runner, l.config.JavaPath)
	if err != nil {
		return err
	}
	l.logger.Debug("found java",
		zap.String("path", java.Path),
		zap.String("version", java.Version),
	)

	return CheckJar(l.JarPath())
}
