package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/muurk/msc/internal/config"
	"github.com/muurk/msc/internal/logging"
)

// Config holds the settings for starting the server process.
type Config struct {
	// JavaPath is the java executable.
	// Default: "java" (searches PATH)
	JavaPath string

	// Jar is the server jar, relative to Dir unless absolute.
	// Default: "server.jar"
	Jar string

	// Dir is the server directory the process runs in.
	// Default: the directory holding the configuration file
	Dir string

	// MinMemory and MaxMemory are JVM heap sizes such as "1G" or "512M".
	// Empty leaves the JVM default.
	MinMemory string
	MaxMemory string

	// JVMArgs are passed to java before -jar.
	JVMArgs []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config wired to the terminal.
func DefaultConfig() Config {
	return Config{
		JavaPath: "java",
		Jar:      "server.jar",
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

var memoryPattern = regexp.MustCompile(`^[1-9][0-9]*[kKmMgG]?$`)

// Validate checks the settings that would otherwise fail inside the JVM.
func (c Config) Validate() error {
	if c.JavaPath == "" {
		return fmt.Errorf("java path is empty")
	}
	if c.Jar == "" {
		return fmt.Errorf("server jar is empty")
	}
	for flag, size := range map[string]string{"minimum": c.MinMemory, "maximum": c.MaxMemory} {
		if size != "" && !memoryPattern.MatchString(size) {
			return &config.ValidationError{
				Field:   flag + " memory",
				Input:   size,
				Message: "must be a size like 512M or 2G",
			}
		}
	}
	return nil
}

// Launcher starts the server for a configuration.
type Launcher struct {
	config Config
	runner Runner
	logger *zap.Logger
}

// New creates a Launcher. A nil runner uses ExecRunner and a nil logger
// discards output.
func New(cfg Config, runner Runner, logger *zap.Logger) *Launcher {
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Launcher{
		config: cfg,
		runner: runner,
		logger: logger,
	}
}

// JarPath returns the server jar resolved against the server directory.
func (l *Launcher) JarPath() string {
	if filepath.IsAbs(l.config.Jar) || l.config.Dir == "" {
		return l.config.Jar
	}
	return filepath.Join(l.config.Dir, l.config.Jar)
}

// Args returns the java arguments for cfg, without the executable itself.
func (l *Launcher) Args(cfg *config.ServerConfig) []string {
	var args []string
	if l.config.MinMemory != "" {
		args = append(args, "-Xms"+l.config.MinMemory)
	}
	if l.config.MaxMemory != "" {
		args = append(args, "-Xmx"+l.config.MaxMemory)
	}
	args = append(args, l.config.JVMArgs...)
	args = append(args, "-jar", l.config.Jar)
	return append(args, Flags(cfg)...)
}

// Command returns the full invocation for cfg.
func (l *Launcher) Command(cfg *config.ServerConfig) Command {
	return Command{
		Path:   l.config.JavaPath,
		Args:   l.Args(cfg),
		Dir:    l.config.Dir,
		Stdin:  l.config.Stdin,
		Stdout: l.config.Stdout,
		Stderr: l.config.Stderr,
	}
}

// Launch runs the server with cfg and blocks until it exits. A server that
// stops because ctx was cancelled is not an error.
func (l *Launcher) Launch(ctx context.Context, cfg *config.ServerConfig) error {
	if err := l.config.Validate(); err != nil {
		return fmt.Errorf("invalid launch settings: %w", err)
	}

	cmd := l.Command(cfg)
	logging.LogLaunch(l.logger, cmd.Path, cmd.Args, cmd.Dir)

	exitCode, err := l.runner.Run(ctx, cmd)

	if ctx.Err() != nil {
		l.logger.Info("server stopped on request",
			zap.Int("exit_code", exitCode),
			zap.Error(ctx.Err()),
		)
		return nil
	}

	if err != nil {
		return &LaunchError{Path: cmd.Path, ExitCode: exitCode, Err: err}
	}
	if exitCode != 0 {
		return &LaunchError{Path: cmd.Path, ExitCode: exitCode}
	}

	l.logger.Info("server exited", zap.Int("exit_code", exitCode))
	return nil
}
