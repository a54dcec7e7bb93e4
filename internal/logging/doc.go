// Package logging provides structured logging for msc.
//
// This package wraps a global zap logger with convenience functions. Because
// the interactive editor owns the terminal, logging is silent unless a level
// is requested with --log-level or the MSC_LOG_LEVEL environment variable, and
// output goes to stderr.
//
// # Log Levels
//
//   - Debug: State machine transitions, config file reads and writes
//   - Info: Committed values, server launch, remote connections
//   - Warn: Unusable config files (defaults are used instead)
//   - Error: Launch and remote editor failures
//
// # Structured Logging
//
//	logging.Info("Server exited",
//	    zap.Int("exit_code", 0),
//	    zap.Duration("uptime", time.Hour),
//	)
//
// Components that run their own loops (the state machine, the launcher, the
// remote editor) take a *zap.Logger at construction, usually
// logging.Named("machine") and friends, so tests can pass zap.NewNop or an
// observer.
//
// # Configuration
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
package logging
