// Msc is a launcher and configuration editor for Minecraft servers.
//
// It keeps the server's launch options in msc-configuration.yaml, edits
// them through an interactive terminal menu or a remote websocket editor,
// and starts the server jar with the matching command-line flags.
//
// Usage:
//
//	msc [server-dir] [flags]
//	msc [command] [flags]
//
// Running without a command opens the interactive editor.
// See 'msc --help' for available commands.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/muurk/msc/internal/config"
	"github.com/muurk/msc/internal/logging"
	"github.com/muurk/msc/internal/settings"
	"github.com/muurk/msc/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Resolved once per invocation by loadSettings
var (
	appSettings *settings.Settings
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "msc [server-dir]",
	Short: "Minecraft server launcher and configuration editor",
	Long: `A launcher for Minecraft servers with an interactive configuration editor.

The launch options (bonus chest, demo mode, port, world name and so on) are
stored in msc-configuration.yaml inside the server directory. When no
directory is given, ~/.minecraft/server is used.

If no command is specified, the interactive editor will launch automatically.
Choosing "Start server now" saves the configuration and runs the server.`,
	Example: `  # Edit the configuration in the default server directory
  msc

  # Edit the configuration of a specific server
  msc /srv/minecraft/survival

  # Start the server without opening the editor
  msc start /srv/minecraft/survival --max-memory 4G`,
	Version:           version.Full(),
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: loadSettings,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the editor when no subcommand provided
		return runEdit(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	settings.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Start single-player servers without asking")

	rootCmd.AddCommand(versionCmd)
}

// loadSettings resolves flags, MSC_* variables and msc-settings.yaml, then
// sets up logging. A positional argument overrides --config.
func loadSettings(cmd *cobra.Command, args []string) error {
	manager := settings.NewManager()
	if err := manager.BindFlags(cmd.Flags()); err != nil {
		return err
	}

	location, _ := manager.Get(settings.KeyConfig).(string)
	if len(args) > 0 {
		location = args[0]
	}

	path, err := config.ResolvePath(location)
	if err != nil {
		return err
	}
	configPath = path

	if err := manager.ReadFile(filepath.Dir(configPath)); err != nil {
		return err
	}

	appSettings, err = manager.Load()
	if err != nil {
		return err
	}

	if err := logging.Initialize(appSettings.LogLevel); err != nil {
		return err
	}
	logging.Debug("settings loaded")
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// No settings needed
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("msc %s\n", version.Full())
	},
}
