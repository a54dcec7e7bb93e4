package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/muurk/msc/internal/config"
	"github.com/muurk/msc/internal/discovery"
	"github.com/muurk/msc/internal/launch"
	"github.com/muurk/msc/internal/logging"
	"github.com/muurk/msc/internal/machine"
	"github.com/muurk/msc/internal/remote"
	"github.com/muurk/msc/internal/shell"
	"github.com/muurk/msc/internal/ui"
	"github.com/muurk/msc/internal/urls"
	"github.com/muurk/msc/internal/version"
)

// Command flags
var (
	assumeYes    bool
	fullCommand  bool
	outputFormat string
	scanTimeout  int
)

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(flagsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scanCmd)
}

// editCmd opens the interactive editor
var editCmd = &cobra.Command{
	Use:   "edit [server-dir]",
	Short: "Edit the server configuration interactively",
	Long: `Open the interactive configuration editor.

The menu lists "Start server now", "Exit" and every launch option with its
current value. Every change is saved to msc-configuration.yaml as soon as
it is made. Choosing "Start server now" runs the server with the saved
options.`,
	Example: `  # Edit the default server
  msc edit

  # Edit a server in another directory
  msc edit /srv/minecraft/creative`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Start single-player servers without asking")
}

func runEdit(cmd *cobra.Command, args []string) error {
	m := machine.New(config.Load(configPath), machine.WithLogger(logging.Named("machine")))

	save := saveTo(configPath)
	if _, err := shell.Run(m, save); err != nil {
		return err
	}

	start, err := readyToStart(m, save)
	if err != nil || !start {
		return err
	}
	return startServer(cmd.Context(), m.Config())
}

// startCmd runs the server with the saved configuration
var startCmd = &cobra.Command{
	Use:   "start [server-dir]",
	Short: "Start the server with the saved configuration",
	Long: `Start the Minecraft server without opening the editor.

Java and the server jar are checked first. When single-player mode is
enabled you are asked to confirm, because the server then runs without
authentication. With --advertise the running server is announced on the
local network so 'msc scan' can find it.`,
	Example: `  # Start the default server
  msc start

  # Start with a larger heap and announce it on the LAN
  msc start /srv/minecraft/survival --max-memory 4G --advertise --name survival

  # Skip the single-player confirmation
  msc start --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStart,
}

func init() {
	startCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Start single-player servers without asking")
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Read(configPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return err
	}
	return startServer(cmd.Context(), cfg)
}

// startServer checks prerequisites, asks for confirmation when needed and
// runs the server until it exits or the process is interrupted.
func startServer(ctx context.Context, cfg *config.ServerConfig) error {
	printer := ui.NewPrinter(os.Stdout)
	dir := filepath.Dir(configPath)
	launcher := launch.New(appSettings.Launch(dir), nil, logging.Named("launch"))

	if err := launcher.Preflight(ctx); err != nil {
		printer.PrintError("Server cannot start", err, []string{
			"Install Java 17 or newer and make sure it is on your PATH (" + urls.JavaDownload + ")",
			"Use --java to point at a specific java executable",
			"Use --jar to name the server jar inside " + dir,
			"Download the server jar from " + urls.ServerDownload,
		})
		return err
	}

	if cfg.Singleplayer && !assumeYes && !printer.ConfirmOfflineMode(os.Stdin) {
		return nil
	}

	command := launcher.Command(cfg)
	params := []ui.Param{
		{Key: "Server directory", Value: dir},
		{Key: "Command", Value: ui.QuoteArgs(append([]string{command.Path}, command.Args...))},
	}
	if appSettings.Advertise {
		params = append(params, ui.Param{Key: "Advertised as", Value: appSettings.Name})
	}
	printer.PrintHeader("Starting server", "msc start", params)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var advertise func(context.Context) error
	if appSettings.Advertise {
		advertise = func(ctx context.Context) error {
			return discovery.Serve(ctx, appSettings.Name, advertisedPort(cfg), discovery.TXTRecords(cfg, version.Version))
		}
	}

	if err := runServer(ctx, launcher, cfg, advertise); err != nil {
		printer.PrintError("Server stopped", err, []string{
			"Check the server output above for the cause",
			"Run 'msc flags --command' to see the exact command line",
			"See " + urls.ServerSetupGuide + " for the server options",
		})
		return err
	}

	printer.PrintSuccess("Server stopped", nil)
	return nil
}

// runServer runs the server until it exits or ctx ends. advertise, when
// set, runs alongside and is stopped with the server. An advertisement
// failure is logged and never stops the server.
func runServer(ctx context.Context, launcher *launch.Launcher, cfg *config.ServerConfig, advertise func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	if advertise != nil {
		g.Go(func() error {
			if err := advertise(ctx); err != nil {
				logging.Warn("server not advertised", zap.Error(err))
			}
			return nil
		})
	}

	err := launcher.Launch(ctx, cfg)

	// The advertisement ends with the server
	cancel()
	_ = g.Wait()
	return err
}

func advertisedPort(cfg *config.ServerConfig) int {
	if cfg.Port != nil {
		return int(*cfg.Port)
	}
	return discovery.DefaultPort
}

// readyToStart reports whether the editor ended on Running. The
// configuration is saved once more before launch so the file exists even
// when nothing was edited.
func readyToStart(m *machine.Machine, save func(*config.ServerConfig) error) (bool, error) {
	if m.State() != machine.Running {
		return false, nil
	}
	if err := save(m.Config()); err != nil {
		return false, fmt.Errorf("configuration not saved, server not started: %w", err)
	}
	return true, nil
}

func saveTo(path string) func(*config.ServerConfig) error {
	return func(cfg *config.ServerConfig) error {
		if err := cfg.Save(path); err != nil {
			logging.Error("failed to save configuration", zap.String("path", path), zap.Error(err))
			return err
		}
		return nil
	}
}

// flagsCmd prints the server arguments
var flagsCmd = &cobra.Command{
	Use:   "flags [server-dir]",
	Short: "Print the server flags for the saved configuration",
	Long: `Print the command-line flags the server would be started with.

By default only the server's own flags are printed, which is handy for
other launch scripts. With --command the full java invocation is printed.`,
	Example: `  # Server flags only
  msc flags

  # Full java command line
  msc flags --command --max-memory 4G`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFlags,
}

func init() {
	flagsCmd.Flags().BoolVar(&fullCommand, "command", false, "Print the full java command line")
}

func runFlags(cmd *cobra.Command, args []string) error {
	cfg := config.Load(configPath)

	if !fullCommand {
		fmt.Println(ui.QuoteArgs(launch.Flags(cfg)))
		return nil
	}

	launcher := launch.New(appSettings.Launch(filepath.Dir(configPath)), nil, nil)
	command := launcher.Command(cfg)
	fmt.Println(ui.QuoteArgs(append([]string{command.Path}, command.Args...)))
	return nil
}

// showCmd displays the saved configuration
var showCmd = &cobra.Command{
	Use:   "show [server-dir]",
	Short: "Show the server configuration",
	Long: `Display the saved launch options.

Options that were never set show their defaults.`,
	Example: `  # Show the default server
  msc show

  # YAML output for scripting
  msc show /srv/minecraft/survival --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, yaml)")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := config.Load(configPath)

	switch outputFormat {
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		fmt.Print(string(data))
		return nil

	case "detailed":
		_, statErr := os.Stat(configPath)
		source := "saved"
		if statErr != nil {
			source = "defaults (not saved yet)"
		}

		printer := ui.NewPrinter(os.Stdout)
		printer.PrintHeader("Server configuration", "msc show", []ui.Param{
			{Key: "File", Value: configPath},
			{Key: "Source", Value: source},
		})
		printer.PrintConfig(cfg)
		printer.Newline()
		return nil

	default:
		return fmt.Errorf("unknown format %q (use detailed or yaml)", outputFormat)
	}
}

// schemaCmd prints the JSON schema of the configuration file
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of msc-configuration.yaml",
	Long: `Print a JSON schema describing msc-configuration.yaml.

Editors with YAML language support can use it for completion and
validation.`,
	Example: `  msc schema > msc-configuration.schema.json`,
	Args:  cobra.NoArgs,
	// No settings needed
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.WriteSchema(os.Stdout)
	},
}

// serveCmd runs the remote editor
var serveCmd = &cobra.Command{
	Use:   "serve [server-dir]",
	Short: "Edit the configuration from a websocket client",
	Long: `Serve the configuration editor over a websocket.

Clients connect to ws://<listen>/ws and send events such as
{"event":"selected_option","option":"port"}. Every reply carries the
editor state and the configuration. GET /state returns the same snapshot.

The command ends when a client chooses exit. When a client chooses
start_server, the server is started with the saved configuration.`,
	Example: `  # Serve on the default address (127.0.0.1:25580)
  msc serve

  # Serve on all interfaces
  msc serve /srv/minecraft/survival --listen :25580`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Start single-player servers without asking")
}

func runServe(cmd *cobra.Command, args []string) error {
	m := machine.New(config.Load(configPath), machine.WithLogger(logging.Named("machine")))
	logger := logging.Named("remote")
	save := saveTo(configPath)
	session := remote.NewSession(m, save, logger)
	server := remote.NewServer(session, logger)

	printer := ui.NewPrinter(os.Stdout)
	printer.PrintHeader("Remote editor", "msc serve", []ui.Param{
		{Key: "Websocket", Value: "ws://" + appSettings.Listen + "/ws"},
		{Key: "File", Value: configPath},
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	err := server.ListenAndServe(ctx, appSettings.Listen)
	stop()
	if err != nil {
		return err
	}

	start, err := readyToStart(m, save)
	if err != nil || !start {
		return err
	}
	return startServer(cmd.Context(), m.Config())
}

// scanCmd discovers servers on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find servers started with --advertise on the local network",
	Long: `Scan for Minecraft servers using mDNS/DNS-SD discovery.

Only servers started by msc with --advertise are listed. Each entry shows
the address to connect to and the world it runs.`,
	Example: `  # Scan for 5 seconds (default)
  msc scan

  # Longer scan for busy networks
  msc scan --timeout 15`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", int(discovery.DefaultScanTimeout/time.Second), "Scan timeout in seconds")
}

func runScan(cmd *cobra.Command, args []string) error {
	fmt.Printf("Scanning for servers (timeout: %ds)...\n\n", scanTimeout)

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(scanTimeout) * time.Second

	servers, err := scanner.Scan(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	printer := ui.NewPrinter(os.Stdout)
	if len(servers) == 0 {
		printer.PrintWarning("No servers found", []ui.Param{
			{Key: "Timeout", Value: strconv.Itoa(scanTimeout) + "s"},
			{Key: "Hint", Value: "start a server with 'msc start --advertise'"},
		})
		return nil
	}

	fmt.Printf("Found %d server(s):\n\n", len(servers))

	for i, server := range servers {
		fmt.Printf("%d. %s\n", i+1, server.Instance)
		fmt.Printf("   Address: %s\n", server.Address())
		fmt.Printf("   Host:    %s\n", server.Hostname)
		if world := server.GetMetadata("world"); world != "" {
			fmt.Printf("   World:   %s\n", world)
		}
		if v := server.GetMetadata("version"); v != "" {
			fmt.Printf("   msc:     %s\n", v)
		}
		fmt.Println()
	}

	return nil
}
