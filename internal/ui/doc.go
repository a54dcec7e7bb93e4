// Package ui renders the styled, non-interactive output of the msc
// commands: a header box naming the command and its inputs, a table of the
// current server configuration, and success, failure or warning result
// boxes. The interactive editor in package shell reuses the palette and
// styles defined here.
//
// All components take an explicit width and fall back to the terminal
// size, clamped between MinTerminalWidth and MaxContentWidth.
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Server configuration", "msc show", []ui.Param{{Key: "File", Value: path}})
//	p.PrintConfig(cfg)
//
// zap logging stays silent unless MSC_LOG_LEVEL is set, so this output is
// the only thing the user sees by default.
package ui
