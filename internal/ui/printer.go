package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muurk/msc/internal/config"
	"github.com/muurk/msc/internal/options"
)

// Printer writes UI components to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the width components are rendered at
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected terminal width.
func (p *Printer) SetWidth(width int) *Printer {
	p.width = ClampWidth(width)
	return p
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params []Param) {
	p.Println(NewHeader(title, command, params).SetWidth(p.width).Render())
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details []Param) {
	p.Println(NewSuccessResult(title, details).SetWidth(p.width).Render())
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details []Param) {
	p.Println(NewWarningResult(title, details).SetWidth(p.width).Render())
}

// PrintError prints an error result box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.Println(NewFailureResult(title, err, troubleshooting).SetWidth(p.width).Render())
}

// PrintConfig prints every catalogue option with its current value.
func (p *Printer) PrintConfig(cfg *config.ServerConfig) {
	for _, d := range options.Catalogue() {
		key := ResultKeyStyle.Render("  " + d.Name)
		p.Println(key + " " + StyleValue(cfg.Get(d.Property)))
	}
}

// FormatValue renders a value the way the editor shows it: booleans as
// on/off and absent optionals as "none".
func FormatValue(v config.Value) string {
	if v.Kind() == config.KindBoolean {
		if v.Bool() {
			return "on"
		}
		return "off"
	}
	return v.String()
}

// StyleValue is FormatValue with colour.
func StyleValue(v config.Value) string {
	s := FormatValue(v)
	switch {
	case v.Absent(), v.Kind() == config.KindBoolean && !v.Bool():
		return UnsetValueStyle.Render(s)
	case v.Kind() == config.KindBoolean:
		return EnabledValueStyle.Render(s)
	default:
		return ResultValueStyle.Render(s)
	}
}

// QuoteArgs joins a command line for display, quoting arguments with spaces.
func QuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = fmt.Sprintf("%q", a)
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
