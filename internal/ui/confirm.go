package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box and asks the user to type phrase. It
// returns true only when the typed line matches phrase exactly.
func (p *Printer) Confirm(in io.Reader, title string, warnings []string, phrase string) bool {
	var lines []string
	lines = append(lines, "", WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, title)), "")
	for _, w := range warnings {
		lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).Render("   • "+w))
	}
	lines = append(lines, "")

	p.Println(resultBoxStyle(p.width, WarningColor).Render(strings.Join(lines, "\n")))
	p.Newline()

	prompt := lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	_, _ = fmt.Fprint(p.out, prompt.Render(fmt.Sprintf("To proceed, type %q and press Enter: ", phrase)))

	input, err := bufio.NewReader(in).ReadString('\n')
	p.Newline()
	if err != nil && input == "" {
		return false
	}

	if strings.TrimSpace(input) == phrase {
		return true
	}

	p.Println(lipgloss.NewStyle().Foreground(MutedColor).Render("  Cancelled."))
	p.Newline()
	return false
}

// ConfirmOfflineMode asks before starting a server without authentication.
func (p *Printer) ConfirmOfflineMode(in io.Reader) bool {
	return p.Confirm(in,
		"SINGLE-PLAYER MODE",
		[]string{
			"The server will run in offline mode without authentication",
			"Anyone who can reach the port can join under any name",
			"Do not use this on a server reachable from the internet",
		},
		"yes",
	)
}
