package shell

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/msc/internal/machine"
)

// Run starts the editor on the alternate screen and blocks until the
// user starts the server or exits. It returns the final app state.
func Run(m *machine.Machine, save Saver, opts ...tea.ProgramOption) (machine.AppState, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(m, save), opts...)

	final, err := p.Run()
	if err != nil {
		return m.State(), fmt.Errorf("editor failed: %w", err)
	}
	if model, ok := final.(Model); ok && model.SaveErr() != nil {
		return m.State(), fmt.Errorf("configuration not saved: %w", model.SaveErr())
	}
	return m.State(), nil
}
