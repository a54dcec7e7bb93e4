package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/msc/internal/config"
	"github.com/muurk/msc/internal/machine"
	"github.com/muurk/msc/internal/options"
	"github.com/muurk/msc/internal/ui"
)

// Menu entries before the option list
const (
	StartLabel = "Start server now"
	ExitLabel  = "Exit"

	fixedEntries = 2
)

// Saver persists the configuration after a commit.
type Saver func(*config.ServerConfig) error

// Model is the bubbletea model for the editor. It presents whatever the
// machine's phase calls for and turns key presses into machine events.
type Model struct {
	machine   *machine.Machine
	save      Saver
	catalogue []options.Descriptor

	saveErr error

	cursor int // menu position
	choice int // 0 or 1 on the two-way choice screens

	input    textinput.Model
	inputErr string

	width  int
	height int

	help      help.Model
	menuKeys  menuKeyMap
	inputKeys inputKeyMap
}

// New creates the editor model for m. save may be nil.
func New(m *machine.Machine, save Saver) Model {
	input := textinput.New()
	input.CharLimit = 255
	input.Width = 50

	width, height := ui.GetTerminalSize()

	return Model{
		machine:   m,
		save:      save,
		catalogue: options.Catalogue(),
		input:     input,
		width:     width,
		height:    height,
		help:      help.New(),
		menuKeys:  newMenuKeys(),
		inputKeys: newInputKeys(),
	}
}

// Machine returns the machine the model drives.
func (m Model) Machine() *machine.Machine {
	return m.machine
}

// SaveErr returns the last save failure, if the last save failed.
func (m Model) SaveErr() error {
	return m.saveErr
}

// MenuItems returns the menu labels in display order.
func (m Model) MenuItems() []string {
	items := []string{StartLabel, ExitLabel}
	for _, d := range m.catalogue {
		items = append(items, d.Name)
	}
	return items
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.machine.State() {
		case machine.ChoiceMenu:
			return m.updateMenu(msg)
		case machine.EditingConfiguration:
			switch m.machine.EditorState() {
			case machine.SelectOnOff, machine.SelectValueOrNone:
				return m.updateChoice(msg)
			case machine.NumberInput, machine.TextInput:
				return m.updateInput(msg)
			}
		default:
			return m, tea.Quit
		}
	}

	if m.typing() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) typing() bool {
	s := m.machine.EditorState()
	return s == machine.NumberInput || s == machine.TextInput
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := len(m.catalogue) + fixedEntries

	switch {
	case key.Matches(msg, m.menuKeys.Quit):
		return m.dispatch(machine.Exit, nil)

	case key.Matches(msg, m.menuKeys.Up):
		m.cursor = (m.cursor - 1 + items) % items

	case key.Matches(msg, m.menuKeys.Down):
		m.cursor = (m.cursor + 1) % items

	case key.Matches(msg, m.menuKeys.Select):
		switch m.cursor {
		case 0:
			return m.dispatch(machine.StartServer, nil)
		case 1:
			return m.dispatch(machine.Exit, nil)
		default:
			d := m.catalogue[m.cursor-fixedEntries]
			return m.dispatch(machine.SelectedOption, machine.OptionPayload{Option: d})
		}
	}
	return m, nil
}

func (m Model) updateChoice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.menuKeys.Quit):
		return m.quit()

	case key.Matches(msg, m.menuKeys.Back):
		return m.dispatch(machine.CancelEdit, nil)

	case key.Matches(msg, m.menuKeys.Up), key.Matches(msg, m.menuKeys.Down):
		m.choice = 1 - m.choice

	case key.Matches(msg, m.menuKeys.Select):
		if m.machine.EditorState() == machine.SelectOnOff {
			return m.dispatch(machine.SubmitValue, machine.ValuePayload{Value: config.Bool(m.choice == 0)})
		}
		if m.choice == 0 {
			return m.dispatch(machine.SelectedValue, nil)
		}
		return m.dispatch(machine.SelectedNone, nil)
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.inputKeys.Quit):
		return m.quit()

	case key.Matches(msg, m.inputKeys.Back):
		return m.dispatch(machine.CancelEdit, nil)

	case key.Matches(msg, m.inputKeys.Submit):
		v, err := m.parseInput()
		if err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		return m.dispatch(machine.SubmitValue, machine.ValuePayload{Value: v})
	}

	m.inputErr = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseInput validates the typed text for the active editor.
func (m Model) parseInput() (config.Value, error) {
	raw := strings.TrimSpace(m.input.Value())
	if m.machine.EditorState() == machine.NumberInput {
		port, err := config.ParsePort(raw)
		if err != nil {
			return config.Value{}, fmt.Errorf("enter a port between 1 and 65535")
		}
		return config.Integer(port), nil
	}
	if raw == "" {
		return config.Value{}, fmt.Errorf("the value cannot be empty")
	}
	return config.Text(raw), nil
}

// quit leaves any edit and exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.machine.State() == machine.EditingConfiguration {
		m.machine.Dispatch(machine.CancelEdit, nil)
	}
	return m.dispatch(machine.Exit, nil)
}

// dispatch sends one event and prepares the screen for the new phase.
// The configuration is saved only when this event committed a value; a
// failed save is retried by the next commit, which writes the whole record.
func (m Model) dispatch(ev machine.Event, p machine.Payload) (tea.Model, tea.Cmd) {
	before := m.machine.Revision()
	m.machine.Dispatch(ev, p)

	if m.machine.Revision() != before && m.save != nil {
		m.saveErr = m.save(m.machine.Config())
	}

	switch m.machine.State() {
	case machine.Running, machine.Exited:
		return m, tea.Quit
	case machine.ChoiceMenu:
		m.input.Blur()
		m.inputErr = ""
		return m, nil
	}

	cmd := m.prepareEditor()
	return m, cmd
}

// prepareEditor presets the editor with the option's current value.
func (m *Model) prepareEditor() tea.Cmd {
	d, ok := m.machine.SelectedOption()
	if !ok {
		return nil
	}
	current := m.machine.Config().Get(d.Property)

	switch m.machine.EditorState() {
	case machine.SelectOnOff:
		m.choice = 1
		if current.Bool() {
			m.choice = 0
		}
	case machine.SelectValueOrNone:
		m.choice = 0
		if current.Absent() {
			m.choice = 1
		}
	case machine.NumberInput:
		m.input.Placeholder = "25565"
		m.input.CharLimit = 5
		m.input.SetValue(presetText(current))
		return m.input.Focus()
	case machine.TextInput:
		m.input.Placeholder = "world"
		m.input.CharLimit = 255
		m.input.SetValue(presetText(current))
		return m.input.Focus()
	}
	return nil
}

func presetText(v config.Value) string {
	if v.Absent() {
		return ""
	}
	return v.String()
}

// View implements tea.Model
func (m Model) View() string {
	switch m.machine.State() {
	case machine.ChoiceMenu:
		return m.viewMenu()
	case machine.EditingConfiguration:
		return m.viewEditor()
	default:
		return ""
	}
}

func (m Model) viewMenu() string {
	lines := []string{ui.TitleStyle.Render("MINECRAFT SERVER CONFIGURATION")}

	for i, label := range m.MenuItems() {
		var line string
		if i >= fixedEntries {
			d := m.catalogue[i-fixedEntries]
			line = fmt.Sprintf("%-28s %s", label, ui.StyleValue(m.machine.Config().Get(d.Property)))
		} else {
			line = label
		}

		switch {
		case i == m.cursor:
			line = ui.SelectedItemStyle.Render(ui.CursorMarker + line)
		case i < fixedEntries:
			line = ui.ActionItemStyle.Render(line)
		default:
			line = ui.ItemStyle.Render(line)
		}
		lines = append(lines, line)

		if i == fixedEntries-1 {
			lines = append(lines, "")
		}
	}

	if m.cursor >= fixedEntries {
		d := m.catalogue[m.cursor-fixedEntries]
		lines = append(lines, "", ui.DescriptionStyle.Render(d.Description))
	}
	if m.saveErr != nil {
		lines = append(lines, "", ui.ErrorMessageStyle.Render("Could not save: "+m.saveErr.Error()))
	}

	lines = append(lines, ui.HelpStyle.Render(m.help.View(m.menuKeys)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewEditor() string {
	d, _ := m.machine.SelectedOption()
	lines := []string{
		ui.TitleStyle.Render(strings.ToUpper(d.Name)),
		ui.DescriptionStyle.Render(d.Description),
		"",
	}

	switch m.machine.EditorState() {
	case machine.SelectOnOff:
		lines = append(lines, m.viewChoice("On", "Off")...)
	case machine.SelectValueOrNone:
		lines = append(lines, m.viewChoice("Set a value", "None")...)
	case machine.NumberInput, machine.TextInput:
		lines = append(lines, m.input.View())
		if m.inputErr != "" {
			lines = append(lines, "", ui.ErrorMessageStyle.Render(m.inputErr))
		}
		lines = append(lines, ui.HelpStyle.Render(m.help.View(m.inputKeys)))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, ui.HelpStyle.Render(m.help.View(m.menuKeys)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewChoice(first, second string) []string {
	out := make([]string, 2)
	for i, label := range []string{first, second} {
		if i == m.choice {
			out[i] = ui.SelectedItemStyle.Render(ui.CursorMarker + label)
		} else {
			out[i] = ui.ItemStyle.Render(label)
		}
	}
	return out
}
