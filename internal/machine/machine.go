package machine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/msc/internal/config"
	"github.com/muurk/msc/internal/logging"
	"github.com/muurk/msc/internal/options"
)

// Machine holds the editor state and the live configuration it edits.
// It is not safe for concurrent use; callers serialise Dispatch.
type Machine struct {
	phase    Phase
	config   *config.ServerConfig
	revision int
	logger   *zap.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for transitions and commits.
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// New returns a machine at the menu, editing cfg in place.
// A nil cfg starts from config.Default.
func New(cfg *config.ServerConfig, opts ...Option) *Machine {
	if cfg == nil {
		cfg = config.Default()
	}
	m := &Machine{
		phase:  Phase{State: ChoiceMenu},
		config: cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the outer application state.
func (m *Machine) State() AppState {
	return m.phase.State
}

// EditorState returns the inner state, or EditorNone when not editing.
func (m *Machine) EditorState() EditorState {
	if m.phase.Editing == nil {
		return EditorNone
	}
	return m.phase.Editing.Editor
}

// SelectedOption returns the option being edited, if any.
func (m *Machine) SelectedOption() (options.Descriptor, bool) {
	if m.phase.Editing == nil {
		return options.Descriptor{}, false
	}
	return m.phase.Editing.Option, true
}

// Phase returns a copy of the current phase.
func (m *Machine) Phase() Phase {
	p := m.phase
	if p.Editing != nil {
		editing := *p.Editing
		p.Editing = &editing
	}
	return p
}

// Config returns the live configuration. Callers must not write to it.
func (m *Machine) Config() *config.ServerConfig {
	return m.config
}

// Revision counts the commits made so far.
func (m *Machine) Revision() int {
	return m.revision
}

// Check reports whether Dispatch(ev, p) would violate the calling contract.
// Transitions that are merely not listed are not violations; they are no-ops.
func (m *Machine) Check(ev Event, p Payload) error {
	violation := func(reason string) error {
		return &ContractError{Event: ev, Phase: m.Phase(), Payload: p, Reason: reason}
	}

	if !ev.valid() {
		return violation("unknown event")
	}

	if !ev.IsEditor() {
		if m.phase.State == ChoiceMenu && ev == SelectedOption {
			if _, ok := p.(OptionPayload); !ok {
				return violation("SelectedOption needs an option payload, got " + describePayload(p))
			}
		}
		return nil
	}

	if m.phase.Editing == nil {
		return violation("editor event while no option is being edited")
	}

	if ev == SubmitValue {
		want, ok := m.phase.Editing.Editor.expectedKind()
		if !ok {
			return nil
		}
		vp, isValue := p.(ValuePayload)
		if !isValue {
			return violation(fmt.Sprintf("SubmitValue needs a %s value, got %s", want, describePayload(p)))
		}
		if vp.Value.Kind() != want {
			return violation(fmt.Sprintf("SubmitValue needs a %s value, got %s", want, describePayload(p)))
		}
	}

	return nil
}

// Dispatch advances the machine by one event. It panics with a
// *ContractError when the call breaks the contract described by Check.
func (m *Machine) Dispatch(ev Event, p Payload) {
	if err := m.Check(ev, p); err != nil {
		panic(err)
	}

	from := m.phase.String()
	if ev.IsEditor() {
		m.dispatchEditor(ev, p)
	} else {
		m.dispatchApp(ev, p)
	}
	logging.LogTransition(m.logger, ev.String(), from, m.phase.String())
}

func (m *Machine) dispatchApp(ev Event, p Payload) {
	switch m.phase.State {
	case ChoiceMenu:
		switch ev {
		case StartServer:
			m.phase = Phase{State: Running}
		case Exit:
			m.phase = Phase{State: Exited}
		case SelectedOption:
			option := p.(OptionPayload).Option
			m.phase = Phase{
				State: EditingConfiguration,
				Editing: &Editing{
					Option: option,
					Editor: editorFor(option.Shape),
				},
			}
		}
	case Running:
		if ev == Exit {
			m.phase = Phase{State: Exited}
		}
	}
}

func (m *Machine) dispatchEditor(ev Event, p Payload) {
	editing := m.phase.Editing

	switch {
	case ev == CancelEdit:
		m.phase = Phase{State: ChoiceMenu}

	case ev == SubmitValue && editing.Editor != SelectValueOrNone:
		m.commit(p.(ValuePayload).Value)

	case ev == SelectedValue && editing.Editor == SelectValueOrNone:
		switch editing.Option.Shape.Scalar() {
		case options.ScalarBoundedInteger:
			editing.Editor = NumberInput
		case options.ScalarText:
			editing.Editor = TextInput
		}

	case ev == SelectedNone && editing.Editor == SelectValueOrNone:
		m.commit(editing.Option.Shape.Absent())
	}
}

// commit writes v to the selected option and returns to the menu.
func (m *Machine) commit(v config.Value) {
	property := m.phase.Editing.Option.Property
	m.config.Set(property, v)
	m.revision++
	m.phase = Phase{State: ChoiceMenu}
	logging.LogCommit(m.logger, string(property), v.String())
}
