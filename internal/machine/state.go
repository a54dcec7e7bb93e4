package machine

import (
	"fmt"

	"github.com/muurk/msc/internal/config"
	"github.com/muurk/msc/internal/options"
)

// AppState is the outer application state.
type AppState int

const (
	ChoiceMenu AppState = iota
	Running
	Exited
	EditingConfiguration
)

func (s AppState) String() string {
	switch s {
	case ChoiceMenu:
		return "choice_menu"
	case Running:
		return "running"
	case Exited:
		return "exited"
	case EditingConfiguration:
		return "editing_configuration"
	default:
		return fmt.Sprintf("AppState(%d)", int(s))
	}
}

// EditorState is the inner state while a setting is being edited.
type EditorState int

const (
	// EditorNone is reported when no setting is being edited.
	EditorNone EditorState = iota
	SelectOnOff
	NumberInput
	TextInput
	SelectValueOrNone
)

func (s EditorState) String() string {
	switch s {
	case EditorNone:
		return "none"
	case SelectOnOff:
		return "select_on_off"
	case NumberInput:
		return "number_input"
	case TextInput:
		return "text_input"
	case SelectValueOrNone:
		return "select_value_or_none"
	default:
		return fmt.Sprintf("EditorState(%d)", int(s))
	}
}

// expectedKind is the value kind SubmitValue must carry in this state.
func (s EditorState) expectedKind() (config.Kind, bool) {
	switch s {
	case SelectOnOff:
		return config.KindBoolean, true
	case NumberInput:
		return config.KindOptionalInteger, true
	case TextInput:
		return config.KindOptionalText, true
	default:
		return 0, false
	}
}

// editorFor picks the first editor for a freshly selected option. Optional
// wins over the scalar because presence is chosen before the value.
func editorFor(shape options.Shape) EditorState {
	switch {
	case shape.Optional():
		return SelectValueOrNone
	case shape.Scalar() == options.ScalarBoolean:
		return SelectOnOff
	case shape.Scalar() == options.ScalarBoundedInteger:
		return NumberInput
	default:
		return TextInput
	}
}

// Event is an input to Dispatch.
type Event int

const (
	// StartServer leaves the menu to launch the server.
	StartServer Event = iota
	// Exit leaves the menu, or a running server, for good.
	Exit
	// SelectedOption starts editing the option in the OptionPayload.
	SelectedOption

	// SubmitValue commits the ValuePayload to the selected option.
	SubmitValue
	// SelectedValue chooses to enter a value for an optional setting.
	SelectedValue
	// SelectedNone clears an optional setting.
	SelectedNone
	// CancelEdit abandons the edit without writing anything.
	CancelEdit
)

var eventNames = map[Event]string{
	StartServer:    "start_server",
	Exit:           "exit",
	SelectedOption: "selected_option",
	SubmitValue:    "submit_value",
	SelectedValue:  "selected_value",
	SelectedNone:   "selected_none",
	CancelEdit:     "cancel_edit",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// IsEditor reports whether e is handled by the inner editor level.
func (e Event) IsEditor() bool {
	return e >= SubmitValue && e <= CancelEdit
}

func (e Event) valid() bool {
	_, ok := eventNames[e]
	return ok
}

// ParseEvent maps an event name such as "submit_value" to its Event.
func ParseEvent(name string) (Event, bool) {
	for ev, n := range eventNames {
		if n == name {
			return ev, true
		}
	}
	return 0, false
}

// Payload is the optional data carried by an Event. It is either an
// OptionPayload or a ValuePayload; nil means no payload.
type Payload interface {
	isPayload()
}

// OptionPayload carries the option chosen from the menu.
type OptionPayload struct {
	Option options.Descriptor
}

// ValuePayload carries a value to commit.
type ValuePayload struct {
	Value config.Value
}

func (OptionPayload) isPayload() {}
func (ValuePayload) isPayload()  {}

// Editing is the in-progress edit of one option.
type Editing struct {
	Option options.Descriptor
	Editor EditorState
}

// Phase is everything a shell needs to decide what to present next.
// Editing is non-nil exactly when State is EditingConfiguration.
type Phase struct {
	State   AppState
	Editing *Editing
}

func (p Phase) String() string {
	if p.Editing == nil {
		return p.State.String()
	}
	return fmt.Sprintf("%s/%s(%s)", p.State, p.Editing.Editor, p.Editing.Option.Property)
}
