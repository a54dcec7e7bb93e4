package remote

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/muurk/msc/internal/config"
	"github.com/muurk/msc/internal/machine"
)

// Request is one client frame, e.g.
//
//	{"event": "selected_option", "option": "port"}
//	{"event": "submit_value", "value": 25565}
//
// Value is decoded against the option being edited: a JSON boolean for
// on/off settings, a number (or numeric string) for ports, a string for
// names, and null for "none".
type Request struct {
	Event  string          `json:"event"`
	Option string          `json:"option,omitempty"`
	Value  json.RawMessage `json:"value,omitempty"`
}

// Reply answers every Request.
type Reply struct {
	OK       bool     `json:"ok"`
	Error    string   `json:"error,omitempty"`
	Snapshot Snapshot `json:"snapshot"`
}

// Snapshot is the machine as a client sees it.
type Snapshot struct {
	State    string              `json:"state"`
	Editor   string              `json:"editor,omitempty"`
	Option   string              `json:"option,omitempty"`
	Revision int                 `json:"revision"`
	Config   *config.ServerConfig `json:"config"`
}

func snapshotOf(m *machine.Machine) Snapshot {
	s := Snapshot{
		State:    m.State().String(),
		Revision: m.Revision(),
		Config:   m.Config().Clone(),
	}
	if opt, ok := m.SelectedOption(); ok {
		s.Editor = m.EditorState().String()
		s.Option = string(opt.Property)
	}
	return s
}

var null = []byte("null")

// decodeValue reads raw as a value of the given kind.
func decodeValue(raw json.RawMessage, kind config.Kind) (config.Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return config.Value{}, &config.ValidationError{Field: "value", Message: "is missing"}
	}

	switch kind {
	case config.KindBoolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return config.Value{}, &config.ValidationError{Field: "value", Input: string(raw), Message: "must be true or false", Err: err}
		}
		return config.Bool(b), nil

	case config.KindOptionalInteger:
		if bytes.Equal(raw, null) {
			return config.NoInteger(), nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			// Not a string, take the number literally
			s = string(raw)
		}
		port, err := config.ParsePort(s)
		if err != nil {
			return config.Value{}, err
		}
		return config.Integer(port), nil

	case config.KindOptionalText:
		if bytes.Equal(raw, null) {
			return config.NoText(), nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return config.Value{}, &config.ValidationError{Field: "value", Input: string(raw), Message: "must be a string", Err: err}
		}
		if s == "" {
			return config.Value{}, &config.ValidationError{Field: "value", Message: "must not be empty"}
		}
		return config.Text(s), nil
	}

	return config.Value{}, fmt.Errorf("unsupported value kind %s", kind)
}
