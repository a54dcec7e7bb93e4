package remote

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/msc/internal/config"
	"github.com/muurk/msc/internal/machine"
)

func newSession(t *testing.T) (*Session, *[]*config.ServerConfig) {
	t.Helper()
	saved := []*config.ServerConfig{}
	save := func(c *config.ServerConfig) error {
		saved = append(saved, c.Clone())
		return nil
	}
	return NewSession(machine.New(nil), save, nil), &saved
}

func req(event, option, value string) Request {
	r := Request{Event: event, Option: option}
	if value != "" {
		r.Value = json.RawMessage(value)
	}
	return r
}

func TestApplyPortScenario(t *testing.T) {
	s, saved := newSession(t)

	reply := s.Apply(req("selected_option", "port", ""))
	require.True(t, reply.OK, reply.Error)
	assert.Equal(t, "editing_configuration", reply.Snapshot.State)
	assert.Equal(t, "select_value_or_none", reply.Snapshot.Editor)
	assert.Equal(t, "port", reply.Snapshot.Option)

	reply = s.Apply(req("selected_value", "", ""))
	require.True(t, reply.OK, reply.Error)
	assert.Equal(t, "number_input", reply.Snapshot.Editor)

	reply = s.Apply(req("submit_value", "", "25565"))
	require.True(t, reply.OK, reply.Error)
	assert.Equal(t, "choice_menu", reply.Snapshot.State)
	assert.Empty(t, reply.Snapshot.Option)
	assert.Equal(t, 1, reply.Snapshot.Revision)
	require.NotNil(t, reply.Snapshot.Config.Port)
	assert.Equal(t, uint16(25565), *reply.Snapshot.Config.Port)

	require.Len(t, *saved, 1)
	assert.Equal(t, uint16(25565), *(*saved)[0].Port)
}

func TestApplyBooleanAndNone(t *testing.T) {
	s, saved := newSession(t)

	s.Apply(req("selected_option", "demo", ""))
	reply := s.Apply(req("submit_value", "", "true"))
	require.True(t, reply.OK, reply.Error)
	assert.True(t, reply.Snapshot.Config.Demo)

	s.Apply(req("selected_option", "world", ""))
	reply = s.Apply(req("selected_none", "", ""))
	require.True(t, reply.OK, reply.Error)
	assert.Nil(t, reply.Snapshot.Config.World)

	assert.Len(t, *saved, 2)
}

func TestApplyTextAndNumericString(t *testing.T) {
	s, _ := newSession(t)

	s.Apply(req("selected_option", "world", ""))
	s.Apply(req("selected_value", "", ""))
	reply := s.Apply(req("submit_value", "", `"survival"`))
	require.True(t, reply.OK, reply.Error)
	require.NotNil(t, reply.Snapshot.Config.World)
	assert.Equal(t, "survival", *reply.Snapshot.Config.World)

	s.Apply(req("selected_option", "port", ""))
	s.Apply(req("selected_value", "", ""))
	reply = s.Apply(req("submit_value", "", `"25570"`))
	require.True(t, reply.OK, reply.Error)
	assert.Equal(t, uint16(25570), *reply.Snapshot.Config.Port)
}

func TestApplyRejects(t *testing.T) {
	tests := []struct {
		name  string
		setup []Request
		req   Request
		want  string
	}{
		{"unknown event", nil, req("restart", "", ""), "unknown event"},
		{"unknown option", nil, req("selected_option", "difficulty", ""), "unknown option"},
		{"select without option", nil, req("selected_option", "", ""), "contract violation"},
		{"editor event at menu", nil, req("submit_value", "", "true"), "contract violation"},
		{"cancel at menu", nil, req("cancel_edit", "", ""), "contract violation"},
		{
			"wrong value type",
			[]Request{req("selected_option", "demo", "")},
			req("submit_value", "", `"yes"`),
			"true or false",
		},
		{
			"port out of range",
			[]Request{req("selected_option", "port", ""), req("selected_value", "", "")},
			req("submit_value", "", "70000"),
			"between 1 and 65535",
		},
		{
			"port zero",
			[]Request{req("selected_option", "port", ""), req("selected_value", "", "")},
			req("submit_value", "", "0"),
			"between 1 and 65535",
		},
		{
			"empty text",
			[]Request{req("selected_option", "universe", ""), req("selected_value", "", "")},
			req("submit_value", "", `""`),
			"must not be empty",
		},
		{
			"missing value",
			[]Request{req("selected_option", "safeMode", "")},
			req("submit_value", "", ""),
			"is missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, saved := newSession(t)
			for _, r := range tt.setup {
				require.True(t, s.Apply(r).OK)
			}
			before := s.Snapshot()

			reply := s.Apply(tt.req)

			assert.False(t, reply.OK)
			assert.Contains(t, reply.Error, tt.want)
			assert.Equal(t, before, reply.Snapshot, "rejected requests must not change state")
			assert.Empty(t, *saved)
		})
	}
}

func TestApplySubmitInValueOrNoneIsNoOp(t *testing.T) {
	s, _ := newSession(t)
	s.Apply(req("selected_option", "port", ""))
	before := s.Snapshot()

	reply := s.Apply(req("submit_value", "", "25565"))

	assert.True(t, reply.OK)
	assert.Equal(t, before, reply.Snapshot)
}

func TestApplySaveFailure(t *testing.T) {
	s := NewSession(machine.New(nil), func(*config.ServerConfig) error {
		return errors.New("disk full")
	}, nil)

	s.Apply(req("selected_option", "demo", ""))
	reply := s.Apply(req("submit_value", "", "true"))

	assert.False(t, reply.OK)
	assert.Contains(t, reply.Error, "disk full")
	assert.True(t, reply.Snapshot.Config.Demo, "the commit itself stands")
	assert.Equal(t, "choice_menu", reply.Snapshot.State)
}

func TestDone(t *testing.T) {
	for _, event := range []string{"start_server", "exit"} {
		t.Run(event, func(t *testing.T) {
			s, _ := newSession(t)

			select {
			case <-s.Done():
				t.Fatal("done before any request")
			default:
			}

			require.True(t, s.Apply(req(event, "", "")).OK)

			select {
			case <-s.Done():
			default:
				t.Fatal("session not done")
			}

			// Later requests are no-ops and must not close twice
			assert.True(t, s.Apply(req("exit", "", "")).OK)
		})
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newSession(t)

	snap := s.Snapshot()
	snap.Config.Demo = true

	assert.False(t, s.Snapshot().Config.Demo)
}

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    config.Kind
		want    config.Value
		wantErr bool
	}{
		{"true", "true", config.KindBoolean, config.Bool(true), false},
		{"false", " false ", config.KindBoolean, config.Bool(false), false},
		{"bool from number", "1", config.KindBoolean, config.Value{}, true},
		{"port", "25565", config.KindOptionalInteger, config.Integer(25565), false},
		{"port string", `"8080"`, config.KindOptionalInteger, config.Integer(8080), false},
		{"port null", "null", config.KindOptionalInteger, config.NoInteger(), false},
		{"port negative", "-1", config.KindOptionalInteger, config.Value{}, true},
		{"port fraction", "25565.5", config.KindOptionalInteger, config.Value{}, true},
		{"text", `"world"`, config.KindOptionalText, config.Text("world"), false},
		{"text null", "null", config.KindOptionalText, config.NoText(), false},
		{"text number", "42", config.KindOptionalText, config.Value{}, true},
		{"empty", "", config.KindOptionalText, config.Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeValue(json.RawMessage(tt.raw), tt.kind)
			if tt.wantErr {
				var vErr *config.ValidationError
				assert.True(t, errors.As(err, &vErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %#v", got)
		})
	}
}
