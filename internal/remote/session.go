package remote

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/msc/internal/config"
	"github.com/muurk/msc/internal/machine"
	"github.com/muurk/msc/internal/options"
)

// Saver persists the configuration after a commit.
type Saver func(*config.ServerConfig) error

// Session owns a machine on behalf of any number of remote clients. Every
// request is checked before it is dispatched, so a misbehaving client gets
// an error reply instead of crashing the process.
type Session struct {
	mu      sync.Mutex
	machine *machine.Machine
	save    Saver
	logger  *zap.Logger

	done     chan struct{}
	doneOnce sync.Once
}

// NewSession wraps m. save may be nil.
func NewSession(m *machine.Machine, save Saver, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		machine: m,
		save:    save,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Done is closed once the machine reaches Running or Exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// State returns the current outer state.
func (s *Session) State() machine.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.State()
}

// Snapshot returns the current state and configuration.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotOf(s.machine)
}

// Apply runs one request against the machine.
func (s *Session) Apply(req Request) Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	fail := func(err error) Reply {
		s.logger.Debug("request rejected",
			zap.String("event", req.Event),
			zap.Error(err),
		)
		return Reply{Error: err.Error(), Snapshot: snapshotOf(s.machine)}
	}

	ev, ok := machine.ParseEvent(req.Event)
	if !ok {
		return fail(fmt.Errorf("unknown event %q", req.Event))
	}

	payload, err := s.payloadFor(ev, req)
	if err != nil {
		return fail(err)
	}

	if err := s.machine.Check(ev, payload); err != nil {
		return fail(err)
	}

	before := s.machine.Revision()
	s.machine.Dispatch(ev, payload)

	reply := Reply{OK: true}
	if s.machine.Revision() != before && s.save != nil {
		if err := s.save(s.machine.Config()); err != nil {
			s.logger.Error("failed to save configuration", zap.Error(err))
			reply = Reply{Error: fmt.Sprintf("value committed but not saved: %v", err)}
		}
	}

	switch s.machine.State() {
	case machine.Running, machine.Exited:
		s.doneOnce.Do(func() { close(s.done) })
	}

	reply.Snapshot = snapshotOf(s.machine)
	return reply
}

func (s *Session) payloadFor(ev machine.Event, req Request) (machine.Payload, error) {
	switch ev {
	case machine.SelectedOption:
		if req.Option == "" {
			// Let Check report the missing payload in the right state
			return nil, nil
		}
		d, ok := options.LookupName(req.Option)
		if !ok {
			return nil, fmt.Errorf("unknown option %q", req.Option)
		}
		return machine.OptionPayload{Option: d}, nil

	case machine.SubmitValue:
		d, ok := s.machine.SelectedOption()
		if !ok || s.machine.EditorState() == machine.SelectValueOrNone {
			return nil, nil
		}
		v, err := decodeValue(req.Value, d.Shape.ValueKind())
		if err != nil {
			return nil, err
		}
		if !d.Shape.Accepts(v) {
			return nil, fmt.Errorf("%s does not accept %s", d.Name, v)
		}
		return machine.ValuePayload{Value: v}, nil
	}

	return nil, nil
}
