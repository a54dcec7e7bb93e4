package machine

import "fmt"

// ContractError reports a Dispatch call the state machine does not allow.
// It means the caller is broken, not that the user typed something wrong.
type ContractError struct {
	Event   Event
	Phase   Phase
	Payload Payload
	Reason  string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("machine contract violation: %s in %s: %s", e.Event, e.Phase, e.Reason)
}

func describePayload(p Payload) string {
	switch p := p.(type) {
	case nil:
		return "no payload"
	case OptionPayload:
		return fmt.Sprintf("option %q", p.Option.Property)
	case ValuePayload:
		return fmt.Sprintf("%s value", p.Value.Kind())
	default:
		return fmt.Sprintf("%T", p)
	}
}
