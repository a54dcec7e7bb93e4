package config

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value carries.
type Kind int

const (
	// KindBoolean is a plain on/off flag.
	KindBoolean Kind = iota
	// KindOptionalInteger is a port number that may be absent.
	KindOptionalInteger
	// KindOptionalText is a string that may be absent.
	KindOptionalText
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindOptionalInteger:
		return "optional_integer"
	case KindOptionalText:
		return "optional_text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a typed configuration value. The zero Value is Bool(false).
type Value struct {
	kind    Kind
	boolean bool
	integer *uint16
	text    *string
}

// Bool returns a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBoolean, boolean: v}
}

// Integer returns a present optional integer.
func Integer(v uint16) Value {
	return Value{kind: KindOptionalInteger, integer: &v}
}

// NoInteger returns an absent optional integer.
func NoInteger() Value {
	return Value{kind: KindOptionalInteger}
}

// Text returns a present optional string.
func Text(v string) Value {
	return Value{kind: KindOptionalText, text: &v}
}

// NoText returns an absent optional string.
func NoText() Value {
	return Value{kind: KindOptionalText}
}

func optionalInteger(v *uint16) Value {
	if v == nil {
		return NoInteger()
	}
	return Integer(*v)
}

func optionalText(v *string) Value {
	if v == nil {
		return NoText()
	}
	return Text(*v)
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload. It is false for non-boolean values.
func (v Value) Bool() bool {
	return v.kind == KindBoolean && v.boolean
}

// Integer returns the integer payload and whether it is present.
func (v Value) Integer() (uint16, bool) {
	if v.kind != KindOptionalInteger || v.integer == nil {
		return 0, false
	}
	return *v.integer, true
}

// Text returns the string payload and whether it is present.
func (v Value) Text() (string, bool) {
	if v.kind != KindOptionalText || v.text == nil {
		return "", false
	}
	return *v.text, true
}

// Absent reports whether v is an optional value with nothing in it.
func (v Value) Absent() bool {
	switch v.kind {
	case KindOptionalInteger:
		return v.integer == nil
	case KindOptionalText:
		return v.text == nil
	default:
		return false
	}
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBoolean:
		return v.boolean == other.boolean
	case KindOptionalInteger:
		a, aok := v.Integer()
		b, bok := other.Integer()
		return aok == bok && a == b
	case KindOptionalText:
		a, aok := v.Text()
		b, bok := other.Text()
		return aok == bok && a == b
	}
	return false
}

// String renders the payload the way it is passed on the server command line.
// Absent values render as "none".
func (v Value) String() string {
	switch v.kind {
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	case KindOptionalInteger:
		if n, ok := v.Integer(); ok {
			return strconv.FormatUint(uint64(n), 10)
		}
	case KindOptionalText:
		if s, ok := v.Text(); ok {
			return s
		}
	}
	return "none"
}

// GoString makes values readable in test failures.
func (v Value) GoString() string {
	if v.Absent() {
		return fmt.Sprintf("%s(none)", v.kind)
	}
	return fmt.Sprintf("%s(%s)", v.kind, v.String())
}

// ValidationError reports user input that cannot become a Value.
type ValidationError struct {
	Field   string
	Input   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %s: %v", e.Field, e.Input, e.Message, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ParsePort parses a port number in the range 1-65535.
func ParsePort(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, &ValidationError{Field: "port", Input: s, Message: "must be a number between 1 and 65535", Err: err}
	}
	if n == 0 {
		return 0, &ValidationError{Field: "port", Input: s, Message: "must be a number between 1 and 65535"}
	}
	return uint16(n), nil
}
