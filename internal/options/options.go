// Package options is the catalogue of editable server settings.
//
// Each Descriptor names one config.Property and declares its Shape, which
// decides how the editor collects a value for it. Shapes can only be built
// through the constructors in this package, so a boolean wrapped in an
// optional cannot exist.
package options

import (
	"fmt"

	"github.com/muurk/msc/internal/config"
)

// Scalar is the underlying kind of value an option holds.
type Scalar int

const (
	ScalarBoolean Scalar = iota
	ScalarBoundedInteger
	ScalarText
)

func (s Scalar) String() string {
	switch s {
	case ScalarBoolean:
		return "boolean"
	case ScalarBoundedInteger:
		return "integer"
	case ScalarText:
		return "text"
	default:
		return fmt.Sprintf("Scalar(%d)", int(s))
	}
}

// Shape is a scalar, possibly wrapped in a present/absent choice.
type Shape struct {
	scalar   Scalar
	optional bool
}

// Boolean is an on/off shape.
func Boolean() Shape { return Shape{scalar: ScalarBoolean} }

// BoundedInteger is a required port number shape.
func BoundedInteger() Shape { return Shape{scalar: ScalarBoundedInteger} }

// Text is a required string shape.
func Text() Shape { return Shape{scalar: ScalarText} }

// OptionalInteger is a port number the user may leave unset.
func OptionalInteger() Shape { return Shape{scalar: ScalarBoundedInteger, optional: true} }

// OptionalText is a string the user may leave unset.
func OptionalText() Shape { return Shape{scalar: ScalarText, optional: true} }

// Scalar returns the underlying scalar.
func (s Shape) Scalar() Scalar { return s.scalar }

// Optional reports whether the user first chooses between a value and none.
func (s Shape) Optional() bool { return s.optional }

// ValueKind is the config.Kind that carries values of this shape. Integers and
// text are always carried as optionals, even when the shape is required.
func (s Shape) ValueKind() config.Kind {
	switch s.scalar {
	case ScalarBoolean:
		return config.KindBoolean
	case ScalarBoundedInteger:
		return config.KindOptionalInteger
	default:
		return config.KindOptionalText
	}
}

// Absent returns the "none" value for the shape. Booleans have no absent
// value, so for them it returns false.
func (s Shape) Absent() config.Value {
	switch s.scalar {
	case ScalarBoundedInteger:
		return config.NoInteger()
	case ScalarText:
		return config.NoText()
	default:
		return config.Bool(false)
	}
}

// Accepts reports whether v may be committed to an option of this shape.
func (s Shape) Accepts(v config.Value) bool {
	if v.Kind() != s.ValueKind() {
		return false
	}
	if v.Absent() && !s.optional {
		return false
	}
	if n, ok := v.Integer(); ok && n == 0 {
		return false
	}
	return true
}

func (s Shape) String() string {
	if s.optional {
		return "optional " + s.scalar.String()
	}
	return s.scalar.String()
}

// Descriptor describes one editable field.
type Descriptor struct {
	Property    config.Property
	Name        string
	Description string
	Shape       Shape
}

var catalogue = []Descriptor{
	{
		Property:    config.PropBonusChest,
		Name:        "Bonus chest",
		Description: "Whether or not to add the bonus chest when creating a new world.",
		Shape:       Boolean(),
	},
	{
		Property:    config.PropDemo,
		Name:        "Demo mode",
		Description: "Shows the players a demo pop-up, players can't place/break/eat once the demo expires.",
		Shape:       Boolean(),
	},
	{
		Property:    config.PropEraseCache,
		Name:        "Erase the cache",
		Description: "Erases the lighting caches, etc.",
		Shape:       Boolean(),
	},
	{
		Property:    config.PropForceUpgrade,
		Name:        "Force an upgrade",
		Description: "Forces an upgrade on all the chunks.",
		Shape:       Boolean(),
	},
	{
		Property:    config.PropInitSettings,
		Name:        "Initialize server settings",
		Description: "Initializes 'server.properties' and 'eula.txt', then quits.",
		Shape:       Boolean(),
	},
	{
		Property:    config.PropGUI,
		Name:        "GUI mode",
		Description: "When enabled, opens the GUI upon launch of the server.",
		Shape:       Boolean(),
	},
	{
		Property:    config.PropPort,
		Name:        "Port",
		Description: "Which port to listen on, overrides the server.properties value.",
		Shape:       OptionalInteger(),
	},
	{
		Property:    config.PropSafeMode,
		Name:        "Safe mode",
		Description: "Loads level with vanilla data pack only.",
		Shape:       Boolean(),
	},
	{
		Property:    config.PropSingleplayer,
		Name:        "Single-player mode",
		Description: "Runs the server in offline mode without authentication. This is insecure, do not use this when online.",
		Shape:       Boolean(),
	},
	{
		Property:    config.PropUniverse,
		Name:        "Universe name",
		Description: "The directory that holds the worlds.",
		Shape:       OptionalText(),
	},
	{
		Property:    config.PropWorld,
		Name:        "World name",
		Description: "The name of the world to load.",
		Shape:       OptionalText(),
	},
}

// Catalogue returns the options in menu order. The slice is a copy.
func Catalogue() []Descriptor {
	out := make([]Descriptor, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup finds the descriptor for a property.
func Lookup(p config.Property) (Descriptor, bool) {
	for _, d := range catalogue {
		if d.Property == p {
			return d, true
		}
	}
	return Descriptor{}, false
}

// LookupName finds the descriptor for a raw property name.
func LookupName(name string) (Descriptor, bool) {
	p, ok := config.ParseProperty(name)
	if !ok {
		return Descriptor{}, false
	}
	return Lookup(p)
}
