package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/msc/internal/config"
)

func TestCatalogueCoversEveryProperty(t *testing.T) {
	cat := Catalogue()
	props := config.Properties()

	require.Len(t, cat, len(props))
	for i, d := range cat {
		assert.Equal(t, props[i], d.Property, "catalogue order should follow the record")
		assert.NotEmpty(t, d.Name)
	}
}

func TestCatalogueShapesMatchRecord(t *testing.T) {
	cfg := config.Default()
	for _, d := range Catalogue() {
		assert.Equal(t, cfg.Get(d.Property).Kind(), d.Shape.ValueKind(), d.Property)
	}
}

func TestCatalogueIsACopy(t *testing.T) {
	cat := Catalogue()
	cat[0].Name = "changed"

	assert.Equal(t, "Bonus chest", Catalogue()[0].Name)
}

func TestShapes(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		scalar   Scalar
		optional bool
		kind     config.Kind
		absent   config.Value
	}{
		{"boolean", Boolean(), ScalarBoolean, false, config.KindBoolean, config.Bool(false)},
		{"integer", BoundedInteger(), ScalarBoundedInteger, false, config.KindOptionalInteger, config.NoInteger()},
		{"text", Text(), ScalarText, false, config.KindOptionalText, config.NoText()},
		{"optional integer", OptionalInteger(), ScalarBoundedInteger, true, config.KindOptionalInteger, config.NoInteger()},
		{"optional text", OptionalText(), ScalarText, true, config.KindOptionalText, config.NoText()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.scalar, tt.shape.Scalar())
			assert.Equal(t, tt.optional, tt.shape.Optional())
			assert.Equal(t, tt.kind, tt.shape.ValueKind())
			assert.True(t, tt.absent.Equal(tt.shape.Absent()), "%#v", tt.shape.Absent())
			assert.Equal(t, tt.name, tt.shape.String())
		})
	}
}

func TestShapeAccepts(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		value config.Value
		want  bool
	}{
		{"boolean accepts bool", Boolean(), config.Bool(true), true},
		{"boolean rejects text", Boolean(), config.Text("on"), false},
		{"optional integer accepts port", OptionalInteger(), config.Integer(25565), true},
		{"optional integer accepts none", OptionalInteger(), config.NoInteger(), true},
		{"optional integer rejects zero", OptionalInteger(), config.Integer(0), false},
		{"optional integer rejects text", OptionalInteger(), config.Text("25565"), false},
		{"required integer rejects none", BoundedInteger(), config.NoInteger(), false},
		{"optional text accepts none", OptionalText(), config.NoText(), true},
		{"required text rejects none", Text(), config.NoText(), false},
		{"required text accepts value", Text(), config.Text("world"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.Accepts(tt.value))
		})
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup(config.PropPort)
	require.True(t, ok)
	assert.Equal(t, "Port", d.Name)
	assert.True(t, d.Shape.Optional())
	assert.Equal(t, ScalarBoundedInteger, d.Shape.Scalar())

	d, ok = LookupName("world")
	require.True(t, ok)
	assert.Equal(t, OptionalText(), d.Shape)

	_, ok = LookupName("difficulty")
	assert.False(t, ok)
}
