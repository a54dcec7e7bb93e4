package config

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.BonusChest {
		t.Error("Default().BonusChest should be true")
	}
	for _, p := range Properties() {
		if p == PropBonusChest {
			continue
		}
		v := cfg.Get(p)
		switch v.Kind() {
		case KindBoolean:
			if v.Bool() {
				t.Errorf("Default() %s should be false", p)
			}
		default:
			if !v.Absent() {
				t.Errorf("Default() %s should be absent, got %#v", p, v)
			}
		}
	}
}

func TestGetKinds(t *testing.T) {
	cfg := Default()

	tests := []struct {
		property Property
		want     Kind
	}{
		{PropBonusChest, KindBoolean},
		{PropDemo, KindBoolean},
		{PropEraseCache, KindBoolean},
		{PropForceUpgrade, KindBoolean},
		{PropInitSettings, KindBoolean},
		{PropGUI, KindBoolean},
		{PropPort, KindOptionalInteger},
		{PropSafeMode, KindBoolean},
		{PropSingleplayer, KindBoolean},
		{PropUniverse, KindOptionalText},
		{PropWorld, KindOptionalText},
	}

	if len(tests) != len(Properties()) {
		t.Fatalf("test table covers %d properties, want %d", len(tests), len(Properties()))
	}

	for _, tt := range tests {
		t.Run(string(tt.property), func(t *testing.T) {
			if got := cfg.Get(tt.property).Kind(); got != tt.want {
				t.Errorf("Get(%s).Kind() = %v, want %v", tt.property, got, tt.want)
			}
		})
	}
}

func TestGetUnknownProperty(t *testing.T) {
	cfg := Default()

	v := cfg.Get(Property("difficulty"))
	if !v.Equal(NoText()) {
		t.Errorf("Get(unknown) = %#v, want absent text", v)
	}

	v = cfg.GetByName("difficulty")
	if !v.Equal(NoText()) {
		t.Errorf("GetByName(unknown) = %#v, want absent text", v)
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name     string
		property Property
		value    Value
		check    func(*ServerConfig) bool
	}{
		{
			name:     "boolean",
			property: PropSafeMode,
			value:    Bool(true),
			check:    func(c *ServerConfig) bool { return c.SafeMode },
		},
		{
			name:     "boolean off",
			property: PropBonusChest,
			value:    Bool(false),
			check:    func(c *ServerConfig) bool { return !c.BonusChest },
		},
		{
			name:     "port",
			property: PropPort,
			value:    Integer(25565),
			check:    func(c *ServerConfig) bool { return c.Port != nil && *c.Port == 25565 },
		},
		{
			name:     "world",
			property: PropWorld,
			value:    Text("hardcore"),
			check:    func(c *ServerConfig) bool { return c.World != nil && *c.World == "hardcore" },
		},
		{
			name:     "universe",
			property: PropUniverse,
			value:    Text("/srv/worlds"),
			check:    func(c *ServerConfig) bool { return c.Universe != nil && *c.Universe == "/srv/worlds" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Set(tt.property, tt.value)
			if !tt.check(cfg) {
				t.Errorf("Set(%s, %#v) did not update the field", tt.property, tt.value)
			}
			if got := cfg.Get(tt.property); !got.Equal(tt.value) {
				t.Errorf("Get(%s) = %#v, want %#v", tt.property, got, tt.value)
			}
		})
	}
}

func TestSetAbsentClearsField(t *testing.T) {
	cfg := Default()
	cfg.Set(PropPort, Integer(25565))
	cfg.Set(PropWorld, Text("world"))

	cfg.Set(PropPort, NoInteger())
	cfg.Set(PropWorld, NoText())

	if cfg.Port != nil {
		t.Errorf("port = %v, want absent", *cfg.Port)
	}
	if cfg.World != nil {
		t.Errorf("world = %v, want absent", *cfg.World)
	}
}

func TestSetMismatchIsNoOp(t *testing.T) {
	tests := []struct {
		name     string
		property Property
		value    Value
	}{
		{"integer into boolean", PropDemo, Integer(1)},
		{"text into port", PropPort, Text("25565")},
		{"boolean into world", PropWorld, Bool(true)},
		{"unknown property", Property("difficulty"), Bool(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			before := cfg.Clone()
			cfg.Set(tt.property, tt.value)
			for _, p := range Properties() {
				if !cfg.Get(p).Equal(before.Get(p)) {
					t.Errorf("%s changed from %#v to %#v", p, before.Get(p), cfg.Get(p))
				}
			}
		})
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Set(PropPort, Integer(19132))
	cfg.Set(PropUniverse, Text("u"))
	cfg.Set(PropGUI, Bool(true))

	for _, p := range Properties() {
		before := cfg.Clone()
		cfg.Set(p, cfg.Get(p))
		for _, q := range Properties() {
			if !cfg.Get(q).Equal(before.Get(q)) {
				t.Errorf("Set(%s, Get(%s)) changed %s", p, p, q)
			}
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	cfg := Default()
	cfg.Set(PropPort, Integer(25565))
	cfg.Set(PropWorld, Text("a"))

	clone := cfg.Clone()
	*clone.Port = 1
	*clone.World = "b"

	if *cfg.Port != 25565 || *cfg.World != "a" {
		t.Error("Clone() shares pointers with the original")
	}
}

func TestParseProperty(t *testing.T) {
	for _, p := range Properties() {
		got, ok := ParseProperty(string(p))
		if !ok || got != p {
			t.Errorf("ParseProperty(%q) = %v, %v", p, got, ok)
		}
	}
	if _, ok := ParseProperty("BonusChest"); ok {
		t.Error("ParseProperty should be case sensitive")
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		input   string
		want    uint16
		wantErr bool
	}{
		{"25565", 25565, false},
		{"1", 1, false},
		{"65535", 65535, false},
		{"0", 0, true},
		{"65536", 0, true},
		{"-1", 0, true},
		{"port", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePort(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePort(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("ParsePort(%q) error should be a *ValidationError, got %T", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePort(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(25565), "25565"},
		{NoInteger(), "none"},
		{Text("world"), "world"},
		{NoText(), "none"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestZeroValueIsFalse(t *testing.T) {
	var v Value
	if v.Kind() != KindBoolean || v.Bool() {
		t.Errorf("zero Value = %#v, want boolean false", v)
	}
}
