package config

// ServerConfig is the persisted set of server launch settings.
// Field names match the server's command-line flags.
type ServerConfig struct {
	BonusChest   bool    `yaml:"bonusChest" json:"bonusChest" jsonschema:"description=Add the bonus chest when creating a new world,default=true"`
	Demo         bool    `yaml:"demo" json:"demo" jsonschema:"description=Show players the demo pop-up"`
	EraseCache   bool    `yaml:"eraseCache" json:"eraseCache" jsonschema:"description=Erase the lighting caches"`
	ForceUpgrade bool    `yaml:"forceUpgrade" json:"forceUpgrade" jsonschema:"description=Force an upgrade on all chunks"`
	InitSettings bool    `yaml:"initSettings" json:"initSettings" jsonschema:"description=Initialize server.properties and eula.txt then quit"`
	GUI          bool    `yaml:"gui" json:"gui" jsonschema:"description=Open the server GUI on launch"`
	Port         *uint16 `yaml:"port,omitempty" json:"port,omitempty" jsonschema:"description=Port to listen on (overrides server.properties),minimum=1,maximum=65535"`
	SafeMode     bool    `yaml:"safeMode" json:"safeMode" jsonschema:"description=Load the level with the vanilla data pack only"`
	Singleplayer bool    `yaml:"singleplayer" json:"singleplayer" jsonschema:"description=Run in offline mode without authentication"`
	Universe     *string `yaml:"universe,omitempty" json:"universe,omitempty" jsonschema:"description=Universe directory"`
	World        *string `yaml:"world,omitempty" json:"world,omitempty" jsonschema:"description=World name"`
}

// Property names one field of ServerConfig.
type Property string

const (
	PropBonusChest   Property = "bonusChest"
	PropDemo         Property = "demo"
	PropEraseCache   Property = "eraseCache"
	PropForceUpgrade Property = "forceUpgrade"
	PropInitSettings Property = "initSettings"
	PropGUI          Property = "gui"
	PropPort         Property = "port"
	PropSafeMode     Property = "safeMode"
	PropSingleplayer Property = "singleplayer"
	PropUniverse     Property = "universe"
	PropWorld        Property = "world"
)

var properties = []Property{
	PropBonusChest,
	PropDemo,
	PropEraseCache,
	PropForceUpgrade,
	PropInitSettings,
	PropGUI,
	PropPort,
	PropSafeMode,
	PropSingleplayer,
	PropUniverse,
	PropWorld,
}

// Properties returns every property in declaration order.
func Properties() []Property {
	out := make([]Property, len(properties))
	copy(out, properties)
	return out
}

// ParseProperty maps a field name to its Property.
func ParseProperty(name string) (Property, bool) {
	for _, p := range properties {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// Default returns the configuration used when nothing has been saved yet.
func Default() *ServerConfig {
	return &ServerConfig{
		BonusChest: true,
	}
}

// Clone returns a deep copy of c.
func (c *ServerConfig) Clone() *ServerConfig {
	out := *c
	if c.Port != nil {
		port := *c.Port
		out.Port = &port
	}
	if c.Universe != nil {
		universe := *c.Universe
		out.Universe = &universe
	}
	if c.World != nil {
		world := *c.World
		out.World = &world
	}
	return &out
}

// Get returns the field named by p wrapped in its Value variant.
// Unknown properties yield an absent text value.
func (c *ServerConfig) Get(p Property) Value {
	switch p {
	case PropBonusChest:
		return Bool(c.BonusChest)
	case PropDemo:
		return Bool(c.Demo)
	case PropEraseCache:
		return Bool(c.EraseCache)
	case PropForceUpgrade:
		return Bool(c.ForceUpgrade)
	case PropInitSettings:
		return Bool(c.InitSettings)
	case PropGUI:
		return Bool(c.GUI)
	case PropPort:
		return optionalInteger(c.Port)
	case PropSafeMode:
		return Bool(c.SafeMode)
	case PropSingleplayer:
		return Bool(c.Singleplayer)
	case PropUniverse:
		return optionalText(c.Universe)
	case PropWorld:
		return optionalText(c.World)
	default:
		return NoText()
	}
}

// GetByName is Get for callers holding a raw field name.
func (c *ServerConfig) GetByName(name string) Value {
	p, ok := ParseProperty(name)
	if !ok {
		return NoText()
	}
	return c.Get(p)
}

// Set writes v into the field named by p. A value whose kind does not match
// the field, or an unknown property, leaves c unchanged.
func (c *ServerConfig) Set(p Property, v Value) {
	switch v.Kind() {
	case KindBoolean:
		c.setBool(p, v.Bool())
	case KindOptionalInteger:
		var n *uint16
		if i, ok := v.Integer(); ok {
			n = &i
		}
		if p == PropPort {
			c.Port = n
		}
	case KindOptionalText:
		var s *string
		if t, ok := v.Text(); ok {
			s = &t
		}
		switch p {
		case PropUniverse:
			c.Universe = s
		case PropWorld:
			c.World = s
		}
	}
}

func (c *ServerConfig) setBool(p Property, b bool) {
	switch p {
	case PropBonusChest:
		c.BonusChest = b
	case PropDemo:
		c.Demo = b
	case PropEraseCache:
		c.EraseCache = b
	case PropForceUpgrade:
		c.ForceUpgrade = b
	case PropInitSettings:
		c.InitSettings = b
	case PropGUI:
		c.GUI = b
	case PropSafeMode:
		c.SafeMode = b
	case PropSingleplayer:
		c.Singleplayer = b
	}
}
