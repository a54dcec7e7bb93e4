// Package config holds the Minecraft server launch configuration that msc edits
// and persists.
//
// The record is a fixed set of fields, each with one of three shapes: a boolean
// flag, an optional port number (1-65535) or an optional string. An absent
// optional means "let the server use its own default". Every field defaults
// independently; there are no cross-field constraints.
//
// # Generic Access
//
// Callers that work over all fields uniformly (the editor state machine, the
// launcher, the remote editor) go through Get and Set, keyed by Property:
//
//	cfg := config.Default()
//	cfg.Set(config.PropPort, config.Integer(25565))
//	v := cfg.Get(config.PropPort) // OptionalInteger(25565)
//
// Set dispatches on the value's Kind first and then on the property. A value
// whose kind does not match the property's field is ignored, as is an unknown
// property. Get on an unknown property returns an absent text value.
//
// # File Location
//
// The configuration lives next to the server:
//   - Windows: %APPDATA%\.minecraft\server\msc-configuration.yaml
//   - Others: $HOME/.minecraft/server/msc-configuration.yaml
//
// A missing or unparseable file is never fatal: Load logs a warning and falls
// back to Default.
package config
