package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
)

// Schema describes the configuration file for editors with YAML schema support.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := r.Reflect(&ServerConfig{})

	schema.ID = "https://github.com/muurk/msc/msc-configuration.schema.json"
	schema.Title = "msc Minecraft Server Configuration"
	schema.Description = "Launch options edited by msc and passed to the Minecraft server"

	return schema
}

// WriteSchema writes the indented JSON schema to w.
func WriteSchema(w io.Writer) error {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}
