package launch

import (
	"strconv"

	"github.com/muurk/msc/internal/config"
	"github.com/muurk/msc/internal/options"
)

// Flags renders cfg as server command-line flags in catalogue order.
//
// Enabled booleans become "--<property>". The server opens its GUI unless
// told otherwise, so gui is inverted: disabled gives "--nogui" and enabled
// gives nothing. Present optionals become "--<property> <value>" and absent
// ones are left out so the server falls back to server.properties.
func Flags(cfg *config.ServerConfig) []string {
	args := []string{}
	for _, d := range options.Catalogue() {
		name := "--" + string(d.Property)
		v := cfg.Get(d.Property)

		switch v.Kind() {
		case config.KindBoolean:
			if d.Property == config.PropGUI {
				if !v.Bool() {
					args = append(args, "--nogui")
				}
				continue
			}
			if v.Bool() {
				args = append(args, name)
			}
		case config.KindOptionalInteger:
			if n, ok := v.Integer(); ok {
				args = append(args, name, strconv.Itoa(int(n)))
			}
		case config.KindOptionalText:
			if s, ok := v.Text(); ok {
				args = append(args, name, s)
			}
		}
	}
	return args
}
