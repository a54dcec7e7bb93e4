// Package settings resolves how msc itself runs: where the java binary and
// server jar live, heap sizes, logging and the remote editor address.
//
// Values come from, highest first: command-line flags, MSC_* environment
// variables, an optional msc-settings.yaml next to the server
// configuration, and built-in defaults. The server configuration record
// itself lives in package config.
package settings

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/muurk/msc/internal/launch"
)

// EnvPrefix is prepended to every environment variable, e.g. MSC_JAVA.
const EnvPrefix = "MSC"

// FileName is the optional settings file looked up in the server directory.
const FileName = "msc-settings"

// Keys double as flag names.
const (
	KeyConfig    = "config"
	KeyJava      = "java"
	KeyJar       = "jar"
	KeyMinMemory = "min-memory"
	KeyMaxMemory = "max-memory"
	KeyJVMArgs   = "jvm-arg"
	KeyLogLevel  = "log-level"
	KeyListen    = "listen"
	KeyAdvertise = "advertise"
	KeyName      = "name"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	Config    string   `mapstructure:"config"`
	Java      string   `mapstructure:"java"`
	Jar       string   `mapstructure:"jar"`
	MinMemory string   `mapstructure:"min-memory"`
	MaxMemory string   `mapstructure:"max-memory"`
	JVMArgs   []string `mapstructure:"jvm-arg"`
	LogLevel  string   `mapstructure:"log-level"`
	Listen    string   `mapstructure:"listen"`
	Advertise bool     `mapstructure:"advertise"`
	Name      string   `mapstructure:"name"`
}

// Launch returns the launcher configuration for a server in dir.
func (s *Settings) Launch(dir string) launch.Config {
	lc := launch.DefaultConfig()
	lc.JavaPath = s.Java
	lc.Jar = s.Jar
	lc.Dir = dir
	lc.MinMemory = s.MinMemory
	lc.MaxMemory = s.MaxMemory
	lc.JVMArgs = append([]string(nil), s.JVMArgs...)
	return lc
}

// Manager wraps the viper instance the settings are read from.
type Manager struct {
	viper *viper.Viper
}

// NewManager creates a Manager with defaults and environment lookup set up.
func NewManager() *Manager {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	m := &Manager{viper: v}
	m.setDefaults()
	return m
}

func (m *Manager) setDefaults() {
	m.viper.SetDefault(KeyConfig, "")
	m.viper.SetDefault(KeyJava, "java")
	m.viper.SetDefault(KeyJar, "server.jar")
	m.viper.SetDefault(KeyMinMemory, "")
	m.viper.SetDefault(KeyMaxMemory, "")
	m.viper.SetDefault(KeyJVMArgs, []string{})
	m.viper.SetDefault(KeyLogLevel, "")
	m.viper.SetDefault(KeyListen, "127.0.0.1:25580")
	m.viper.SetDefault(KeyAdvertise, false)
	m.viper.SetDefault(KeyName, "msc")
}

// RegisterFlags adds the settings flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "server configuration file or directory (env MSC_CONFIG)")
	fs.String(KeyJava, "java", "java executable used to run the server")
	fs.String(KeyJar, "server.jar", "server jar, relative to the server directory")
	fs.String(KeyMinMemory, "", "initial JVM heap, e.g. 1G")
	fs.String(KeyMaxMemory, "", "maximum JVM heap, e.g. 4G")
	fs.StringSlice(KeyJVMArgs, nil, "extra JVM argument (repeatable)")
	fs.String(KeyLogLevel, "", "log level: debug, info, warn or error (default silent)")
	fs.String(KeyListen, "127.0.0.1:25580", "address of the remote editor")
	fs.Bool(KeyAdvertise, false, "announce the running server with mDNS")
	fs.String(KeyName, "msc", "instance name used when advertising")
}

// BindFlags makes flags in fs override environment and file values. Keys
// without a matching flag are skipped.
func (m *Manager) BindFlags(fs *pflag.FlagSet) error {
	for _, key := range []string{
		KeyConfig, KeyJava, KeyJar, KeyMinMemory, KeyMaxMemory, KeyJVMArgs,
		KeyLogLevel, KeyListen, KeyAdvertise, KeyName,
	} {
		flag := fs.Lookup(key)
		if flag == nil {
			continue
		}
		if err := m.viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", key, err)
		}
	}
	return nil
}

// ReadFile loads msc-settings.yaml from dir when present.
func (m *Manager) ReadFile(dir string) error {
	m.viper.SetConfigName(FileName)
	m.viper.SetConfigType("yaml")
	m.viper.AddConfigPath(dir)

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read settings in %s: %w", dir, err)
	}
	return nil
}

// Get returns a single raw value.
func (m *Manager) Get(key string) any {
	return m.viper.Get(key)
}

// Load resolves and validates the settings.
func (m *Manager) Load() (*Settings, error) {
	s := &Settings{}
	if err := m.viper.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// Validate checks values that would otherwise fail much later.
func (s *Settings) Validate() error {
	switch strings.ToLower(s.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", s.LogLevel)
	}
	if _, _, err := net.SplitHostPort(s.Listen); err != nil {
		return fmt.Errorf("listen address %q: %w", s.Listen, err)
	}
	if s.Advertise && s.Name == "" {
		return errors.New("advertising needs an instance name")
	}
	return s.Launch("").Validate()
}
