package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/msc/internal/logging"
)

// FileName is the name of the configuration file inside the server directory.
const FileName = "msc-configuration.yaml"

// Mutex for file writes; the temp-file rename is not safe to interleave.
var fileMutex sync.Mutex

// DefaultDir returns the Minecraft server directory used when no path is
// given on the command line:
//   - Windows: %APPDATA%\.minecraft\server
//   - Others: $HOME/.minecraft/server
func DefaultDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("no server directory given and APPDATA is not set")
		}
		return filepath.Join(appData, ".minecraft", "server"), nil

	default:
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".minecraft", "server"), nil
	}
}

// ResolvePath turns a user-supplied location into a configuration file path.
// An empty location means DefaultDir. A location ending in .yaml or .yml is
// taken as the file itself; anything else is a directory holding FileName.
func ResolvePath(location string) (string, error) {
	if location == "" {
		dir, err := DefaultDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, FileName), nil
	}

	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		return location, nil
	}
	return filepath.Join(location, FileName), nil
}

// Read parses the configuration at path. Fields missing from the file keep
// their defaults.
func Read(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Port != nil && *cfg.Port == 0 {
		return nil, fmt.Errorf("failed to parse config file: %w",
			&ValidationError{Field: "port", Input: "0", Message: "must be a number between 1 and 65535"})
	}

	return cfg, nil
}

// Load reads the configuration at path, falling back to Default when the file
// is missing or cannot be parsed.
func Load(path string) *ServerConfig {
	cfg, err := Read(path)
	if err == nil {
		logging.Debug("Loaded configuration", zap.String("path", path))
		return cfg
	}

	if errors.Is(err, fs.ErrNotExist) {
		logging.Info("No configuration file, using defaults", zap.String("path", path))
	} else {
		logging.Warn("Unusable configuration file, using defaults",
			zap.String("path", path),
			zap.Error(err),
		)
	}
	return Default()
}

// Save writes c to path, creating the directory if needed.
// The write goes through a temporary file and a rename so a crash never leaves
// a truncated configuration behind.
func (c *ServerConfig) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# msc - Minecraft server configuration
# Edited by msc; absent optional values let the server use its own defaults.

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	logging.Debug("Saved configuration", zap.String("path", path))
	return nil
}
