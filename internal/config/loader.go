package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/scarff-dev/scarff/internal/defs"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "SCARFF_CONFIG"

// Path returns the config file location: the SCARFF_CONFIG override if
// set, otherwise config.yaml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "scarff", defs.ConfigYAML), nil
}

// Load reads the user config. A missing file returns defaults silently;
// an unreadable or invalid file returns defaults with a warning. Load
// never fails the invocation over a preferences file.
func Load(log *slog.Logger) *Config {
	cfg := NewDefaultConfig()

	path, err := Path()
	if err != nil {
		log.Warn("cannot locate config directory, using defaults", "error", err)
		return cfg
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg
	}
	if err != nil {
		log.Warn("cannot read config, using defaults", "path", path, "error", err)
		return cfg
	}

	loaded := NewDefaultConfig()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		log.Warn("invalid config, using defaults", "path", path, "error", err)
		return cfg
	}
	if err := loaded.Validate(); err != nil {
		log.Warn("invalid config value, using defaults", "path", path, "error", err)
		return cfg
	}

	return loaded
}
