package cli

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"qcalc/internal/tui"
)

// Config supplies defaults for flags that were not given on the command line.
type Config struct {
	// Generator used when none is named.
	Generator string `yaml:"generator"`
	// Width is the register size d.
	Width int `yaml:"width"`
	// Output is the file build writes to; empty means stdout.
	Output  string      `yaml:"output"`
	Palette tui.Palette `yaml:"palette"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Generator: "calc",
		Width:     2,
		Palette:   tui.DefaultPalette(),
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Width < 1 {
		return nil, errors.Errorf("config %s: width must be positive, got %d", path, cfg.Width)
	}
	return cfg, nil
}

// SaveConfig writes cfg as YAML.
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write config")
}
