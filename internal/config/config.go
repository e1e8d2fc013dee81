// Package config loads the xraise configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/xraise/internal/condition"
	"github.com/mj1618/xraise/internal/logger"
	"github.com/mj1618/xraise/internal/platform"
)

// Config is the on-disk configuration. Command-line flags override it.
type Config struct {
	// Display is the X display to connect to. Empty means $DISPLAY.
	Display string `yaml:"display" toml:"display"`
	// Source selects how windows are enumerated: client-list or tree.
	Source string `yaml:"source" toml:"source"`
	Log    Log    `yaml:"log" toml:"log"`
	// Aliases maps short names to window queries, e.g. chat: class = "Caprine".
	Aliases map[string]string `yaml:"aliases" toml:"aliases"`
}

type Log struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Source:  platform.SourceClientList,
		Log:     Log{Level: "warn"},
		Aliases: map[string]string{},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/xraise/config.yaml, falling back to
// the user config directory.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get config directory: %w", err)
		}
	}
	return filepath.Join(dir, "xraise", "config.yaml"), nil
}

// Load reads the configuration at path. An empty path means DefaultPath, and
// a missing default file yields Default. A missing explicit path is an error.
func Load(path string, log *logger.Logger) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			log.Debug("No config file, using defaults", "path", path)
			return Default(), nil
		}
		return nil, err
	}
	log.Debug("Loaded config", "path", path, "aliases", len(cfg.Aliases))
	return cfg, nil
}

// LoadFile decodes one file on top of Default. Files ending in .toml are
// decoded as TOML and everything else as YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	if cfg.Aliases == nil {
		cfg.Aliases = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Source {
	case "", platform.SourceClientList, platform.SourceTree:
	default:
		return fmt.Errorf("unknown source %q (use %s or %s)", c.Source, platform.SourceClientList, platform.SourceTree)
	}
	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("unknown log level %q", c.Log.Level)
		}
	}
	for _, name := range c.AliasNames() {
		if _, err := condition.Parse(c.Aliases[name]); err != nil {
			return fmt.Errorf("alias %q: %w", name, err)
		}
	}
	return nil
}

// Alias returns the parsed query for name.
func (c *Config) Alias(name string) (condition.Condition, error) {
	q, ok := c.Aliases[name]
	if !ok {
		return nil, fmt.Errorf("unknown alias %q", name)
	}
	return condition.Parse(q)
}

// AliasNames returns the alias names sorted.
func (c *Config) AliasNames() []string {
	names := make([]string, 0, len(c.Aliases))
	for name := range c.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
