// Package config loads the sokoban tool configuration.
//
// Precedence (highest to lowest): explicitly set flags > SOKOBAN_* environment
// variables > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all CLI and server options.
type Config struct {
	DataDir    string `koanf:"data_dir"`
	Storage    string `koanf:"storage"`
	SQLitePath string `koanf:"sqlite_path"`
	Addr       string `koanf:"addr"`
	LogLevel   string `koanf:"log_level"`
	Color      string `koanf:"color"`
	Workers    int    `koanf:"workers"`
}

const (
	DefaultDataDir    = "./data"
	DefaultStorage    = "fs"
	DefaultSQLiteFile = "levels.db"
	DefaultAddr       = ":8080"
	DefaultLogLevel   = "info"
	DefaultColor      = "auto"
	DefaultWorkers    = 4

	envPrefix = "SOKOBAN_"
)

// FileNames are searched, in order, in the working directory.
var FileNames = []string{"sokoban.yaml", "sokoban.yml"}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range FileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds a Config from defaults, cfgFile (or a sokoban.yaml in the
// working directory), the environment and flags. Only flags that were set
// on the command line override other sources; flag names map to keys by
// replacing '-' with '_'.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"data_dir":  DefaultDataDir,
		"storage":   DefaultStorage,
		"addr":      DefaultAddr,
		"log_level": DefaultLogLevel,
		"color":     DefaultColor,
		"workers":   DefaultWorkers,
	}, "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// SOKOBAN_DATA_DIR -> data_dir
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = filepath.Join(cfg.DataDir, DefaultSQLiteFile)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, used, nil
}

// Validate rejects unknown option values.
func (c *Config) Validate() error {
	switch c.Storage {
	case "fs", "sqlite":
	default:
		return fmt.Errorf("invalid storage %q: expected fs or sqlite", c.Storage)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q: expected auto, always or never", c.Color)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
