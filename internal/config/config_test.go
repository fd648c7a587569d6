package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, DefaultStorage, cfg.Storage)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, filepath.Join(DefaultDataDir, DefaultSQLiteFile), cfg.SQLitePath)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "sokoban.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`
data_dir: /srv/levels
storage: sqlite
addr: ":7000"
log_level: debug
workers: 2
`), 0o644))

	t.Setenv("SOKOBAN_ADDR", ":7100")
	t.Setenv("SOKOBAN_WORKERS", "8")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", "", "")
	flags.String("data-dir", "", "")
	flags.Int("workers", 0, "")
	require.NoError(t, flags.Parse([]string{"--data-dir", "/tmp/other"}))

	cfg, used, err := Load(cfgFile, flags)
	require.NoError(t, err)
	assert.Equal(t, cfgFile, used)
	assert.Equal(t, "/tmp/other", cfg.DataDir, "flag beats file")
	assert.Equal(t, ":7100", cfg.Addr, "env beats file, unset flag ignored")
	assert.Equal(t, 8, cfg.Workers, "env values are converted")
	assert.Equal(t, "sqlite", cfg.Storage)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join("/tmp/other", DefaultSQLiteFile), cfg.SQLitePath)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{Storage: "fs", Color: "auto", LogLevel: "info", Workers: 1}
	require.NoError(t, base.Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"storage", func(c *Config) { c.Storage = "redis" }},
		{"color", func(c *Config) { c.Color = "sometimes" }},
		{"log level", func(c *Config) { c.LogLevel = "trace" }},
		{"workers", func(c *Config) { c.Workers = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
