package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tenpin.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, `
log {
  level = "debug"
}

check {
  workers = 8
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, 8, cfg.Check.Workers)
	assert.Equal(t, "auto", cfg.Check.Format)
	assert.Equal(t, 10, cfg.Simulate.Games)
	assert.Equal(t, "uniform", cfg.Simulate.Style)
	assert.Equal(t, "default", cfg.Play.Theme)
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
log {
  level = "warn"
  file  = "tenpin.log"
}

check {
  workers = 2
  format  = "marks"
}

simulate {
  games = 500
  style = "pro"
}

play {
  theme = "dark"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, &Config{
		Log:      &LogSettings{Level: "warn", File: "tenpin.log"},
		Check:    &CheckSettings{Workers: 2, Format: "marks"},
		Simulate: &SimulateSettings{Games: 500, Style: "pro"},
		Play:     &PlaySettings{Theme: "dark"},
	}, cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeConfig(t, `log {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")

	_, err = Load(writeConfig(t, `log { verbosity = 3 }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"log level", func(c *Config) { c.Log.Level = "trace" }, "invalid log level"},
		{"workers", func(c *Config) { c.Check.Workers = -1 }, "check workers"},
		{"format", func(c *Config) { c.Check.Format = "csv" }, "invalid check format"},
		{"games", func(c *Config) { c.Simulate.Games = -5 }, "simulate games"},
		{"style", func(c *Config) { c.Simulate.Style = "bumpers" }, "invalid simulate style"},
		{"theme", func(c *Config) { c.Play.Theme = "neon" }, "invalid theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
