// Package config loads the tenpin CLI configuration from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is read when no --config flag is given
const DefaultFile = "tenpin.hcl"

// Config represents the complete CLI configuration
type Config struct {
	Log      *LogSettings      `hcl:"log,block"`
	Check    *CheckSettings    `hcl:"check,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
	Play     *PlaySettings     `hcl:"play,block"`
}

// LogSettings controls the logger
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"` // empty logs to stderr
}

// CheckSettings configures batch checking
type CheckSettings struct {
	Workers int    `hcl:"workers,optional"`
	Format  string `hcl:"format,optional"`
}

// SimulateSettings configures the simulator
type SimulateSettings struct {
	Games int    `hcl:"games,optional"`
	Style string `hcl:"style,optional"`
}

// PlaySettings configures the interactive prompt
type PlaySettings struct {
	Theme string `hcl:"theme,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Log: &LogSettings{
			Level: "info",
		},
		Check: &CheckSettings{
			Workers: 4,
			Format:  "auto",
		},
		Simulate: &SimulateSettings{
			Games: 10,
			Style: "uniform",
		},
		Play: &PlaySettings{
			Theme: "default",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Log == nil {
		c.Log = defaults.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}

	if c.Check == nil {
		c.Check = defaults.Check
	}
	if c.Check.Workers == 0 {
		c.Check.Workers = defaults.Check.Workers
	}
	if c.Check.Format == "" {
		c.Check.Format = defaults.Check.Format
	}

	if c.Simulate == nil {
		c.Simulate = defaults.Simulate
	}
	if c.Simulate.Games == 0 {
		c.Simulate.Games = defaults.Simulate.Games
	}
	if c.Simulate.Style == "" {
		c.Simulate.Style = defaults.Simulate.Style
	}

	if c.Play == nil {
		c.Play = defaults.Play
	}
	if c.Play.Theme == "" {
		c.Play.Theme = defaults.Play.Theme
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Check.Workers < 1 || c.Check.Workers > 256 {
		return fmt.Errorf("check workers must be between 1 and 256, got %d", c.Check.Workers)
	}

	validFormats := map[string]bool{
		"auto":    true,
		"marks":   true,
		"numeric": true,
	}
	if !validFormats[c.Check.Format] {
		return fmt.Errorf("invalid check format: %s", c.Check.Format)
	}

	if c.Simulate.Games < 1 {
		return fmt.Errorf("simulate games must be positive, got %d", c.Simulate.Games)
	}

	validStyles := map[string]bool{
		"uniform": true,
		"league":  true,
		"pro":     true,
	}
	if !validStyles[c.Simulate.Style] {
		return fmt.Errorf("invalid simulate style: %s", c.Simulate.Style)
	}

	validThemes := map[string]bool{
		"default": true,
		"dark":    true,
		"light":   true,
	}
	if !validThemes[c.Play.Theme] {
		return fmt.Errorf("invalid theme: %s", c.Play.Theme)
	}

	return nil
}
