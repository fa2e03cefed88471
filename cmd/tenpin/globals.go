package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/tenpin/cmd/tenpin/shared"
	"github.com/lox/tenpin/internal/config"
)

// Globals are flags shared by every command
type Globals struct {
	Config string `kong:"default='tenpin.hcl',help='HCL configuration file (optional)'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

// load reads the configuration and builds the logger it describes. The
// returned closer releases the log file, if any.
func (g *Globals) load() (*config.Config, *log.Logger, func() error, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config %s: %w", g.Config, err)
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}

	logger, closer, err := shared.SetupLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, closer, nil
}
