package main

import (
	"github.com/lox/tenpin/cmd/tenpin/shared"
	"github.com/lox/tenpin/internal/session"
	"github.com/lox/tenpin/internal/tui"
)

// PlayCmd runs the interactive prompt
type PlayCmd struct {
	Theme string `kong:"help='Colour theme: default, dark or light (default from config)'"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, logger, closeLog, err := globals.load()
	if err != nil {
		return err
	}
	defer closeLog()

	// The prompt owns the terminal; only log when a file is configured
	if cfg.Log.File == "" {
		logger = shared.DiscardLogger()
	}

	theme := cfg.Play.Theme
	if c.Theme != "" {
		theme = c.Theme
	}

	logger.Info("Starting interactive game", "theme", theme)
	return tui.Run(logger, tui.ThemeByName(theme), func() *session.Session {
		return session.New(logger)
	})
}
