package main

import (
	"fmt"
	"time"

	"github.com/lox/tenpin/cmd/tenpin/shared"
	"github.com/lox/tenpin/internal/simulator"
)

// SimulateCmd bowls random games
type SimulateCmd struct {
	Games int    `kong:"help='Number of games (default from config)'"`
	Seed  *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Style string `kong:"help='Bowler style: uniform, league or pro (default from config)'"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	cfg, logger, closeLog, err := globals.load()
	if err != nil {
		return err
	}
	defer closeLog()

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info("Using deterministic seed", "seed", seed)
	} else {
		seed = time.Now().UnixNano()
		logger.Info("Using random seed", "seed", seed)
	}

	config := simulator.Config{
		Games:  cfg.Simulate.Games,
		Seed:   seed,
		Style:  cfg.Simulate.Style,
		Logger: logger,
	}
	if c.Games > 0 {
		config.Games = c.Games
	}
	if c.Style != "" {
		config.Style = c.Style
	}

	sim, err := simulator.New(config)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	results, err := sim.Run(ctx)
	for _, r := range results {
		fmt.Printf("seed %d: %v -> %d\n", r.Seed, r.Rolls, r.Score)
	}
	return err
}
