package main

import (
	"fmt"
	"os"

	"github.com/lox/tenpin/cmd/tenpin/shared"
	"github.com/lox/tenpin/internal/batch"
	"github.com/lox/tenpin/internal/notation"
)

// CheckCmd checks a file of games
type CheckCmd struct {
	File    string `arg:"" type:"existingfile" help:"File with one game per line (# starts a comment)"`
	Out     string `kong:"help='Write the report to this file instead of stdout'"`
	Workers int    `kong:"help='Games checked in parallel (default from config)'"`
	Format  string `kong:"help='Input format: auto, marks or numeric (default from config)'"`
	Strict  bool   `kong:"help='Exit non-zero if any game is rejected'"`
}

func (c *CheckCmd) Run(globals *Globals) error {
	cfg, logger, closeLog, err := globals.load()
	if err != nil {
		return err
	}
	defer closeLog()

	workers := cfg.Check.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}
	formatName := cfg.Check.Format
	if c.Format != "" {
		formatName = c.Format
	}
	format, err := notation.ParseFormat(formatName)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	checker := batch.NewChecker(logger, workers, format)
	results, err := checker.CheckFile(ctx, c.File)
	if err != nil {
		return err
	}

	if c.Out != "" {
		if err := batch.WriteReport(c.Out, results); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Out, "games", len(results))
	} else {
		os.Stdout.Write(batch.FormatReport(results))
	}

	if c.Strict {
		for _, r := range results {
			if !r.OK() {
				return fmt.Errorf("line %d rejected: %w", r.Line.Number, r.Err)
			}
		}
	}
	return nil
}
