// Package batch checks files holding one bowling game per line. Each game is
// scored on its own; nothing is aggregated across lines.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/tenpin/internal/game"
	"github.com/lox/tenpin/internal/notation"
)

// Line is one game read from input
type Line struct {
	Number int // 1-based line number in the source
	Text   string
}

// Result is the outcome of checking one line
type Result struct {
	Line     Line
	Rolls    []int
	Score    int
	Complete bool
	Err      error // why the line was rejected, nil if it is a legal game
}

// OK reports whether the line held a legal game
func (r Result) OK() bool {
	return r.Err == nil
}

// Checker scores lines concurrently
type Checker struct {
	workers int
	format  notation.Format
	logger  *log.Logger
}

// NewChecker creates a checker. workers below 1 means one worker.
func NewChecker(logger *log.Logger, workers int, format notation.Format) *Checker {
	if workers < 1 {
		workers = 1
	}
	return &Checker{
		workers: workers,
		format:  format,
		logger:  logger.WithPrefix("batch"),
	}
}

// ReadLines reads games from r, skipping blank lines and # comments.
func ReadLines(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, Line{Number: n, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read games: %w", err)
	}
	return lines, nil
}

// CheckFile reads and checks every game in path
func (c *Checker) CheckFile(ctx context.Context, path string) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open games file: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, err
	}
	return c.Check(ctx, lines)
}

// Check scores every line. Illegal games are reported in their Result; the
// returned error is only set when ctx ends before all lines are done.
func (c *Checker) Check(ctx context.Context, lines []Line) ([]Result, error) {
	results := make([]Result, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.checkLine(line)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rejected := 0
	for _, r := range results {
		if !r.OK() {
			rejected++
		}
	}
	c.logger.Info("Checked games", "games", len(results), "rejected", rejected, "workers", c.workers)
	return results, nil
}

func (c *Checker) checkLine(line Line) Result {
	result := Result{Line: line}

	rolls, err := notation.ParseRolls(line.Text, c.format)
	if err != nil {
		c.logger.Debug("Rejected game", "line", line.Number, "kind", game.KindOf(err), "error", err)
		result.Err = err
		return result
	}

	g, err := game.FromRolls(rolls)
	if err != nil {
		result.Err = err
		return result
	}
	result.Rolls = rolls
	result.Score = g.Score()
	result.Complete = g.IsComplete()
	return result
}
