package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/tenpin/internal/game"
	"github.com/lox/tenpin/internal/notation"
)

var (
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	completeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// ScoreCmd scores a single game
type ScoreCmd struct {
	Rolls  []string `arg:"" help:"Rolls as score sheet marks (X 7/ 9-) or pin counts (10 7 3 9 0)"`
	Format string   `kong:"default='auto',enum='auto,marks,numeric',help='Input format: auto, marks or numeric'"`
}

func (c *ScoreCmd) Run(globals *Globals) error {
	_, logger, closeLog, err := globals.load()
	if err != nil {
		return err
	}
	defer closeLog()

	format, err := notation.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	input := strings.Join(c.Rolls, " ")
	rolls, err := notation.ParseRolls(input, format)
	if err != nil {
		logger.Debug("Rejected game", "input", input, "kind", game.KindOf(err))
		return err
	}
	g, err := game.FromRolls(rolls)
	if err != nil {
		return err
	}

	logger.Debug("Scored game", "rolls", rolls, "frame", g.CurrentFrame())
	fmt.Println(renderScore(g))
	return nil
}

func renderScore(g *game.Game) string {
	score := scoreStyle.Render(fmt.Sprintf("%d", g.Score()))
	if g.IsComplete() {
		return score + " " + completeStyle.Render("complete")
	}
	return score + " " + pendingStyle.Render(fmt.Sprintf("in progress, frame %d", g.CurrentFrame()))
}
