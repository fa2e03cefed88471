// Package tui is a Bubble Tea prompt for bowling one game by hand.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/tenpin/internal/game"
	"github.com/lox/tenpin/internal/notation"
	"github.com/lox/tenpin/internal/session"
)

// SessionFactory creates the session for each new game
type SessionFactory func() *session.Session

// Model is the Bubble Tea model for the prompt
type Model struct {
	newSession SessionFactory
	session    *session.Session
	logger     *log.Logger
	theme      Theme

	input    textinput.Model
	status   string
	failed   bool
	quitting bool
}

// New creates the prompt model
func New(logger *log.Logger, theme Theme, newSession SessionFactory) *Model {
	ti := textinput.New()
	ti.Placeholder = "pins (7), marks (X, 7/, 9-) or several at once; 'new' restarts, 'q' quits"
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = theme.Prompt

	return &Model{
		newSession: newSession,
		session:    newSession(),
		logger:     logger.WithPrefix("tui"),
		theme:      theme,
		input:      ti,
	}
}

// Session returns the session for the game in progress
func (m *Model) Session() *session.Session {
	return m.session
}

// Status returns the last status line and whether it reports an error
func (m *Model) Status() (string, bool) {
	return m.status, m.failed
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			return m, m.submit(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(line string) tea.Cmd {
	switch strings.ToLower(line) {
	case "":
		return nil
	case "q", "quit", "exit":
		m.quitting = true
		return tea.Quit
	case "new":
		m.session = m.newSession()
		m.setStatus("New game", false)
		m.logger.Debug("Started new game", "session", m.session.ID())
		return nil
	}

	accepted, err := m.rollLine(line)
	snap := m.session.Snapshot()
	switch {
	case err != nil:
		m.setStatus(describe(err, accepted), true)
	case snap.Complete:
		m.setStatus(fmt.Sprintf("Game over: %d. Type 'new' to bowl again.", snap.Score), false)
	default:
		m.setStatus(fmt.Sprintf("Recorded %d roll(s)", accepted), false)
	}
	return nil
}

// rollLine rolls every ball in line and returns how many were accepted
// before the first error.
func (m *Model) rollLine(line string) (int, error) {
	if notation.Detect(line) == notation.Numeric {
		pins, err := notation.ParseInts(line)
		if err != nil {
			return 0, err
		}
		for i, p := range pins {
			if err := m.session.Roll(p); err != nil {
				return i, err
			}
		}
		return len(pins), nil
	}

	sheet, err := notation.Parse(line)
	if err != nil {
		return 0, err
	}
	return sheet.Apply(m.session)
}

func describe(err error, accepted int) string {
	var msg string
	switch game.KindOf(err) {
	case game.InvalidPinCount:
		msg = "Pins must be between 0 and 10"
	case game.GameAlreadyComplete:
		msg = "The game is over. Type 'new' to bowl again"
	case game.FrameOverflow:
		if errors.Is(err, game.ErrTenthFrameOverflow) {
			msg = "Too many pins for the tenth frame"
		} else {
			msg = "Too many pins for this frame"
		}
	default:
		if errors.Is(err, game.ErrGameAlreadyComplete) {
			msg = "The game is over. Type 'new' to bowl again"
		} else {
			msg = err.Error()
		}
	}
	if accepted > 0 {
		msg = fmt.Sprintf("%s (%d roll(s) recorded first)", msg, accepted)
	}
	return msg
}

func (m *Model) setStatus(status string, failed bool) {
	m.status = status
	m.failed = failed
}

// View renders the prompt
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(m.theme.Header.Render("tenpin"))
	b.WriteString("\n\n")

	if snap.Complete {
		b.WriteString(m.theme.Info.Render("Game complete"))
	} else {
		b.WriteString(m.theme.Info.Render(fmt.Sprintf("Frame %d  ·  %d pins standing", snap.CurrentFrame, snap.Standing)))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Score.Render(fmt.Sprintf("Score %d", snap.Score)))
	b.WriteString("\n\n")

	if m.status != "" {
		style := m.theme.Success
		if m.failed {
			style = m.theme.Error
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the prompt on the terminal and blocks until the user quits.
func Run(logger *log.Logger, theme Theme, newSession SessionFactory) error {
	p := tea.NewProgram(New(logger, theme, newSession))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run prompt: %w", err)
	}
	return nil
}
