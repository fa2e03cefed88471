package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used by the prompt
type Theme struct {
	Header  lipgloss.Style
	Info    lipgloss.Style
	Score   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Prompt  lipgloss.Style
	Help    lipgloss.Style
}

// ThemeByName returns the named theme, falling back to the default
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return Theme{
			Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#3C3C8C")).Bold(true).Padding(0, 1),
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#303030")),
			Score:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1A5E20")).Bold(true),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#1A5E20")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#B00020")).Bold(true),
			Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("#3C3C8C")).Bold(true),
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#707070")),
		}
	case "dark":
		return Theme{
			Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#1F1F3A")).Bold(true).Padding(0, 1),
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0")),
			Score:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
			Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A")),
		}
	default:
		return Theme{
			Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Bold(true).Padding(0, 1),
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
			Score:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
			Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		}
	}
}
