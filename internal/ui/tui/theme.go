package tui

import "github.com/charmbracelet/lipgloss"

// Theme styles the specification browser. Role marks trait roles in the
// detail card and Stage marks the pipeline stage a specification belongs to.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Stage    lipgloss.Style
	Card     lipgloss.Style
	Role     lipgloss.Style
	Toast    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Stage:    lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Italic(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Role:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
