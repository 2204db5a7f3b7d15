// Package report renders game and simulation results for the terminal.
package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/warsim/internal/war"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(14)

	WinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	LossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	DrawStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// OutcomeStyle picks the style used to print an outcome.
func OutcomeStyle(o war.Outcome) lipgloss.Style {
	switch o {
	case war.LeftWins:
		return WinStyle
	case war.RightWins:
		return LossStyle
	default:
		return DrawStyle
	}
}
