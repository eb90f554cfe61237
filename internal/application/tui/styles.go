package tui

import (
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/domain/entity"
)

var (
	colorMuted  = lipgloss.Color("240")
	colorAccent = lipgloss.Color("39")
	colorRed    = lipgloss.Color("196")
	colorAmber  = lipgloss.Color("214")
	colorGreen  = lipgloss.Color("34")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	hintStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(colorRed)

	avatarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(colorAccent).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	formStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	focusedStyle = lipgloss.NewStyle().Foreground(colorAccent)
)

// priorityStyle colours the priority line: high red, medium amber, low default.
func priorityStyle(p entity.PriorityLevel) lipgloss.Style {
	switch p {
	case entity.PriorityHigh:
		return lipgloss.NewStyle().Foreground(colorRed)
	case entity.PriorityMedium:
		return lipgloss.NewStyle().Foreground(colorAmber)
	}
	return lipgloss.NewStyle()
}

// cardBorderColor is green for completed tasks and red for canceled ones.
func cardBorderColor(status entity.Status) lipgloss.TerminalColor {
	switch status {
	case entity.StatusCompleted:
		return colorGreen
	case entity.StatusCanceled:
		return colorRed
	}
	return colorMuted
}
