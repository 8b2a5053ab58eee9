package cmd

import "github.com/charmbracelet/lipgloss"

//nolint:gochecknoglobals // static styles
var (
	colorSuccess = lipgloss.Color("42")  // Green
	colorError   = lipgloss.Color("160") // Red
	colorWarning = lipgloss.Color("214") // Orange
	colorSubtle  = lipgloss.Color("241") // Gray

	styleTitle   = lipgloss.NewStyle().Bold(true)
	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess)
	styleError   = lipgloss.NewStyle().Foreground(colorError)
	styleWarning = lipgloss.NewStyle().Foreground(colorWarning)
	styleSubtle  = lipgloss.NewStyle().Foreground(colorSubtle)
)

// scoreStyle colors a 0..100 score.
func scoreStyle(score int) (style lipgloss.Style) {
	switch {
	case score >= 80:
		style = styleSuccess
	case score >= 50:
		style = styleWarning
	default:
		style = styleError
	}
	return style
}
