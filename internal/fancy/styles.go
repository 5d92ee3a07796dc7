package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Common styles that can be used across the application
var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	RouteStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	AppStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// RouteText styles a route text
func RouteText(text string) string {
	return RouteStyle.Render(text)
}

// AppText styles an app text
func AppText(text string) string {
	return AppStyle.Render(text)
}
