package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pocketbook/backend/pkg/avatar"
	"github.com/pocketbook/backend/pkg/forms"
)

const (
	colorText    lipgloss.Color = "#cdd6f4"
	colorSubtext lipgloss.Color = "#a6adc8"
	colorOverlay lipgloss.Color = "#7f849c"
	colorSurface lipgloss.Color = "#313244"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorGreen   lipgloss.Color = "#a6e3a1"
	colorRed     lipgloss.Color = "#f38ba8"
	colorYellow  lipgloss.Color = "#f9e2af"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorSubtext)
	selectedStyle = lipgloss.NewStyle().Background(colorSurface).Foreground(colorText)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorOverlay)
	errorStyle    = lipgloss.NewStyle().Foreground(colorRed)
	incomeStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	expenseStyle  = lipgloss.NewStyle().Foreground(colorRed)
	favoriteStyle = lipgloss.NewStyle().Foreground(colorYellow)
	labelStyle    = lipgloss.NewStyle().Foreground(colorSubtext).Width(12)
	dialogStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorRed).Padding(0, 1)
	snackbarStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorRed).Padding(0, 1)
	helpStyle     = lipgloss.NewStyle().MarginTop(1)
)

// avatarView renders the initials on the color derived from the name.
func avatarView(firstName, lastName string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(avatar.Color(firstName, lastName))).
		Width(4).
		Align(lipgloss.Center).
		Render(avatar.Initials(firstName, lastName))
}

func favoriteMark(favorite bool) string {
	if favorite {
		return favoriteStyle.Render("★")
	}
	return mutedStyle.Render("☆")
}

// fieldError renders the message for a field error code, or nothing.
func fieldError(code forms.ErrorCode) string {
	if code == forms.NoError {
		return ""
	}
	return errorStyle.Render("  " + code.Message())
}
