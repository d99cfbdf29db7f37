package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#DDA036")
	colorSubtle = lipgloss.Color("#9A9EA0")
	colorError  = lipgloss.Color("#E95420")
	colorOK     = lipgloss.Color("#4CAF50")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSubtle)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	okStyle = lipgloss.NewStyle().
		Foreground(colorOK)
)

// renderHeader renders the editor header with the file name and a dirty
// marker
func renderHeader(path string, dirty bool) string {
	name := path
	if name == "" {
		name = "(new project)"
	}
	if dirty {
		name += " *"
	}
	return titleStyle.Render("ebsedit - "+name) + "\n" +
		helpStyle.Render("────────────────────────────────────────────────────────────")
}
