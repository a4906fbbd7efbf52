package tui

import "github.com/charmbracelet/lipgloss"

// ------- styling (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	emptyStyle    = lipgloss.NewStyle().Faint(true).Italic(true)

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

var (
	paneStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(lipgloss.Color("12"))
	dialogStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(1, 2).Width(50)
)

// plain drops colors and box glyphs for the mono theme.
func plain() {
	reset := lipgloss.NewStyle()
	titleStyle, successStyle, pendingStyle, accentStyle = reset.Bold(true), reset, reset, reset
	mutedStyle, selectedStyle = reset, reset.Reverse(true)
	doneStyle, helpStyle, headerStyle, emptyStyle = reset.Strikethrough(true), reset, reset.Bold(true), reset
	boxChecked, boxUnchecked = "[x]", "[ ]"
}
