package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/avlec/stranded/types"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleInfo = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40"))

	styleWarning = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	styleDanger = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// renderLine applies the style matching the line's semantic kind. The
// engine annotates every line, so no text sniffing is needed here.
func renderLine(text string, kind types.LineKind) string {
	switch kind {
	case types.LineSuccess:
		return styleSuccess.Render(text)
	case types.LineWarning:
		return styleWarning.Render(text)
	case types.LineDanger:
		return styleDanger.Render(text)
	default:
		return styleInfo.Render(text)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
