package components

import (
	"strings"

	"github.com/yutoain/savings-app/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. notice replaces the key
// hints when non-empty (e.g. "expense added" or a save error).
func RenderStatusBar(width int, notice string, isErr bool, dataPath string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		MaxWidth(width).
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [?]help  [a]expense  [i]income  [t]heme  [q]uit"
	if notice != "" {
		fg := t.Green
		if isErr {
			fg = t.Red
		}
		left = " " + lipgloss.NewStyle().Foreground(fg).Background(t.Surface).Render(notice)
	}

	right := t.Name
	if dataPath != "" {
		right = dataPath + " · " + right
	}
	right += " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Drop the path before the hints when space runs out.
		right = t.Name + " "
		padding = width - lipgloss.Width(left) - lipgloss.Width(right)
	}
	if padding < 0 {
		right, padding = "", max(0, width-lipgloss.Width(left))
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
