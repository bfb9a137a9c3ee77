package components

import (
	"fmt"

	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForProgress returns red/orange/yellow/green as a goal fills up.
func ColorForProgress(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1:
		return string(t.GreenBright)
	case pct >= 0.7:
		return string(t.Green)
	case pct >= 0.4:
		return string(t.Yellow)
	case pct >= 0.2:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// ColorForLevel maps a motivation level to a theme color.
func ColorForLevel(l model.MotivationLevel) lipgloss.Color {
	t := theme.Active
	switch l {
	case model.MotivationDanger:
		return t.Red
	case model.MotivationWarning:
		return t.Orange
	default:
		return t.Green
	}
}

// GoalBar renders a labeled progress bar. percent is 0-100.
func GoalBar(label string, percent float64, labelW, barWidth int) string {
	t := theme.Active

	pct := percent / 100
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if barWidth < 4 {
		barWidth = 4
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForProgress(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForProgress(pct))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	out := ""
	if label != "" {
		out = labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + spaceStyle.Render(" ")
	}
	return out + bar.ViewAs(pct) + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
