package tui

import (
	"fmt"
	"strings"

	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/tui/components"
	"github.com/yutoain/savings-app/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderRecentTab(cw int) string {
	t := theme.Active
	cur := a.cfg.General.Currency
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	title := fmt.Sprintf("Recent transactions (%d)", len(a.recent))
	if len(a.recent) == 0 {
		return components.ContentCard(title,
			lipgloss.NewStyle().Foreground(t.TextMuted).Render("Nothing recorded yet. Press a for an expense or i for an income."), cw)
	}

	inner := components.CardInnerWidth(cw)
	labelW := max(inner-50, 12)

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	selBg := lipgloss.NewStyle().Background(t.SurfaceHover)

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("  %-10s  %-8s  %-*s  %-14s %12s", "Date", "Type", labelW, "Label", "Paid with", "Amount")))
	b.WriteString("\n")
	for i, tx := range a.recent {
		amountStyle := lipgloss.NewStyle().Foreground(t.Green)
		if tx.Kind == model.KindExpense {
			amountStyle = lipgloss.NewStyle().Foreground(t.Red)
		}
		line := fmt.Sprintf("%-10s  %-8s  %-*s  %-14s ",
			tx.Date.String(), tx.Kind, labelW, truncStr(tx.Label, labelW), truncStr(tx.Method, 14))
		amount := amountStyle.Render(fmt.Sprintf("%12s", cli.FormatSigned(tx.Signed(), cur)))

		if i == a.recentCursor {
			b.WriteString("▸ " + selBg.Foreground(t.TextPrimary).Bold(true).Render(line) + amount)
		} else {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(t.TextPrimary).Render(line) + amount)
		}
		b.WriteString("\n")
	}

	return components.ContentCard(title, strings.TrimRight(b.String(), "\n"), cw) + "\n" +
		dim.Render(" [j/k] move  [x] delete  [a] expense  [i] income")
}
