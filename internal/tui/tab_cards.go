package tui

import (
	"fmt"
	"strings"

	"github.com/yutoain/savings-app/internal/billing"
	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/pipeline"
	"github.com/yutoain/savings-app/internal/tui/components"
	"github.com/yutoain/savings-app/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCardsTab(cw int) string {
	t := theme.Active
	cur := a.cfg.General.Currency
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.doc.Cards) == 0 {
		return components.ContentCard("Cards",
			lipgloss.NewStyle().Foreground(t.TextMuted).Render("No cards registered. Press n to add one."), cw)
	}

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	nameW := max(min(components.CardInnerWidth(cw)-70, 24), 10)
	header := fmt.Sprintf("   %-*s %10s %8s %12s %14s %14s", nameW, "Card", "Closes", "Pays", "This month", "Upcoming", "Debit of today")

	today := a.ledger.Today()
	month := pipeline.FilterExpensesByMonth(a.doc.Expenses, today.Year(), today.Month())

	var b strings.Builder
	b.WriteString(headStyle.Render(header))
	b.WriteString("\n")
	for i, c := range a.doc.Cards {
		spent := pipeline.SumExpenses(pipeline.FilterExpensesByMethod(month, c.ID))
		next := billing.ForCard(c, today)
		var upcoming int64
		for _, m := range a.dash.Schedule {
			for _, d := range m.Details {
				if d.CardID == c.ID {
					upcoming += d.Amount
				}
			}
		}

		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("●")
		line := fmt.Sprintf("%-*s %10s %8d %12s %14s %14s",
			nameW, truncStr(c.Name, nameW),
			c.ClosingDay.String(), c.PaymentDay,
			cli.FormatMoney(spent, cur),
			cli.FormatMoney(upcoming, cur),
			next.String())
		style := rowStyle
		marker := "  "
		if i == a.cardCursor {
			style = selStyle
			marker = "▸ "
		}
		b.WriteString(marker + swatch + " " + style.Render(line) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(dim.Render("Upcoming sums the projected withdrawals; the last column is when a purchase made today is debited."))

	return components.ContentCard("Cards", b.String(), cw) + "\n" +
		dim.Render(" [n] new  [e] edit  [x] delete (removes the card's expenses)")
}
