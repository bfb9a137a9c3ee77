package tui

import (
	"fmt"
	"strings"

	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/pipeline"
	"github.com/yutoain/savings-app/internal/tui/components"
	"github.com/yutoain/savings-app/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	d := a.dash
	cur := a.cfg.General.Currency
	var b strings.Builder

	// Row 1: Metric cards
	cards := []components.Metric{
		components.MoneyMetric("Income", d.MonthIncome, cur, components.ToneIncome).
			WithDelta(cli.FormatMonth(d.Year, d.Month)),
		components.MoneyMetric("Cash spent", d.CashSpent, cur, components.ToneExpense),
		components.MoneyMetric("Card spent", d.CardSpent, cur, components.ToneExpense),
		components.MoneyMetric("Balance", d.Balance, cur, components.ToneBalance).
			WithDelta(cli.FormatMoney(d.AfterBalance, cur) + " after debit"),
		components.MoneyMetric("Next withdrawal", d.NextWithdrawal, cur, components.ToneWithdrawal),
	}
	if a.isCompactLayout() {
		b.WriteString(components.MetricCardRow(cards[:3], cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(cards[3:], cw))
	} else {
		b.WriteString(components.MetricCardRow(cards, cw))
	}
	b.WriteString("\n")

	// Row 2: card usage + motivation
	halves := components.LayoutRow(cw, 2)
	usage := components.ContentCard("Card usage this month", a.renderUsage(components.CardInnerWidth(halves[0])), halves[0])

	m := d.Motivation
	msgStyle := lipgloss.NewStyle().Foreground(components.ColorForLevel(m.Level)).Bold(true)
	motivation := components.ContentCard("Pace", msgStyle.Render(m.Message), halves[1])

	if a.isCompactLayout() {
		usage = components.ContentCard("Card usage this month", a.renderUsage(components.CardInnerWidth(cw)), cw)
		motivation = components.ContentCard("Pace", msgStyle.Render(m.Message), cw)
		b.WriteString(usage + "\n" + motivation)
	} else {
		b.WriteString(components.CardRow([]string{usage, motivation}))
	}
	b.WriteString("\n")

	// Row 3: upcoming withdrawals
	b.WriteString(components.TotalCard(
		fmt.Sprintf("Upcoming withdrawals (%d months)", len(d.Schedule)),
		cli.FormatMoney(pipeline.SumWithdrawals(d.Schedule), cur),
		a.renderSchedule(d.Schedule, components.CardInnerWidth(cw), t.Blue),
		cw,
	))

	return b.String()
}

func (a App) renderUsage(w int) string {
	t := theme.Active
	usage := a.dash.Usage
	if len(usage) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No card spending yet")
	}

	cur := a.cfg.General.Currency
	nameW := 0
	var peak int64
	for _, u := range usage {
		nameW = max(nameW, lipgloss.Width(u.CardName))
		peak = max(peak, u.Amount)
	}
	nameW = min(nameW, 14)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	barMax := max(w-nameW-22, 4)
	var lines []string
	for _, u := range usage {
		barW := int(float64(barMax) * float64(u.Amount) / float64(max(peak, 1)))
		if u.Amount > 0 {
			barW = max(barW, 1)
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(u.Color)).Render(strings.Repeat("█", barW))
		lines = append(lines, fmt.Sprintf("%s %s%s %s %s",
			labelStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(u.CardName, nameW))),
			bar,
			strings.Repeat(" ", barMax-barW),
			valueStyle.Render(fmt.Sprintf("%10s", cli.FormatMoney(u.Amount, cur))),
			labelStyle.Render(fmt.Sprintf("%5.1f%%", u.SharePercent)),
		))
	}
	return strings.Join(lines, "\n")
}

func (a App) renderSchedule(schedule []model.MonthlyWithdrawal, w int, color lipgloss.Color) string {
	t := theme.Active
	cur := a.cfg.General.Currency

	values := make([]float64, len(schedule))
	labels := make([]string, len(schedule))
	for i, m := range schedule {
		values[i] = float64(m.Total)
		labels[i] = m.Label()
	}

	var b strings.Builder
	chartW := w
	if !a.isCompactLayout() {
		chartW = w / 2
	}
	chart := components.BarChart(values, labels, color, chartW, 6)

	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	bold := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var detail strings.Builder
	for _, m := range schedule {
		fmt.Fprintf(&detail, "%s  %s\n", bold.Render(m.Label()), bold.Render(cli.FormatMoney(m.Total, cur)))
		if len(m.Details) == 0 {
			detail.WriteString(dim.Render("  nothing due") + "\n")
		}
		for _, d := range m.Details {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(d.CardColor)).Render("●")
			fmt.Fprintf(&detail, "  %s %s %s %s\n", swatch,
				muted.Render(fmt.Sprintf("%-12s", truncStr(d.CardName, 12))),
				dim.Render(d.Date.String()),
				cli.FormatMoney(d.Amount, cur))
		}
	}

	if a.isCompactLayout() {
		b.WriteString(chart)
		b.WriteString("\n\n")
		b.WriteString(strings.TrimRight(detail.String(), "\n"))
		return b.String()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(chartW).Render(chart),
		"  ",
		strings.TrimRight(detail.String(), "\n"))
}
