package tui

import (
	"fmt"
	"strings"

	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/tui/components"
	"github.com/yutoain/savings-app/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderGoalTab(cw int) string {
	t := theme.Active
	if !a.hasGoal {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted).Render(
			"No savings goal yet.\n\nPress e to set a target amount, your current savings and a deadline.")
		return components.ContentCard("Savings goal", hint, cw)
	}

	f := a.forecast
	cur := a.cfg.General.Currency
	var b strings.Builder

	daysLeft := cli.FormatDays(f.DaysLeft)
	if f.DaysLeft <= 0 {
		daysLeft = "deadline passed"
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		components.MoneyMetric("Target", f.Goal.Amount, cur, components.ToneNeutral).
			WithDelta("by " + f.Goal.Deadline.String()),
		components.MoneyMetric("Saved", f.Goal.CurrentSavings, cur, components.ToneIncome),
		components.MoneyMetric("Still needed", f.Needed, cur, components.ToneExpense),
		{Label: "Time left", Value: daysLeft},
	}, cw))
	b.WriteString("\n")

	inner := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard("Progress", components.GoalBar("", f.Progress, 0, inner-6), cw))
	b.WriteString("\n")

	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)
	row := func(label, v string) string {
		return muted.Render(fmt.Sprintf("%-34s", label)) + value.Render(fmt.Sprintf("%14s", v))
	}

	var fc strings.Builder
	fc.WriteString(row("Current savings", cli.FormatMoney(f.Goal.CurrentSavings, cur)) + "\n")
	fc.WriteString(row(fmt.Sprintf("+ savings pace (%s/month)", cli.FormatMoney(a.cfg.Forecast.AssumedMonthlySavings, cur)),
		cli.FormatMoney(f.ProjectedSavings-f.Goal.CurrentSavings+f.Withdrawals+f.EstimatedSpending, cur)) + "\n")
	fc.WriteString(row(fmt.Sprintf("- card withdrawals (%d months)", f.ProjectionMonths), cli.FormatMoney(f.Withdrawals, cur)) + "\n")
	fc.WriteString(row(fmt.Sprintf("- spending (avg %s/month)", cli.FormatMoney(f.MonthlyAverage, cur)), cli.FormatMoney(f.EstimatedSpending, cur)) + "\n")
	fc.WriteString(row("= projected savings", cli.FormatMoney(f.ProjectedSavings, cur)) + "\n\n")

	verdict := lipgloss.NewStyle().Foreground(t.Green).Bold(true).Render("On track: the goal looks achievable.")
	if !f.Achievable {
		verdict = lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render(
			fmt.Sprintf("Short by %s at the current pace.", cli.FormatMoney(f.Needed-f.ProjectedSavings, cur)))
	}
	fc.WriteString(verdict)

	b.WriteString(components.ContentCard("Forecast", fc.String(), cw))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(" [e] edit goal  [X] clear goal"))
	return b.String()
}
