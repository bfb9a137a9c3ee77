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

const calCellW = 6

func (a App) renderCalendarTab(cw int) string {
	gridW := 7*calCellW + 4
	if a.isCompactLayout() {
		return components.ContentCard(cli.FormatMonth(a.cal.Year, a.cal.Month), a.renderMonthGrid(), cw) +
			"\n" + components.TotalCard(dayLabel(a.day.Date), a.dayTotal(), a.renderDayDetail(components.CardInnerWidth(cw)), cw)
	}

	left := components.ContentCard(cli.FormatMonth(a.cal.Year, a.cal.Month), a.renderMonthGrid(), gridW)
	rightW := cw - gridW
	right := components.TotalCard(dayLabel(a.day.Date), a.dayTotal(), a.renderDayDetail(components.CardInnerWidth(rightW)), rightW)
	return components.CardRow([]string{left, right})
}

// renderMonthGrid draws the Sunday-first month with markers for days that
// have transactions (•) or card withdrawals (*).
func (a App) renderMonthGrid() string {
	t := theme.Active

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	dayStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	todayStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	selStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true)
	txStyle := lipgloss.NewStyle().Foreground(t.Green)
	wdStyle := lipgloss.NewStyle().Foreground(t.Orange)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for wd := 0; wd < 7; wd++ {
		b.WriteString(headStyle.Render(fmt.Sprintf("%-*s", calCellW, cli.FormatDayOfWeek(wd))))
	}
	b.WriteString("\n")

	col := 0
	for ; col < a.cal.Leading; col++ {
		b.WriteString(strings.Repeat(" ", calCellW))
	}
	for _, d := range a.cal.Days {
		num := fmt.Sprintf("%2d", d.Date.Day())
		switch {
		case d.Date.Day() == a.calDay:
			num = selStyle.Render(num)
		case d.IsToday:
			num = todayStyle.Render(num)
		default:
			num = dayStyle.Render(num)
		}
		marks := " "
		if d.HasTransaction {
			marks = txStyle.Render("•")
		}
		if d.HasWithdrawal {
			marks += wdStyle.Render("*")
		} else {
			marks += " "
		}
		b.WriteString(num + marks + strings.Repeat(" ", calCellW-4))

		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(txStyle.Render("•") + hintStyle.Render(" transaction  ") +
		wdStyle.Render("*") + hintStyle.Render(" withdrawal  [ ] month  . today"))
	return b.String()
}

// dayTotal is the card debit due on the selected day, if any.
func (a App) dayTotal() string {
	if a.day.WithdrawalTotal == 0 {
		return ""
	}
	return cli.FormatMoney(a.day.WithdrawalTotal, a.cfg.General.Currency)
}

func (a App) renderDayDetail(w int) string {
	t := theme.Active
	s := a.day
	cur := a.cfg.General.Currency

	section := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	amountW := 12
	labelW := max(w-amountW-2, 8)

	line := func(label, amount string, style lipgloss.Style) string {
		return muted.Render(fmt.Sprintf("  %-*s", labelW-2, truncStr(label, labelW-2))) +
			style.Render(fmt.Sprintf("%*s", amountW, amount))
	}
	income := lipgloss.NewStyle().Foreground(t.Green)
	expense := lipgloss.NewStyle().Foreground(t.Red)
	withdrawal := lipgloss.NewStyle().Foreground(t.Orange)

	var b strings.Builder
	if !s.HasTransactions && len(s.Withdrawals) == 0 {
		b.WriteString(dim.Render("Nothing recorded on this day"))
		return b.String()
	}

	if len(s.Incomes) > 0 {
		b.WriteString(section.Render("Income") + "\n")
		for _, in := range s.Incomes {
			b.WriteString(line(in.Source, cli.FormatSigned(in.Amount, cur), income) + "\n")
		}
	}
	if len(s.Expenses) > 0 {
		b.WriteString(section.Render("Expenses") + "\n")
		for _, e := range s.Expenses {
			b.WriteString(line(e.Expense.Category+" · "+e.PaymentName, cli.FormatSigned(-e.Expense.Amount, cur), expense) + "\n")
		}
	}
	if s.HasTransactions {
		b.WriteString(line("Net", cli.FormatSigned(s.Net(), cur), lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)) + "\n")
	}

	if len(s.Withdrawals) > 0 {
		b.WriteString("\n" + section.Render("Card withdrawals") + "\n")
		for _, wd := range s.Withdrawals {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(wd.Color)).Render("● ")
			label := fmt.Sprintf("%s (%d)", wd.CardName, len(wd.Expenses))
			b.WriteString(swatch + line(label, cli.FormatMoney(wd.Total, cur), withdrawal) + "\n")
		}
		b.WriteString(line("Total", cli.FormatMoney(s.WithdrawalTotal, cur), withdrawal.Bold(true)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func dayLabel(d model.Date) string {
	return d.Format("Mon Jan 2, 2006")
}
