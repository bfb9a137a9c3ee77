// Package components holds the cards, bars and chrome the savings TUI is
// assembled from. Every widget reads its colors from theme.Active.
package components

import (
	"strings"

	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	cardBorder  = 2 // left + right border
	cardPadding = 2 // one column each side
	minCardText = 10
)

// Tone colors a metric value by what the money means.
type Tone int

const (
	ToneNeutral    Tone = iota
	ToneIncome          // money coming in
	ToneExpense         // money already spent
	ToneWithdrawal      // card debits still to come
	ToneBalance         // green when non-negative, red below zero
)

// Metric is one figure shown in a MetricCardRow.
type Metric struct {
	Label string
	Value string
	Delta string
	Tone  Tone

	negative bool
}

// MoneyMetric formats amount in currency and keeps its sign for ToneBalance.
func MoneyMetric(label string, amount int64, currency string, tone Tone) Metric {
	return Metric{
		Label:    label,
		Value:    cli.FormatMoney(amount, currency),
		Tone:     tone,
		negative: amount < 0,
	}
}

// WithDelta returns m with a secondary line under the value.
func (m Metric) WithDelta(delta string) Metric {
	m.Delta = delta
	return m
}

func (m Metric) valueColor() lipgloss.Color {
	t := theme.Active
	switch m.Tone {
	case ToneIncome:
		return t.Green
	case ToneExpense:
		return t.Red
	case ToneWithdrawal:
		return t.Orange
	case ToneBalance:
		if m.negative {
			return t.Red
		}
		return t.Green
	default:
		return t.TextPrimary
	}
}

// LayoutRow splits totalWidth into n widths that sum to exactly totalWidth.
// The leading widths take the remainder.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base, rem := totalWidth/n, totalWidth%n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < rem {
			widths[i]++
		}
	}
	return widths
}

func cardStyle(outerWidth int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(max(outerWidth-cardBorder, minCardText)).
		Padding(0, 1)
}

// MetricCard renders one figure: a muted label, the toned value and an
// optional delta line. A delta starting with "-" is shown in red.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	content := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label) + "\n" +
		lipgloss.NewStyle().Foreground(m.valueColor()).Bold(true).Render(m.Value)
	if m.Delta != "" {
		deltaColor := t.TextDim
		if strings.HasPrefix(m.Delta, "-") {
			deltaColor = t.Red
		}
		content += "\n" + lipgloss.NewStyle().Foreground(deltaColor).Render(m.Delta)
	}
	return cardStyle(outerWidth).Render(content)
}

// MetricCardRow renders metrics side by side across exactly totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, len(metrics))
	for i, m := range metrics {
		rendered[i] = MetricCard(m, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders body in a bordered card under an optional title.
func ContentCard(title, body string, outerWidth int) string {
	return TotalCard(title, "", body, outerWidth)
}

// TotalCard is a ContentCard whose title line carries a right-aligned total,
// as used for withdrawal schedules and day summaries.
func TotalCard(title, total, body string, outerWidth int) string {
	t := theme.Active

	head := ""
	if title != "" {
		head = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title)
	}
	if total != "" {
		amount := lipgloss.NewStyle().Foreground(t.Orange).Bold(true).Render(total)
		gap := CardInnerWidth(outerWidth) - lipgloss.Width(head) - lipgloss.Width(amount)
		head += strings.Repeat(" ", max(gap, 1)) + amount
	}
	if head != "" {
		body = head + "\n" + body
	}
	return cardStyle(outerWidth).Render(body)
}

// CardRow joins rendered cards horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the text width inside a card of outerWidth.
func CardInnerWidth(outerWidth int) int {
	return max(outerWidth-cardBorder-cardPadding, minCardText)
}
