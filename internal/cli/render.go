package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yutoain/savings-app/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	// IncomeStyle colors money coming in.
	IncomeStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	// ExpenseStyle colors money going out.
	ExpenseStyle = lipgloss.NewStyle().Foreground(ColorRed)
	// WithdrawalStyle colors scheduled card debits.
	WithdrawalStyle = lipgloss.NewStyle().Foreground(ColorOrange)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// SeparatorRow splits a table into sections.
var SeparatorRow = []string{"---"}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. Cells may
// carry ANSI styling; widths are measured by display width.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(" " + padRight(h, widths[i]) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == SeparatorRow[0] {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align amount columns (all except first)
			var padded string
			if i == 0 {
				padded = " " + padRight(cell, widths[i]) + " "
			} else {
				padded = " " + padLeft(cell, widths[i]) + " "
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")
	return b.String()
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

// RenderProgressBar renders a text progress bar for a 0-100 percentage.
func RenderProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	pct := min(max(percent, 0), 100) / 100
	filled := int(pct * float64(width))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	style := IncomeStyle
	if percent < 100 {
		style = lipgloss.NewStyle().Foreground(ColorAccent)
	}
	return fmt.Sprintf("[%s] %5.1f%%", style.Render(bar), percent)
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		idx = min(max(idx, 0), len(blocks)-1)
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// RenderHorizontalBar renders one colored bar chart entry.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int, color string) string {
	if maxValue <= 0 {
		return "  " + label
	}
	barLen := int(value / maxValue * float64(maxWidth))
	barLen = min(max(barLen, 0), maxWidth)
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", barLen))
	return "  " + padRight(label, 14) + " " + bar
}

// RenderUsage renders per-card spending as colored bars with amounts.
func RenderUsage(usage []model.CardUsage, currency string, width int) string {
	if len(usage) == 0 {
		return mutedStyle.Render("  No card spending this month") + "\n"
	}
	var peak int64
	for _, u := range usage {
		peak = max(peak, u.Amount)
	}

	var b strings.Builder
	for _, u := range usage {
		b.WriteString(RenderHorizontalBar(u.CardName, float64(u.Amount), float64(peak), width, u.Color))
		fmt.Fprintf(&b, " %s %s\n", FormatMoney(u.Amount, currency), mutedStyle.Render(FormatPercent(u.SharePercent/100)))
	}
	return b.String()
}

// RenderMotivation renders the dashboard hint in its level color.
func RenderMotivation(m model.Motivation) string {
	color := ColorGreen
	switch m.Level {
	case model.MotivationWarning:
		color = ColorOrange
	case model.MotivationDanger:
		color = ColorRed
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(color).
		PaddingLeft(1).
		Render(m.Message)
}

// RenderCalendar renders a Sunday-first month grid. Days with transactions
// are bold, days with card debits carry a marker and today is highlighted.
func RenderCalendar(cal model.CalendarMonth) string {
	const cellWidth = 5
	var b strings.Builder

	b.WriteString(headerStyle.Render(padRight(FormatMonth(cal.Year, cal.Month), cellWidth*7)))
	b.WriteString("\n")
	for wd := 0; wd < 7; wd++ {
		b.WriteString(mutedStyle.Render(padLeft(FormatDayOfWeek(wd), cellWidth-1) + " "))
	}
	b.WriteString("\n")

	col := 0
	for i := 0; i < cal.Leading; i++ {
		b.WriteString(strings.Repeat(" ", cellWidth))
		col++
	}
	for _, d := range cal.Days {
		mark := " "
		if d.HasWithdrawal {
			mark = WithdrawalStyle.Render("*")
		}
		style := dimStyle
		if d.HasTransaction {
			style = valueStyle.Bold(true)
		}
		if d.IsToday {
			style = style.Reverse(true)
		}
		b.WriteString(" " + style.Render(fmt.Sprintf("%3d", d.Date.Day())) + mark)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// ColorSwatch renders a colored dot for a #RRGGBB color.
func ColorSwatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}
