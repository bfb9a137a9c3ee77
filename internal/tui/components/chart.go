package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/yutoain/savings-app/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		idx = min(max(idx, 0), len(blocks)-1)
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders one vertical bar per value with its label underneath.
// It suits short series such as a few months of card debits; values are
// scaled to height rows and partial rows use eighth blocks.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	n := len(values)
	if n == 0 {
		return ""
	}
	if height < 3 || width < n*3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	yLabelW := max(4, len(formatChartLabel(peak))+1)
	colW := (width - yLabelW - 1) / n
	barW := min(max(colW-2, 1), 8)

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := peak * float64(row) / float64(height)
		rowBottom := peak * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = formatChartLabel(peak)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for _, v := range values {
			cell := strings.Repeat(" ", barW)
			switch {
			case v >= rowTop:
				cell = strings.Repeat("█", barW)
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * float64(len(blocks)))
				idx = min(max(idx, 1), len(blocks)) - 1
				cell = strings.Repeat(string(blocks[idx]), barW)
			}
			b.WriteString(space.Render(" "))
			b.WriteString(barStyle.Render(cell))
			b.WriteString(space.Render(strings.Repeat(" ", colW-barW-1)))
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", colW*n)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(space.Render(strings.Repeat(" ", yLabelW+1)))
		for _, lbl := range labels {
			if lipgloss.Width(lbl) > colW-1 {
				lbl = lbl[len(lbl)-min(len(lbl), colW-1):]
			}
			b.WriteString(space.Render(" "))
			b.WriteString(axisStyle.Render(fmt.Sprintf("%-*s", colW-1, lbl)))
		}
	}

	return b.String()
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
