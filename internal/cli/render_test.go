package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/yutoain/savings-app/internal/model"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestRenderTableAlignsWideCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Card", "Amount"},
		Rows: [][]string{
			{"Visa", "¥12,000"},
			SeparatorRow,
			{"Total", "¥1,200,000"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	want := lipgloss.Width(lines[0])
	for i, l := range lines {
		if w := lipgloss.Width(l); w != want {
			t.Errorf("line %d width %d, want %d: %q", i, w, want, l)
		}
	}
	if !strings.Contains(lines[3], "    ¥12,000") {
		t.Errorf("amount not right-aligned: %q", lines[3])
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("RenderTable(empty) = %q", got)
	}
}

func TestRenderProgressBarClamps(t *testing.T) {
	full := RenderProgressBar(150, 10)
	if strings.Count(full, "█") != 10 || strings.Contains(full, "░") {
		t.Errorf("over-full bar = %q", full)
	}
	half := RenderProgressBar(50, 10)
	if strings.Count(half, "█") != 5 || strings.Count(half, "░") != 5 {
		t.Errorf("half bar = %q", half)
	}
	if RenderProgressBar(10, 0) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 50, 100}); got != "▁▄█" {
		t.Errorf("RenderSparkline = %q", got)
	}
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("RenderSparkline(nil) = %q", got)
	}
}

func TestRenderUsage(t *testing.T) {
	out := RenderUsage([]model.CardUsage{
		{CardName: "Visa", Color: "#4F46E5", Amount: 3000, SharePercent: 75},
		{CardName: "unknown", Color: model.UnknownCardColor, Amount: 1000, SharePercent: 25},
	}, "¥", 20)
	if !strings.Contains(out, "¥3,000") || !strings.Contains(out, "75.0%") {
		t.Errorf("usage missing amount or share:\n%s", out)
	}
	if strings.Count(out, "█") != 26 {
		t.Errorf("bar cells = %d, want 26:\n%s", strings.Count(out, "█"), out)
	}

	if !strings.Contains(RenderUsage(nil, "¥", 20), "No card spending") {
		t.Error("empty usage message missing")
	}
}

func TestRenderCalendar(t *testing.T) {
	cal := model.CalendarMonth{Year: 2024, Month: time.April, Leading: 1}
	for d := 1; d <= 30; d++ {
		cal.Days = append(cal.Days, model.CalendarDay{
			Date:          model.NewDate(2024, time.April, d),
			HasWithdrawal: d == 10,
		})
	}
	out := RenderCalendar(cal)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// heading, weekday row, five week rows
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "April 2024") {
		t.Errorf("heading = %q", lines[0])
	}
	if !strings.Contains(out, "10*") {
		t.Errorf("withdrawal marker missing:\n%s", out)
	}
	if !strings.HasPrefix(lines[2], "        1") {
		t.Errorf("first week should skip Sunday: %q", lines[2])
	}
}
