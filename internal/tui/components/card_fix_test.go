package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", got, tallLines)
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7} {
		widths := LayoutRow(101, n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != 101 {
			t.Errorf("LayoutRow(101, %d) sums to %d", n, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Income", Value: "¥250,000"},
		{Label: "Cash", Value: "¥12,000", Delta: "this month"},
		{Label: "Cards", Value: "¥48,000"},
	}, 90)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
}

func TestMoneyMetricTones(t *testing.T) {
	th := theme.Active
	tests := []struct {
		name   string
		amount int64
		tone   Tone
		want   lipgloss.Color
	}{
		{"income", 5000, ToneIncome, th.Green},
		{"expense", 5000, ToneExpense, th.Red},
		{"withdrawal", 5000, ToneWithdrawal, th.Orange},
		{"positive balance", 0, ToneBalance, th.Green},
		{"negative balance", -1, ToneBalance, th.Red},
		{"neutral", -1, ToneNeutral, th.TextPrimary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MoneyMetric("x", tt.amount, "¥", tt.tone)
			if got := m.valueColor(); got != tt.want {
				t.Errorf("valueColor = %s, want %s", got, tt.want)
			}
		})
	}
	if m := MoneyMetric("Balance", -1200, "¥", ToneBalance); stripANSI(m.Value) != "-¥1,200" {
		t.Errorf("Value = %q, want -¥1,200", m.Value)
	}
}

func TestTotalCardAlignsTotal(t *testing.T) {
	card := TotalCard("Upcoming withdrawals", "¥48,000", "body", 50)
	lines := strings.Split(card, "\n")
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 50 {
			t.Errorf("line %d width = %d, want 50", i, w)
		}
	}
	head := strings.TrimRight(stripANSI(lines[1]), " │")
	if !strings.HasPrefix(strings.TrimLeft(head, "│ "), "Upcoming withdrawals") || !strings.HasSuffix(head, "¥48,000") {
		t.Errorf("title line = %q", head)
	}
	if ContentCard("T", "b", 30) != TotalCard("T", "", "b", 30) {
		t.Error("ContentCard should equal a TotalCard without total")
	}
}

func TestTabBarAndKeys(t *testing.T) {
	bar := stripANSI(RenderTabBar(0, 80))
	for _, want := range []string{"Dashboard", "[C]alendar", "[G]oal", "Cards[w]", "[R]ecent"} {
		if !strings.Contains(bar, want) {
			t.Errorf("tab bar missing %q: %q", want, bar)
		}
	}
	if w := lipgloss.Width(bar); w != 80 {
		t.Errorf("tab bar width = %d, want 80", w)
	}
	if TabIdxByKey('w') != 3 {
		t.Errorf("TabIdxByKey('w') = %d, want 3", TabIdxByKey('w'))
	}
	if TabIdxByKey('z') != -1 {
		t.Error("unknown key should return -1")
	}
}

func TestStatusBarWidth(t *testing.T) {
	bar := RenderStatusBar(80, "", false, "/home/user/.local/share/savings/savings.json")
	if w := lipgloss.Width(bar); w != 80 {
		t.Errorf("status bar width = %d, want 80", w)
	}
	if !strings.Contains(stripANSI(bar), theme.Active.Name) {
		t.Error("status bar should show the theme name")
	}
}

func TestGoalBarClamps(t *testing.T) {
	if got := stripANSI(GoalBar("", 150, 0, 10)); !strings.HasSuffix(got, "100%") {
		t.Errorf("GoalBar(150) = %q, want 100%% suffix", got)
	}
	if got := stripANSI(GoalBar("Goal", -5, 6, 10)); !strings.HasSuffix(got, "  0%") {
		t.Errorf("GoalBar(-5) = %q, want 0%% suffix", got)
	}
}

func TestColorForLevel(t *testing.T) {
	theme.SetActive("flexoki-dark")
	if ColorForLevel(model.MotivationDanger) != theme.Active.Red {
		t.Error("danger should be red")
	}
	if ColorForLevel(model.MotivationSuccess) != theme.Active.Green {
		t.Error("success should be green")
	}
}

func TestBarChartLabels(t *testing.T) {
	out := stripANSI(BarChart([]float64{30000, 12000, 0}, []string{"2024-04", "2024-05", "2024-06"}, theme.Active.Blue, 60, 5))
	for _, lbl := range []string{"2024-04", "2024-05", "2024-06", "30k"} {
		if !strings.Contains(out, lbl) {
			t.Errorf("chart missing %q:\n%s", lbl, out)
		}
	}
	if BarChart(nil, nil, theme.Active.Blue, 60, 5) != "" {
		t.Error("empty chart should render nothing")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
