// Package tui provides the interactive Bubble Tea dashboard for savings.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/yutoain/savings-app/internal/config"
	"github.com/yutoain/savings-app/internal/ledger"
	"github.com/yutoain/savings-app/internal/log"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/pipeline"
	"github.com/yutoain/savings-app/internal/tui/components"
	"github.com/yutoain/savings-app/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tab indexes, in the order of components.Tabs.
const (
	tabDashboard = iota
	tabCalendar
	tabGoal
	tabCards
	tabRecent
)

// Options configures NewApp.
type Options struct {
	Config   config.Config
	DataPath string // shown in the status bar
	Logger   *log.Logger
	FirstRun bool // open the setup wizard before the dashboard
}

// App is the root Bubble Tea model.
type App struct {
	ledger   *ledger.Ledger
	cfg      config.Config
	dataPath string
	logger   *log.Logger

	// Pre-computed from the ledger on every change
	doc      model.Document
	dash     model.DashboardStats
	forecast model.GoalForecast
	hasGoal  bool
	recent   []model.Transaction
	cal      model.CalendarMonth
	day      model.DaySummary

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Calendar selection
	calYear  int
	calMonth time.Month
	calDay   int

	cardCursor   int
	recentCursor int

	// Entry forms (huh)
	form     *huh.Form
	formKind formKind
	forms    *formValues

	notice    string
	noticeErr bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new TUI app model over l.
func NewApp(l *ledger.Ledger, opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	today := l.Today()
	a := App{
		ledger:   l,
		cfg:      opts.Config,
		dataPath: opts.DataPath,
		logger:   logger.WithComponent(log.ComponentTUI),
		calYear:  today.Year(),
		calMonth: today.Month(),
		calDay:   today.Day(),
		forms:    &formValues{},
	}
	theme.Apply(a.cfg.Appearance.Theme, l.Settings().Theme)
	if opts.FirstRun {
		a.form = NewSetupForm(a.cfg, &a.forms.SetupValues)
		a.formKind = formSetup
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

// recompute refreshes every derived view from the ledger.
func (a *App) recompute() {
	now := a.ledger.Now()
	today := a.ledger.Today()

	a.doc = a.ledger.Document()
	a.dash = pipeline.Dashboard(a.doc, now, pipeline.DashboardOptions{
		ScheduleMonths: a.cfg.General.ProjectionMonths,
	})
	a.forecast, a.hasGoal = pipeline.GoalForecast(a.doc, now, a.cfg.Forecast.AssumedMonthlySavings)
	a.recent = pipeline.Recent(a.doc, a.cfg.General.RecentLimit)

	if last := model.DaysIn(a.calYear, a.calMonth); a.calDay > last {
		a.calDay = last
	}
	a.cal = pipeline.CalendarMonth(a.doc, a.calYear, a.calMonth, today)
	a.day = pipeline.Day(a.doc, model.NewDate(a.calYear, a.calMonth, a.calDay))

	a.cardCursor = clamp(a.cardCursor, 0, len(a.doc.Cards)-1)
	a.recentCursor = clamp(a.recentCursor, 0, len(a.recent)-1)
}

func (a *App) setNotice(msg string, err error) {
	if err != nil {
		a.notice = err.Error()
		a.noticeErr = true
		a.logger.Warn("tui action failed", log.FieldError, err)
		return
	}
	a.notice = msg
	a.noticeErr = false
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Open forms intercept all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		a.notice = ""
		return a.updateKey(key)
	}

	// Forward unhandled messages to the open form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return a, tea.Quit
	case "a":
		return a.openForm(formExpense, newExpenseForm(a.forms, a.doc.Cards, a.selectedOrToday()))
	case "i":
		return a.openForm(formIncome, newIncomeForm(a.forms, a.selectedOrToday()))
	case "t":
		mode, err := a.ledger.ToggleTheme()
		if err == nil {
			// An explicit toggle overrides the configured theme for this session.
			theme.Apply("", mode)
		}
		a.setNotice("Theme: "+mode, err)
		return a, nil
	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	}

	switch a.activeTab {
	case tabCalendar:
		if a.updateCalendarKey(key) {
			a.recompute()
			return a, nil
		}
	case tabGoal:
		switch key {
		case "e", "enter":
			var existing *model.Goal
			if a.hasGoal {
				g := a.forecast.Goal
				existing = &g
			}
			return a.openForm(formGoal, newGoalForm(a.forms, existing, a.ledger.Today()))
		case "X":
			if a.hasGoal {
				err := a.ledger.ClearGoal()
				a.setNotice("Goal cleared", err)
				a.recompute()
			}
			return a, nil
		}
	case tabCards:
		switch key {
		case "j", "down":
			a.cardCursor = clamp(a.cardCursor+1, 0, len(a.doc.Cards)-1)
			return a, nil
		case "k", "up":
			a.cardCursor = clamp(a.cardCursor-1, 0, len(a.doc.Cards)-1)
			return a, nil
		case "n":
			return a.openForm(formCard, newCardForm(a.forms, nil))
		case "e", "enter":
			if c, ok := a.selectedCard(); ok {
				return a.openForm(formEditCard, newCardForm(a.forms, &c))
			}
			return a, nil
		case "x":
			if c, ok := a.selectedCard(); ok {
				return a.openForm(formDelete, newDeleteForm(a.forms, "card", c.ID, c.Name))
			}
			return a, nil
		}
	case tabRecent:
		switch key {
		case "j", "down":
			a.recentCursor = clamp(a.recentCursor+1, 0, len(a.recent)-1)
			return a, nil
		case "k", "up":
			a.recentCursor = clamp(a.recentCursor-1, 0, len(a.recent)-1)
			return a, nil
		case "x":
			if a.recentCursor < len(a.recent) {
				tx := a.recent[a.recentCursor]
				label := fmt.Sprintf("%s %s of %s", tx.Kind, tx.Label, tx.Date)
				return a.openForm(formDelete, newDeleteForm(a.forms, string(tx.Kind), tx.ID, label))
			}
			return a, nil
		}
	}

	// Tab navigation
	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}
	switch key {
	case "left", "h":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "l":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	}
	return a, nil
}

// updateCalendarKey moves the day selection. It reports whether key was
// consumed.
func (a *App) updateCalendarKey(key string) bool {
	sel := model.NewDate(a.calYear, a.calMonth, a.calDay)
	switch key {
	case "left", "h":
		sel = model.DateOf(sel.AddDate(0, 0, -1))
	case "right", "l":
		sel = model.DateOf(sel.AddDate(0, 0, 1))
	case "up", "k":
		sel = model.DateOf(sel.AddDate(0, 0, -7))
	case "down", "j":
		sel = model.DateOf(sel.AddDate(0, 0, 7))
	case "[":
		sel = shiftMonth(a.calYear, a.calMonth, a.calDay, -1)
	case "]":
		sel = shiftMonth(a.calYear, a.calMonth, a.calDay, 1)
	case ".":
		sel = a.ledger.Today()
	default:
		return false
	}
	a.calYear, a.calMonth, a.calDay = sel.Year(), sel.Month(), sel.Day()
	return true
}

// shiftMonth moves by delta months keeping the day, clamped to the new
// month's length.
func shiftMonth(y int, m time.Month, day, delta int) model.Date {
	first := model.NewDate(y, m+time.Month(delta), 1)
	return model.NewDate(first.Year(), first.Month(), min(day, model.DaysIn(first.Year(), first.Month())))
}

func (a App) selectedOrToday() model.Date {
	if a.activeTab == tabCalendar {
		return model.NewDate(a.calYear, a.calMonth, a.calDay)
	}
	return a.ledger.Today()
}

func (a App) selectedCard() (model.Card, bool) {
	if a.cardCursor < 0 || a.cardCursor >= len(a.doc.Cards) {
		return model.Card{}, false
	}
	return a.doc.Cards[a.cardCursor], true
}

func (a App) openForm(kind formKind, f *huh.Form) (tea.Model, tea.Cmd) {
	a.form = f.WithWidth(a.formWidth())
	a.formKind = kind
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		a.closeForm()
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		kind := a.formKind
		a.closeForm()
		if kind == formSetup {
			a.setNotice("Configuration saved", a.saveSetupConfig())
		} else {
			notice, err := submitForm(a.ledger, kind, a.forms)
			a.setNotice(notice, err)
		}
		a.recompute()
		return a, nil
	case huh.StateAborted:
		a.closeForm()
		return a, nil
	}
	return a, cmd
}

func (a *App) closeForm() {
	a.form = nil
	a.formKind = formNone
}

func (a App) formWidth() int {
	return clamp(a.width-8, 40, 72)
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  savings needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm() string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2).
		Render(a.form.View())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"d c g w r", "Jump to tab"},
			{"← → / tab", "Previous / Next tab"},
			{"j k", "Move in lists"},
		}},
		{"Calendar", []struct{ key, desc string }{
			{"← → ↑ ↓", "Move by day / week"},
			{"[ ]", "Previous / Next month"},
			{".", "Jump to today"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"a", "Add expense"},
			{"i", "Add income"},
			{"n", "New card (Cards)"},
			{"e", "Edit card or goal"},
			{"x", "Delete selected"},
			{"X", "Clear goal (Goal)"},
			{"t", "Toggle light/dark"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.notice, a.noticeErr, a.dataPath)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabCalendar:
		content = a.renderCalendarTab(cw)
	case tabGoal:
		content = a.renderGoalTab(cw)
	case tabCards:
		content = a.renderCardsTab(cw)
	case tabRecent:
		content = a.renderRecentTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Mouse Support ──────────────────────────────────────────────

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return a.updateKey("k")
	case tea.MouseButtonWheelDown:
		return a.updateKey("j")
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the widths RenderTabBar produces.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-column separator
	}
	return -1
}

// ─── Helpers ────────────────────────────────────────────────────

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
