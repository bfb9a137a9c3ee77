package ledger

import (
	"github.com/yutoain/savings-app/internal/log"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/store"
)

// SetGoal replaces the savings goal.
func (l *Ledger) SetGoal(g model.Goal) error {
	if err := g.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.persist(map[string]any{store.KeyGoal: g}); err != nil {
		return err
	}
	l.goal = &g
	l.logger.Debug("set goal", log.FieldOperation, log.OpUpdate, log.FieldAmount, g.Amount)
	return nil
}

// ClearGoal removes the savings goal.
func (l *Ledger) ClearGoal() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.persist(map[string]any{store.KeyGoal: nil}); err != nil {
		return err
	}
	l.goal = nil
	l.logger.Debug("cleared goal", log.FieldOperation, log.OpDelete)
	return nil
}

// ToggleTheme switches between the light and dark themes and returns the
// new value.
func (l *Ledger) ToggleTheme() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.settings
	if s.Theme == model.ThemeDark {
		s.Theme = model.ThemeLight
	} else {
		s.Theme = model.ThemeDark
	}
	if err := l.saveSettingsLocked(s); err != nil {
		return "", err
	}
	return s.Theme, nil
}

// SetTheme stores an explicit theme.
func (l *Ledger) SetTheme(theme string) error {
	if err := model.ValidateTheme(theme); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.settings
	s.Theme = theme
	return l.saveSettingsLocked(s)
}

// SetNotificationTime stores the reminder time. Nothing is scheduled.
func (l *Ledger) SetNotificationTime(hhmm string) error {
	if err := model.ValidateNotificationTime(hhmm); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.settings
	s.NotificationTime = hhmm
	return l.saveSettingsLocked(s)
}

func (l *Ledger) saveSettingsLocked(s model.Settings) error {
	if err := l.persist(map[string]any{store.KeySettings: s}); err != nil {
		return err
	}
	l.settings = s
	l.logger.Debug("saved settings", log.FieldOperation, log.OpUpdate, "theme", s.Theme)
	return nil
}
