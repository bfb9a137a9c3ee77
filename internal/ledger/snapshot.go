package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/yutoain/savings-app/internal/log"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/store"
)

// ErrMalformedSnapshot is returned when a backup file cannot be read.
var ErrMalformedSnapshot = errors.New("malformed backup file")

// Snapshot is the export format: the five persisted keys plus a timestamp.
type Snapshot struct {
	Cards      []model.Card    `json:"cards"`
	Expenses   []model.Expense `json:"expenses"`
	Incomes    []model.Income  `json:"incomes"`
	Goal       *model.Goal     `json:"goal"`
	Settings   *model.Settings `json:"settings"`
	ExportDate string          `json:"exportDate,omitempty"`
}

// ExportFileName returns the default backup file name for the given day.
func ExportFileName(now time.Time) string {
	return "savings-app-backup-" + now.Format(model.DateLayout) + ".json"
}

// Export returns the current state as an indented JSON backup.
func (l *Ledger) Export(now time.Time) ([]byte, error) {
	doc := l.Document()
	snap := Snapshot{
		Cards:      doc.Cards,
		Expenses:   doc.Expenses,
		Incomes:    doc.Incomes,
		Goal:       doc.Goal,
		Settings:   &doc.Settings,
		ExportDate: now.UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	l.logger.Debug("exported", log.FieldOperation, log.OpExport,
		"cards", len(snap.Cards), "expenses", len(snap.Expenses), "incomes", len(snap.Incomes))
	return append(data, '\n'), nil
}

// ParseSnapshot decodes a backup. Any decoding failure, or a top-level value
// that is not an object, yields ErrMalformedSnapshot. Missing keys default to
// empty collections, no goal and default settings.
func ParseSnapshot(data []byte) (Snapshot, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return Snapshot{}, fmt.Errorf("%w: backup is null", ErrMalformedSnapshot)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if snap.Cards == nil {
		snap.Cards = []model.Card{}
	}
	if snap.Expenses == nil {
		snap.Expenses = []model.Expense{}
	}
	if snap.Incomes == nil {
		snap.Incomes = []model.Income{}
	}
	s := normalizeSettings(snap.Settings)
	snap.Settings = &s
	return snap, nil
}

// Import replaces the whole state with the snapshot.
func (l *Ledger) Import(snap Snapshot) error {
	settings := normalizeSettings(snap.Settings)
	cards := snap.Cards
	if cards == nil {
		cards = []model.Card{}
	}
	expenses := snap.Expenses
	if expenses == nil {
		expenses = []model.Expense{}
	}
	incomes := snap.Incomes
	if incomes == nil {
		incomes = []model.Income{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.persist(map[string]any{
		store.KeyCards:    cards,
		store.KeyExpenses: expenses,
		store.KeyIncomes:  incomes,
		store.KeyGoal:     snap.Goal,
		store.KeySettings: settings,
	}); err != nil {
		return err
	}
	l.cards = slices.Clone(cards)
	l.expenses = cloneExpenses(expenses)
	l.incomes = slices.Clone(incomes)
	l.goal = nil
	if snap.Goal != nil {
		g := *snap.Goal
		l.goal = &g
	}
	l.settings = settings
	l.logger.Info("imported backup", log.FieldOperation, log.OpImport,
		"cards", len(cards), "expenses", len(expenses), "incomes", len(incomes))
	return nil
}
