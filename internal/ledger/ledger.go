// Package ledger holds the budget state in memory and persists every change
// to a store.Backend, one key per collection.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yutoain/savings-app/internal/log"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/store"
)

var (
	// ErrNotFound is returned when an id matches no record.
	ErrNotFound = errors.New("not found")
	// ErrCardNotFound is returned when an expense names an unknown card.
	ErrCardNotFound = errors.New("card not found")
)

// ID prefixes per entity.
const (
	prefixCard    = "card"
	prefixExpense = "expense"
	prefixIncome  = "income"
)

// Options configures a Ledger. Zero values select defaults.
type Options struct {
	Logger *log.Logger
	Now    func() time.Time
	NewID  func(prefix string) string
}

// Ledger is the single source of truth for cards, transactions, the goal and
// settings. It is safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	backend store.Backend
	logger  *log.Logger
	now     func() time.Time
	newID   func(prefix string) string

	cards    []model.Card
	expenses []model.Expense
	incomes  []model.Income
	goal     *model.Goal
	settings model.Settings
}

// Open loads the state from backend. Keys that were never written load as
// empty collections, no goal and default settings.
func Open(backend store.Backend, opts Options) (*Ledger, error) {
	l := &Ledger{
		backend: backend,
		logger:  opts.Logger,
		now:     opts.Now,
		newID:   opts.NewID,
	}
	if l.logger == nil {
		l.logger = log.Discard()
	}
	l.logger = l.logger.WithComponent(log.ComponentLedger)
	if l.now == nil {
		l.now = time.Now
	}
	if l.newID == nil {
		l.newID = newID
	}

	if err := l.load(); err != nil {
		return nil, err
	}
	l.logger.Debug("loaded ledger",
		"cards", len(l.cards), "expenses", len(l.expenses), "incomes", len(l.incomes))
	return l, nil
}

func (l *Ledger) load() error {
	if err := l.loadKey(store.KeyCards, &l.cards); err != nil {
		return err
	}
	if err := l.loadKey(store.KeyExpenses, &l.expenses); err != nil {
		return err
	}
	if err := l.loadKey(store.KeyIncomes, &l.incomes); err != nil {
		return err
	}
	if err := l.loadKey(store.KeyGoal, &l.goal); err != nil {
		return err
	}

	var settings *model.Settings
	if err := l.loadKey(store.KeySettings, &settings); err != nil {
		return err
	}
	l.settings = normalizeSettings(settings)

	if l.cards == nil {
		l.cards = []model.Card{}
	}
	if l.expenses == nil {
		l.expenses = []model.Expense{}
	}
	if l.incomes == nil {
		l.incomes = []model.Income{}
	}
	return nil
}

func (l *Ledger) loadKey(key string, dst any) error {
	data, ok, err := l.backend.Get(key)
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

// persist writes the given keys from values in one backend call.
func (l *Ledger) persist(values map[string]any) error {
	encoded := make(map[string][]byte, len(values))
	for k, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", k, err)
		}
		encoded[k] = data
	}
	if err := l.backend.SetMany(encoded); err != nil {
		return fmt.Errorf("saving: %w", err)
	}
	return nil
}

// LastSaved reports when the backend was last written.
func (l *Ledger) LastSaved() (time.Time, bool, error) {
	return l.backend.LastSaved()
}

// Close closes the underlying backend.
func (l *Ledger) Close() error {
	return l.backend.Close()
}

// Today returns the current calendar date.
func (l *Ledger) Today() model.Date {
	return model.DateOf(l.now())
}

// Now returns the ledger clock's current time.
func (l *Ledger) Now() time.Time {
	return l.now()
}

// Cards returns the registered cards in registration order.
func (l *Ledger) Cards() []model.Card {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.cards)
}

// Card returns the card with the given id.
func (l *Ledger) Card(id string) (model.Card, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i := l.cardIndex(id)
	if i < 0 {
		return model.Card{}, fmt.Errorf("card %s: %w", id, ErrNotFound)
	}
	return l.cards[i], nil
}

// Expenses returns every expense in insertion order.
func (l *Ledger) Expenses() []model.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneExpenses(l.expenses)
}

// Incomes returns every income in insertion order.
func (l *Ledger) Incomes() []model.Income {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.incomes)
}

// Goal returns the savings goal, if one is set.
func (l *Ledger) Goal() (model.Goal, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.goal == nil {
		return model.Goal{}, false
	}
	return *l.goal, true
}

// Settings returns the user settings.
func (l *Ledger) Settings() model.Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.settings
}

// Document returns a copy of the whole state for reporting.
func (l *Ledger) Document() model.Document {
	l.mu.RLock()
	defer l.mu.RUnlock()
	doc := model.Document{
		Cards:    slices.Clone(l.cards),
		Expenses: cloneExpenses(l.expenses),
		Incomes:  slices.Clone(l.incomes),
		Settings: l.settings,
	}
	if l.goal != nil {
		g := *l.goal
		doc.Goal = &g
	}
	return doc
}

func (l *Ledger) cardIndex(id string) int {
	for i, c := range l.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func cloneExpenses(in []model.Expense) []model.Expense {
	out := make([]model.Expense, len(in))
	for i, e := range in {
		if e.WithdrawalDate != nil {
			w := *e.WithdrawalDate
			e.WithdrawalDate = &w
		}
		out[i] = e
	}
	return out
}

func normalizeSettings(s *model.Settings) model.Settings {
	out := model.DefaultSettings()
	if s == nil {
		return out
	}
	if s.Theme != "" {
		out.Theme = s.Theme
	}
	if s.NotificationTime != "" {
		out.NotificationTime = s.NotificationTime
	}
	return out
}

func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
