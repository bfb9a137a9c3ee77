// Package store persists the budget state as five JSON blobs keyed by name.
package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yutoain/savings-app/internal/log"
)

// Keys under which the state is persisted.
const (
	KeyCards    = "cards"
	KeyExpenses = "expenses"
	KeyIncomes  = "incomes"
	KeyGoal     = "goal"
	KeySettings = "settings"
)

// Keys lists every persisted key in a stable order.
var Keys = []string{KeyCards, KeyExpenses, KeyIncomes, KeyGoal, KeySettings}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend is a key/value store of JSON documents.
type Backend interface {
	// Get returns the raw JSON stored under key. ok is false when the key
	// has never been written.
	Get(key string) (value []byte, ok bool, err error)
	// SetMany replaces the given keys at once.
	SetMany(values map[string][]byte) error
	// LastSaved reports when any key was last written. ok is false for a
	// store that has never been written.
	LastSaved() (at time.Time, ok bool, err error)
	Close() error
}

// Open opens the named backend at path. An empty name selects the JSON file.
func Open(name, path string, logger *log.Logger) (Backend, error) {
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent(log.ComponentStorage)

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendJSON:
		f, err := OpenFile(path, logger)
		if err != nil {
			return nil, err
		}
		return f, nil
	case BackendSQLite:
		db, err := OpenSQLite(path, logger)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("%w %q: must be one of [%s %s]", ErrUnknownBackend, name, BackendJSON, BackendSQLite)
	}
}

// DefaultFileName returns the data file name used for a backend.
func DefaultFileName(name string) string {
	if strings.EqualFold(strings.TrimSpace(name), BackendSQLite) {
		return "savings.db"
	}
	return "savings.json"
}
