package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yutoain/savings-app/internal/log"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLite is a Backend storing each key as one row of the kv table.
type SQLite struct {
	db     *sql.DB
	path   string
	logger *log.Logger
}

// OpenSQLite opens or creates the database at dbPath and migrates it.
func OpenSQLite(dbPath string, logger *log.Logger) (*SQLite, error) {
	if logger == nil {
		logger = log.Discard()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening data db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging data db: %w", err)
	}

	logger.Debug("opened data db", log.FieldPath, dbPath)
	return &SQLite{db: db, path: dbPath, logger: logger}, nil
}

// Path returns the database location.
func (s *SQLite) Path() string {
	return s.path
}

// Get implements Backend.
func (s *SQLite) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// SetMany implements Backend. All keys are written in one transaction.
func (s *SQLite) SetMany(values map[string][]byte) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	stmt, err := tx.Prepare(`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, k := range sortedKeys(values) {
		if _, err := stmt.Exec(k, string(values[k]), now); err != nil {
			return fmt.Errorf("writing %s: %w", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	s.logger.Debug("wrote data db", log.FieldPath, s.path, log.FieldKey, sortedKeys(values))
	return nil
}

// LastSaved implements Backend using the newest updated_at of the kv table.
func (s *SQLite) LastSaved() (time.Time, bool, error) {
	var raw sql.NullString
	if err := s.db.QueryRow("SELECT MAX(updated_at) FROM kv").Scan(&raw); err != nil {
		return time.Time{}, false, fmt.Errorf("reading updated_at: %w", err)
	}
	if !raw.Valid {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, raw.String)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, true, nil
}

// Close implements Backend.
func (s *SQLite) Close() error {
	return s.db.Close()
}
