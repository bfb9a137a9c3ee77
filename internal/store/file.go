package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/yutoain/savings-app/internal/log"
)

// File is a Backend holding every key in one JSON object on disk. Each write
// rewrites the whole file through a temp file and rename.
type File struct {
	mu     sync.RWMutex
	path   string
	values map[string]json.RawMessage
	logger *log.Logger
}

// OpenFile opens or creates the JSON data file at path.
func OpenFile(path string, logger *log.Logger) (*File, error) {
	if logger == nil {
		logger = log.Discard()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	f := &File{
		path:   path,
		values: make(map[string]json.RawMessage),
		logger: logger,
	}
	if err := f.load(); err != nil {
		return nil, err
	}
	logger.Debug("opened data file", log.FieldPath, path, log.FieldCount, len(f.values))
	return f, nil
}

func (f *File) load() error {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading data file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &f.values); err != nil {
		return fmt.Errorf("parsing data file %s: %w", f.path, err)
	}
	return nil
}

// Path returns the data file location.
func (f *File) Path() string {
	return f.path
}

// Get implements Backend.
func (f *File) Get(key string) ([]byte, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	v, ok := f.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// SetMany implements Backend.
func (f *File) SetMany(values map[string][]byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev := make(map[string]json.RawMessage, len(values))
	for k, v := range values {
		if !json.Valid(v) {
			return fmt.Errorf("value for %q is not valid JSON", k)
		}
		if old, ok := f.values[k]; ok {
			prev[k] = old
		}
		f.values[k] = append(json.RawMessage(nil), v...)
	}

	if err := f.persistLocked(); err != nil {
		for k := range values {
			if old, ok := prev[k]; ok {
				f.values[k] = old
			} else {
				delete(f.values, k)
			}
		}
		return err
	}
	f.logger.Debug("wrote data file", log.FieldPath, f.path, log.FieldKey, sortedKeys(values))
	return nil
}

func (f *File) persistLocked() error {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling data: %w", err)
	}
	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing temp data file: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		return fmt.Errorf("replacing data file: %w", err)
	}
	return nil
}

// LastSaved implements Backend using the data file's modification time.
func (f *File) LastSaved() (time.Time, bool, error) {
	info, err := os.Stat(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("stat data file: %w", err)
	}
	return info.ModTime(), true, nil
}

// Close implements Backend. The file holds no open handles.
func (f *File) Close() error {
	return nil
}

func sortedKeys(values map[string][]byte) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
