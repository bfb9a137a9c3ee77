package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// BackendSuite runs the same contract against every backend.
type BackendSuite struct {
	suite.Suite
	name    string
	path    string
	backend Backend
}

func (s *BackendSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), DefaultFileName(s.name))
	b, err := Open(s.name, s.path, nil)
	require.NoError(s.T(), err)
	s.backend = b
}

func (s *BackendSuite) TearDownTest() {
	if s.backend != nil {
		require.NoError(s.T(), s.backend.Close())
	}
}

func (s *BackendSuite) reopen() {
	require.NoError(s.T(), s.backend.Close())
	b, err := Open(s.name, s.path, nil)
	require.NoError(s.T(), err)
	s.backend = b
}

func (s *BackendSuite) TestMissingKey() {
	v, ok, err := s.backend.Get(KeyCards)
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)
	assert.Nil(s.T(), v)
}

func (s *BackendSuite) TestSetGetPersists() {
	require.NoError(s.T(), s.backend.SetMany(map[string][]byte{KeyCards: []byte(`[{"id":"card_1"}]`)}))
	require.NoError(s.T(), s.backend.SetMany(map[string][]byte{KeyGoal: []byte(`null`)}))

	s.reopen()

	v, ok, err := s.backend.Get(KeyCards)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	assert.JSONEq(s.T(), `[{"id":"card_1"}]`, string(v))

	v, ok, err = s.backend.Get(KeyGoal)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	assert.JSONEq(s.T(), `null`, string(v))
}

func (s *BackendSuite) TestOverwrite() {
	require.NoError(s.T(), s.backend.SetMany(map[string][]byte{KeySettings: []byte(`{"theme":"light"}`)}))
	require.NoError(s.T(), s.backend.SetMany(map[string][]byte{KeySettings: []byte(`{"theme":"dark"}`)}))

	v, ok, err := s.backend.Get(KeySettings)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	assert.JSONEq(s.T(), `{"theme":"dark"}`, string(v))
}

func (s *BackendSuite) TestSetMany() {
	require.NoError(s.T(), s.backend.SetMany(map[string][]byte{
		KeyCards:    []byte(`[]`),
		KeyExpenses: []byte(`[{"id":"expense_1","amount":500}]`),
		KeyIncomes:  []byte(`[]`),
	}))
	s.reopen()

	for _, k := range []string{KeyCards, KeyExpenses, KeyIncomes} {
		_, ok, err := s.backend.Get(k)
		require.NoError(s.T(), err)
		assert.True(s.T(), ok, "key %s", k)
	}
	_, ok, err := s.backend.Get(KeyGoal)
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)
}

func (s *BackendSuite) TestLastSaved() {
	_, ok, err := s.backend.LastSaved()
	require.NoError(s.T(), err)
	assert.False(s.T(), ok, "fresh store reports a save time")

	before := time.Now().Add(-2 * time.Second)
	require.NoError(s.T(), s.backend.SetMany(map[string][]byte{KeyCards: []byte(`[]`)}))
	at, ok, err := s.backend.LastSaved()
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	assert.True(s.T(), at.After(before), "LastSaved = %s, want after %s", at, before)
}

func TestFileBackend(t *testing.T) {
	suite.Run(t, &BackendSuite{name: BackendJSON})
}

func TestSQLiteBackend(t *testing.T) {
	suite.Run(t, &BackendSuite{name: BackendSQLite})
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("postgres", filepath.Join(t.TempDir(), "x"), nil)
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("Open(postgres) error = %v, want ErrUnknownBackend", err)
	}
}

func TestFileRejectsInvalidJSON(t *testing.T) {
	f, err := OpenFile(filepath.Join(t.TempDir(), "data.json"), nil)
	require.NoError(t, err)

	require.Error(t, f.SetMany(map[string][]byte{KeyCards: []byte(`{not json`)}))
	_, ok, err := f.Get(KeyCards)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := OpenFile(path, nil)
	assert.Error(t, err)
}

func TestFileEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))

	f, err := OpenFile(path, nil)
	require.NoError(t, err)
	_, ok, err := f.Get(KeyCards)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRunMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")
	require.NoError(t, RunMigrations(path))
	require.NoError(t, RunMigrations(path))
}
