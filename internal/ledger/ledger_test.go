package ledger

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/store"
)

var fixedNow = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

type LedgerSuite struct {
	suite.Suite
	path   string
	ledger *Ledger
	seq    int
}

func (s *LedgerSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "savings.json")
	s.seq = 0
	s.ledger = s.open()
}

func (s *LedgerSuite) open() *Ledger {
	b, err := store.OpenFile(s.path, nil)
	require.NoError(s.T(), err)
	l, err := Open(b, Options{
		Now: func() time.Time { return fixedNow },
		NewID: func(prefix string) string {
			s.seq++
			return fmt.Sprintf("%s_%d", prefix, s.seq)
		},
	})
	require.NoError(s.T(), err)
	return l
}

func (s *LedgerSuite) addCard(name string, closing model.ClosingDay, payment int) model.Card {
	c, err := s.ledger.AddCard(CardInput{Name: name, ClosingDay: closing, PaymentDay: payment})
	require.NoError(s.T(), err)
	return c
}

func (s *LedgerSuite) TestDefaultsOnEmptyStore() {
	assert.Empty(s.T(), s.ledger.Cards())
	assert.Empty(s.T(), s.ledger.Expenses())
	assert.Empty(s.T(), s.ledger.Incomes())
	_, ok := s.ledger.Goal()
	assert.False(s.T(), ok)
	assert.Equal(s.T(), model.DefaultSettings(), s.ledger.Settings())
}

func (s *LedgerSuite) TestAddCardAssignsPaletteColor() {
	a := s.addCard("A", model.ClosingOn(15), 10)
	b := s.addCard("B", model.MonthEnd(), 27)
	assert.Equal(s.T(), model.CardColors[0], a.Color)
	assert.Equal(s.T(), model.CardColors[1], b.Color)
	assert.Equal(s.T(), "card_1", a.ID)

	c, err := s.ledger.AddCard(CardInput{Name: "C", ClosingDay: model.ClosingOn(5), PaymentDay: 1, Color: "#abcdef"})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "#ABCDEF", c.Color)
}

func (s *LedgerSuite) TestAddCardValidates() {
	_, err := s.ledger.AddCard(CardInput{Name: "", ClosingDay: model.ClosingOn(15), PaymentDay: 10})
	assert.ErrorIs(s.T(), err, model.ErrInvalid)
	_, err = s.ledger.AddCard(CardInput{Name: "X", ClosingDay: model.ClosingOn(15), PaymentDay: 40})
	assert.ErrorIs(s.T(), err, model.ErrInvalid)
	assert.Empty(s.T(), s.ledger.Cards())
}

func (s *LedgerSuite) TestAddExpenseComputesWithdrawalDate() {
	card := s.addCard("Visa", model.ClosingOn(15), 10)

	e, err := s.ledger.AddExpense(ExpenseInput{
		Date:          model.NewDate(2024, time.March, 16),
		Amount:        5000,
		PaymentMethod: card.ID,
	})
	require.NoError(s.T(), err)
	require.NotNil(s.T(), e.WithdrawalDate)
	assert.Equal(s.T(), "2024-05-10", e.WithdrawalDate.String())
	assert.Equal(s.T(), model.DefaultCategory, e.Category)

	cash, err := s.ledger.AddExpense(ExpenseInput{Date: model.NewDate(2024, time.March, 16), Amount: 800, PaymentMethod: model.Cash, Category: "Food"})
	require.NoError(s.T(), err)
	assert.Nil(s.T(), cash.WithdrawalDate)
}

func (s *LedgerSuite) TestAddExpenseUnknownCard() {
	_, err := s.ledger.AddExpense(ExpenseInput{Date: model.NewDate(2024, time.March, 1), Amount: 100, PaymentMethod: "card_nope"})
	assert.ErrorIs(s.T(), err, ErrCardNotFound)
	assert.Empty(s.T(), s.ledger.Expenses())
}

func (s *LedgerSuite) TestAddExpenseRejectsNonPositiveAmount() {
	_, err := s.ledger.AddExpense(ExpenseInput{Date: model.NewDate(2024, time.March, 1), Amount: 0, PaymentMethod: model.Cash})
	assert.ErrorIs(s.T(), err, model.ErrInvalid)
	_, err = s.ledger.AddIncome(IncomeInput{Date: model.NewDate(2024, time.March, 1), Amount: -5})
	assert.ErrorIs(s.T(), err, model.ErrInvalid)
}

func (s *LedgerSuite) TestDeleteCardCascades() {
	a := s.addCard("A", model.ClosingOn(15), 10)
	b := s.addCard("B", model.ClosingOn(20), 5)
	date := model.NewDate(2024, time.March, 1)
	for _, method := range []string{a.ID, a.ID, b.ID, model.Cash} {
		_, err := s.ledger.AddExpense(ExpenseInput{Date: date, Amount: 100, PaymentMethod: method})
		require.NoError(s.T(), err)
	}

	removed, err := s.ledger.DeleteCard(a.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2, removed)

	reopened := s.open()
	assert.Len(s.T(), reopened.Cards(), 1)
	for _, e := range reopened.Expenses() {
		assert.NotEqual(s.T(), a.ID, e.PaymentMethod)
	}
	assert.Len(s.T(), reopened.Expenses(), 2)
}

func (s *LedgerSuite) TestUpdateCardKeepsWithdrawalDates() {
	card := s.addCard("A", model.ClosingOn(15), 10)
	e, err := s.ledger.AddExpense(ExpenseInput{Date: model.NewDate(2024, time.March, 1), Amount: 100, PaymentMethod: card.ID})
	require.NoError(s.T(), err)

	updated, err := s.ledger.UpdateCard(card.ID, CardInput{Name: "A2", ClosingDay: model.MonthEnd(), PaymentDay: 27})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), card.Color, updated.Color)
	assert.Equal(s.T(), "A2", updated.Name)

	got := s.ledger.Expenses()[0]
	assert.Equal(s.T(), e.WithdrawalDate.String(), got.WithdrawalDate.String())
}

func (s *LedgerSuite) TestDeleteUnknown() {
	assert.ErrorIs(s.T(), s.ledger.DeleteExpense("expense_x"), ErrNotFound)
	assert.ErrorIs(s.T(), s.ledger.DeleteIncome("income_x"), ErrNotFound)
	_, err := s.ledger.DeleteCard("card_x")
	assert.ErrorIs(s.T(), err, ErrNotFound)
	_, err = s.ledger.UpdateCard("card_x", CardInput{Name: "X", ClosingDay: model.ClosingOn(1), PaymentDay: 1})
	assert.ErrorIs(s.T(), err, ErrNotFound)
	_, err = s.ledger.Card("card_x")
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *LedgerSuite) TestIncomeDefaultsAndDelete() {
	inc, err := s.ledger.AddIncome(IncomeInput{Date: model.NewDate(2024, time.March, 25), Amount: 250000})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), model.DefaultIncomeSource, inc.Source)

	require.NoError(s.T(), s.ledger.DeleteIncome(inc.ID))
	assert.Empty(s.T(), s.open().Incomes())
}

func (s *LedgerSuite) TestGoalAndSettingsPersist() {
	goal := model.Goal{Amount: 1000000, CurrentSavings: 200000, Deadline: model.NewDate(2024, time.December, 31)}
	require.NoError(s.T(), s.ledger.SetGoal(goal))

	theme, err := s.ledger.ToggleTheme()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), model.ThemeDark, theme)
	require.NoError(s.T(), s.ledger.SetNotificationTime("21:30"))

	reopened := s.open()
	got, ok := reopened.Goal()
	require.True(s.T(), ok)
	assert.Equal(s.T(), goal.Amount, got.Amount)
	assert.True(s.T(), goal.Deadline.Equal(got.Deadline))
	assert.Equal(s.T(), model.Settings{Theme: model.ThemeDark, NotificationTime: "21:30"}, reopened.Settings())

	require.NoError(s.T(), reopened.ClearGoal())
	_, ok = s.open().Goal()
	assert.False(s.T(), ok)
}

func (s *LedgerSuite) TestSettingsValidation() {
	assert.ErrorIs(s.T(), s.ledger.SetNotificationTime("25:00"), model.ErrInvalid)
	assert.ErrorIs(s.T(), s.ledger.SetTheme("sepia"), model.ErrInvalid)
	assert.ErrorIs(s.T(), s.ledger.SetGoal(model.Goal{Amount: 0, Deadline: model.NewDate(2025, 1, 1)}), model.ErrInvalid)
}

func (s *LedgerSuite) TestExportImportRoundTrip() {
	card := s.addCard("Visa", model.MonthEnd(), 27)
	_, err := s.ledger.AddExpense(ExpenseInput{Date: model.NewDate(2024, time.February, 29), Amount: 1200, PaymentMethod: card.ID, Category: "Books"})
	require.NoError(s.T(), err)
	_, err = s.ledger.AddExpense(ExpenseInput{Date: model.NewDate(2024, time.March, 2), Amount: 300, PaymentMethod: model.Cash})
	require.NoError(s.T(), err)
	_, err = s.ledger.AddIncome(IncomeInput{Date: model.NewDate(2024, time.March, 1), Amount: 200000, Source: "Salary"})
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.ledger.SetGoal(model.Goal{Amount: 500000, CurrentSavings: 1000, Deadline: model.NewDate(2024, time.September, 1)}))
	_, err = s.ledger.ToggleTheme()
	require.NoError(s.T(), err)

	before := s.ledger.Document()
	data, err := s.ledger.Export(fixedNow)
	require.NoError(s.T(), err)
	assert.Contains(s.T(), string(data), `"exportDate": "2024-03-10T09:00:00Z"`)

	// Import into a fresh ledger.
	s.path = filepath.Join(s.T().TempDir(), "other.json")
	fresh := s.open()
	snap, err := ParseSnapshot(data)
	require.NoError(s.T(), err)
	require.NoError(s.T(), fresh.Import(snap))

	assert.Equal(s.T(), before, fresh.Document())
	assert.Equal(s.T(), before, s.open().Document())
}

func (s *LedgerSuite) TestImportDefaultsMissingKeys() {
	s.addCard("A", model.ClosingOn(1), 1)

	snap, err := ParseSnapshot([]byte(`{"incomes":[{"id":"income_1","date":"2024-01-05","amount":10,"source":"Gift"}]}`))
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.ledger.Import(snap))

	doc := s.open().Document()
	assert.Empty(s.T(), doc.Cards)
	assert.Empty(s.T(), doc.Expenses)
	assert.Len(s.T(), doc.Incomes, 1)
	assert.Nil(s.T(), doc.Goal)
	assert.Equal(s.T(), model.DefaultSettings(), doc.Settings)
}

func TestParseSnapshotMalformed(t *testing.T) {
	for _, in := range []string{`{`, `[]`, `null`, " null\n", `{"cards":"x"}`, `{"expenses":[{"date":"yesterday"}]}`} {
		_, err := ParseSnapshot([]byte(in))
		if !errors.Is(err, ErrMalformedSnapshot) {
			t.Errorf("ParseSnapshot(%s) error = %v, want ErrMalformedSnapshot", in, err)
		}
	}
}

// failingBackend reads like an empty store and rejects every write.
type failingBackend struct{}

var errDiskFull = errors.New("disk full")

func (failingBackend) Get(string) ([]byte, bool, error) { return nil, false, nil }
func (failingBackend) SetMany(map[string][]byte) error { return errDiskFull }
func (failingBackend) LastSaved() (time.Time, bool, error) { return time.Time{}, false, nil }
func (failingBackend) Close() error { return nil }

func TestImportReportsWriteFailure(t *testing.T) {
	l, err := Open(failingBackend{}, Options{})
	require.NoError(t, err)

	snap, err := ParseSnapshot([]byte(`{"cards":[]}`))
	require.NoError(t, err)
	err = l.Import(snap)
	assert.ErrorIs(t, err, errDiskFull)
	assert.NotErrorIs(t, err, ErrMalformedSnapshot)
}

func (s *LedgerSuite) TestLastSaved() {
	_, ok, err := s.ledger.LastSaved()
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)

	s.addCard("Visa", model.ClosingOn(15), 10)
	_, ok, err = s.ledger.LastSaved()
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)
}

func TestExportFileName(t *testing.T) {
	if got := ExportFileName(fixedNow); got != "savings-app-backup-2024-03-10.json" {
		t.Errorf("ExportFileName = %q", got)
	}
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}
