package ledger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yutoain/savings-app/internal/billing"
	"github.com/yutoain/savings-app/internal/log"
	"github.com/yutoain/savings-app/internal/model"
	"github.com/yutoain/savings-app/internal/store"
)

// ExpenseInput holds the fields of a new expense.
type ExpenseInput struct {
	Date          model.Date
	Amount        int64
	PaymentMethod string // card id or model.Cash
	Category      string
}

// IncomeInput holds the fields of a new income.
type IncomeInput struct {
	Date   model.Date
	Amount int64
	Source string
}

// AddExpense records an expense. Card expenses get their withdrawal date
// from the card's current closing and payment days.
func (l *Ledger) AddExpense(in ExpenseInput) (model.Expense, error) {
	if in.Date.IsZero() {
		return model.Expense{}, fmt.Errorf("%w: expense date is required", model.ErrInvalid)
	}
	if in.Amount <= 0 {
		return model.Expense{}, fmt.Errorf("%w: amount must be greater than zero", model.ErrInvalid)
	}
	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		method = model.Cash
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = model.DefaultCategory
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	expense := model.Expense{
		ID:            l.newID(prefixExpense),
		Date:          in.Date,
		Amount:        in.Amount,
		PaymentMethod: method,
		Category:      category,
	}
	if method != model.Cash {
		w, ok := billing.ForPaymentMethod(l.cards, method, in.Date)
		if !ok {
			return model.Expense{}, fmt.Errorf("expense payment method %s: %w", method, ErrCardNotFound)
		}
		expense.WithdrawalDate = &w
	}

	expenses := append(cloneExpenses(l.expenses), expense)
	if err := l.persist(map[string]any{store.KeyExpenses: expenses}); err != nil {
		return model.Expense{}, err
	}
	l.expenses = expenses
	l.logger.Debug("added expense", log.FieldOperation, log.OpCreate, log.FieldID, expense.ID, log.FieldAmount, expense.Amount)
	return expense, nil
}

// DeleteExpense removes an expense.
func (l *Ledger) DeleteExpense(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.expenses {
		if e.ID != id {
			continue
		}
		expenses := make([]model.Expense, 0, len(l.expenses)-1)
		expenses = append(expenses, l.expenses[:i]...)
		expenses = append(expenses, l.expenses[i+1:]...)
		if err := l.persist(map[string]any{store.KeyExpenses: expenses}); err != nil {
			return err
		}
		l.expenses = expenses
		l.logger.Debug("deleted expense", log.FieldOperation, log.OpDelete, log.FieldID, id)
		return nil
	}
	return fmt.Errorf("expense %s: %w", id, ErrNotFound)
}

// AddIncome records an income.
func (l *Ledger) AddIncome(in IncomeInput) (model.Income, error) {
	if in.Date.IsZero() {
		return model.Income{}, fmt.Errorf("%w: income date is required", model.ErrInvalid)
	}
	if in.Amount <= 0 {
		return model.Income{}, fmt.Errorf("%w: amount must be greater than zero", model.ErrInvalid)
	}
	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = model.DefaultIncomeSource
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	income := model.Income{
		ID:     l.newID(prefixIncome),
		Date:   in.Date,
		Amount: in.Amount,
		Source: source,
	}
	incomes := append(slices.Clone(l.incomes), income)
	if err := l.persist(map[string]any{store.KeyIncomes: incomes}); err != nil {
		return model.Income{}, err
	}
	l.incomes = incomes
	l.logger.Debug("added income", log.FieldOperation, log.OpCreate, log.FieldID, income.ID, log.FieldAmount, income.Amount)
	return income, nil
}

// DeleteIncome removes an income.
func (l *Ledger) DeleteIncome(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, inc := range l.incomes {
		if inc.ID != id {
			continue
		}
		incomes := make([]model.Income, 0, len(l.incomes)-1)
		incomes = append(incomes, l.incomes[:i]...)
		incomes = append(incomes, l.incomes[i+1:]...)
		if err := l.persist(map[string]any{store.KeyIncomes: incomes}); err != nil {
			return err
		}
		l.incomes = incomes
		l.logger.Debug("deleted income", log.FieldOperation, log.OpDelete, log.FieldID, id)
		return nil
	}
	return fmt.Errorf("income %s: %w", id, ErrNotFound)
}
