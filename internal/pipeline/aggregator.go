package pipeline

import (
	"sort"
	"time"

	"github.com/yutoain/savings-app/internal/model"
)

// DefaultScheduleMonths is how many months the dashboard schedule covers.
const DefaultScheduleMonths = 3

// DefaultRecentLimit caps the merged transaction history.
const DefaultRecentLimit = 15

// UnknownCardName labels expenses whose card no longer exists.
const UnknownCardName = "unknown"

// CashLabel labels cash expenses.
const CashLabel = "cash"

// DashboardOptions tunes Dashboard.
type DashboardOptions struct {
	ScheduleMonths int
}

// Dashboard computes the current month's summary.
func Dashboard(doc model.Document, now time.Time, opts DashboardOptions) model.DashboardStats {
	if opts.ScheduleMonths <= 0 {
		opts.ScheduleMonths = DefaultScheduleMonths
	}

	y, m := now.Year(), now.Month()
	monthExpenses := FilterExpensesByMonth(doc.Expenses, y, m)

	stats := model.DashboardStats{
		Year:        y,
		Month:       m,
		MonthIncome: SumIncomes(FilterIncomesByMonth(doc.Incomes, y, m)),
	}
	for _, e := range monthExpenses {
		if e.IsCash() {
			stats.CashSpent += e.Amount
		} else {
			stats.CardSpent += e.Amount
		}
	}

	stats.Balance = SumIncomes(doc.Incomes) - SumExpenses(doc.Expenses)
	stats.Schedule = UpcomingWithdrawals(doc, now, opts.ScheduleMonths)
	if len(stats.Schedule) > 0 {
		stats.NextWithdrawal = stats.Schedule[0].Total
	}
	stats.AfterBalance = stats.Balance - stats.NextWithdrawal
	stats.Usage = CardUsage(doc.Cards, monthExpenses)
	stats.Motivation = Motivation(doc.Goal, stats.CashSpent, stats.CardSpent, stats.NextWithdrawal, now)
	return stats
}

// CardUsage totals non-cash expenses per card in first-seen order.
func CardUsage(cards []model.Card, expenses []model.Expense) []model.CardUsage {
	index := make(map[string]int)
	var usage []model.CardUsage
	var total int64

	for _, e := range expenses {
		if e.IsCash() {
			continue
		}
		i, ok := index[e.PaymentMethod]
		if !ok {
			u := model.CardUsage{
				CardID:   e.PaymentMethod,
				CardName: UnknownCardName,
				Color:    model.UnknownCardColor,
			}
			if c, found := findCard(cards, e.PaymentMethod); found {
				u.CardName = c.Name
				u.Color = c.Color
			}
			i = len(usage)
			index[e.PaymentMethod] = i
			usage = append(usage, u)
		}
		usage[i].Amount += e.Amount
		total += e.Amount
	}

	if total > 0 {
		for i := range usage {
			usage[i].SharePercent = float64(usage[i].Amount) / float64(total) * 100
		}
	}
	return usage
}

// Recent merges incomes and expenses, newest first, keeping at most limit
// rows. Rows on the same day keep incomes ahead of expenses in insertion
// order.
func Recent(doc model.Document, limit int) []model.Transaction {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	txs := make([]model.Transaction, 0, len(doc.Incomes)+len(doc.Expenses))
	for _, inc := range doc.Incomes {
		txs = append(txs, model.Transaction{
			Kind:   model.KindIncome,
			ID:     inc.ID,
			Date:   inc.Date,
			Amount: inc.Amount,
			Label:  inc.Source,
		})
	}
	for _, e := range doc.Expenses {
		txs = append(txs, model.Transaction{
			Kind:   model.KindExpense,
			ID:     e.ID,
			Date:   e.Date,
			Amount: e.Amount,
			Label:  e.Category,
			Method: PaymentName(doc.Cards, e.PaymentMethod),
		})
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date.Time)
	})
	if len(txs) > limit {
		txs = txs[:limit]
	}
	return txs
}

// PaymentName returns the display name of a payment method.
func PaymentName(cards []model.Card, method string) string {
	if method == model.Cash {
		return CashLabel
	}
	if c, ok := findCard(cards, method); ok {
		return c.Name
	}
	return UnknownCardName
}

// FilterExpensesByMonth returns expenses dated in the given month.
func FilterExpensesByMonth(expenses []model.Expense, y int, m time.Month) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if e.Date.InMonth(y, m) {
			out = append(out, e)
		}
	}
	return out
}

// FilterIncomesByMonth returns incomes dated in the given month.
func FilterIncomesByMonth(incomes []model.Income, y int, m time.Month) []model.Income {
	var out []model.Income
	for _, inc := range incomes {
		if inc.Date.InMonth(y, m) {
			out = append(out, inc)
		}
	}
	return out
}

// FilterExpensesByMethod returns expenses paid with method.
func FilterExpensesByMethod(expenses []model.Expense, method string) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if e.PaymentMethod == method {
			out = append(out, e)
		}
	}
	return out
}

// SumExpenses adds up expense amounts.
func SumExpenses(expenses []model.Expense) int64 {
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// SumIncomes adds up income amounts.
func SumIncomes(incomes []model.Income) int64 {
	var total int64
	for _, inc := range incomes {
		total += inc.Amount
	}
	return total
}

func findCard(cards []model.Card, id string) (model.Card, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return model.Card{}, false
}
