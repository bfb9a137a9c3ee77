package model

import "time"

// WithdrawalDetail is one card's debit within a month.
type WithdrawalDetail struct {
	CardID    string
	CardName  string
	CardColor string
	Amount    int64
	Date      Date
}

// MonthlyWithdrawal holds the projected card debits for one calendar month.
type MonthlyWithdrawal struct {
	Year    int
	Month   time.Month
	Total   int64
	Details []WithdrawalDetail
}

// Label returns the month as YYYY-MM.
func (m MonthlyWithdrawal) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// CardUsage holds one card's spending within a month.
type CardUsage struct {
	CardID       string
	CardName     string
	Color        string
	Amount       int64
	SharePercent float64
}

// MotivationLevel grades how spending compares to the savings pace.
type MotivationLevel int

const (
	MotivationSuccess MotivationLevel = iota
	MotivationWarning
	MotivationDanger
)

func (l MotivationLevel) String() string {
	switch l {
	case MotivationWarning:
		return "warning"
	case MotivationDanger:
		return "danger"
	default:
		return "success"
	}
}

// Motivation is a short hint shown on the dashboard.
type Motivation struct {
	Level   MotivationLevel
	Message string
}

// DashboardStats summarizes the current month.
type DashboardStats struct {
	Year  int
	Month time.Month

	MonthIncome    int64
	CashSpent      int64
	CardSpent      int64
	Balance        int64
	NextWithdrawal int64
	AfterBalance   int64

	Usage      []CardUsage
	Schedule   []MonthlyWithdrawal
	Motivation Motivation
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date           Date
	HasTransaction bool
	HasWithdrawal  bool
	IsToday        bool
}

// CalendarMonth is a Sunday-first month grid.
type CalendarMonth struct {
	Year    int
	Month   time.Month
	Leading int // blank cells before the 1st
	Days    []CalendarDay
}

// DayExpense is an expense line in the day detail.
type DayExpense struct {
	Expense     Expense
	PaymentName string
}

// DayWithdrawal groups the debits of one card due on a day.
type DayWithdrawal struct {
	CardID   string
	CardName string
	Color    string
	Expenses []Expense
	Total    int64
}

// DaySummary is everything that happened, or is due, on one day.
type DaySummary struct {
	Date            Date
	Incomes         []Income
	Expenses        []DayExpense
	Withdrawals     []DayWithdrawal
	WithdrawalTotal int64
	IncomeTotal     int64
	ExpenseTotal    int64
	HasTransactions bool
}

// Net returns incomes minus expenses for the day.
func (s DaySummary) Net() int64 {
	return s.IncomeTotal - s.ExpenseTotal
}

// TransactionKind distinguishes merged history rows.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Transaction is a row in the merged income/expense history.
type Transaction struct {
	Kind   TransactionKind
	ID     string
	Date   Date
	Amount int64
	Label  string // income source or expense category
	Method string // payment method display name; empty for incomes
}

// Signed returns the amount with expenses negated.
func (t Transaction) Signed() int64 {
	if t.Kind == KindExpense {
		return -t.Amount
	}
	return t.Amount
}

// GoalForecast estimates whether the savings goal will be met.
type GoalForecast struct {
	Goal              Goal
	Progress          float64
	Needed            int64
	DaysLeft          int
	ProjectionMonths  int
	Withdrawals       int64
	MonthlyAverage    int64
	EstimatedSpending int64
	ProjectedSavings  int64
	Achievable        bool
}
