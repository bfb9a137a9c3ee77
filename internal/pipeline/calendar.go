package pipeline

import (
	"time"

	"github.com/yutoain/savings-app/internal/model"
)

// CalendarMonth builds the Sunday-first grid for a month.
func CalendarMonth(doc model.Document, year int, month time.Month, today model.Date) model.CalendarMonth {
	first := model.NewDate(year, month, 1)
	cal := model.CalendarMonth{
		Year:    year,
		Month:   month,
		Leading: int(first.Weekday()),
	}

	hasTx := make(map[string]bool)
	for _, e := range doc.Expenses {
		hasTx[e.Date.String()] = true
	}
	for _, inc := range doc.Incomes {
		hasTx[inc.Date.String()] = true
	}
	hasW := make(map[string]bool)
	for _, e := range doc.Expenses {
		if e.WithdrawalDate != nil {
			hasW[e.WithdrawalDate.String()] = true
		}
	}

	n := model.DaysIn(year, month)
	cal.Days = make([]model.CalendarDay, 0, n)
	for d := 1; d <= n; d++ {
		date := model.NewDate(year, month, d)
		key := date.String()
		cal.Days = append(cal.Days, model.CalendarDay{
			Date:           date,
			HasTransaction: hasTx[key],
			HasWithdrawal:  hasW[key],
			IsToday:        date.Equal(today),
		})
	}
	return cal
}

// Day collects the incomes, expenses and card withdrawals of one date.
// Withdrawals of cards that no longer exist are left out.
func Day(doc model.Document, date model.Date) model.DaySummary {
	s := model.DaySummary{Date: date}

	for _, inc := range doc.Incomes {
		if inc.Date.Equal(date) {
			s.Incomes = append(s.Incomes, inc)
			s.IncomeTotal += inc.Amount
		}
	}
	for _, e := range doc.Expenses {
		if e.Date.Equal(date) {
			s.Expenses = append(s.Expenses, model.DayExpense{
				Expense:     e,
				PaymentName: PaymentName(doc.Cards, e.PaymentMethod),
			})
			s.ExpenseTotal += e.Amount
		}
	}
	s.HasTransactions = len(s.Incomes) > 0 || len(s.Expenses) > 0

	index := make(map[string]int)
	for _, e := range doc.Expenses {
		if e.WithdrawalDate == nil || !e.WithdrawalDate.Equal(date) {
			continue
		}
		card, ok := findCard(doc.Cards, e.PaymentMethod)
		if !ok {
			continue
		}
		i, seen := index[card.ID]
		if !seen {
			i = len(s.Withdrawals)
			index[card.ID] = i
			s.Withdrawals = append(s.Withdrawals, model.DayWithdrawal{
				CardID:   card.ID,
				CardName: card.Name,
				Color:    card.Color,
			})
		}
		s.Withdrawals[i].Expenses = append(s.Withdrawals[i].Expenses, e)
		s.Withdrawals[i].Total += e.Amount
		s.WithdrawalTotal += e.Amount
	}
	return s
}
