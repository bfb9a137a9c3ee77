// Package pipeline derives the dashboard, calendar and goal reports from the
// ledger state. Every function is pure over a model.Document.
package pipeline

import (
	"time"

	"github.com/yutoain/savings-app/internal/billing"
	"github.com/yutoain/savings-app/internal/model"
)

// UpcomingWithdrawals returns the projected card debits for the given number
// of months, starting with the month containing now. Cards contribute a
// detail only when their total for the month is positive.
func UpcomingWithdrawals(doc model.Document, now time.Time, months int) []model.MonthlyWithdrawal {
	if months <= 0 {
		return []model.MonthlyWithdrawal{}
	}

	out := make([]model.MonthlyWithdrawal, 0, months)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < months; i++ {
		target := start.AddDate(0, i, 0)
		mw := model.MonthlyWithdrawal{
			Year:    target.Year(),
			Month:   target.Month(),
			Details: []model.WithdrawalDetail{},
		}

		for _, card := range doc.Cards {
			var total int64
			for _, e := range doc.Expenses {
				if e.PaymentMethod != card.ID || e.WithdrawalDate == nil {
					continue
				}
				if e.WithdrawalDate.InMonth(mw.Year, mw.Month) {
					total += e.Amount
				}
			}
			if total <= 0 {
				continue
			}
			mw.Total += total
			mw.Details = append(mw.Details, model.WithdrawalDetail{
				CardID:    card.ID,
				CardName:  card.Name,
				CardColor: card.Color,
				Amount:    total,
				Date:      billing.PaymentDateIn(card, mw.Year, mw.Month),
			})
		}
		out = append(out, mw)
	}
	return out
}

// NextWithdrawal returns the total debited in the month containing now.
func NextWithdrawal(doc model.Document, now time.Time) int64 {
	upcoming := UpcomingWithdrawals(doc, now, 1)
	if len(upcoming) == 0 {
		return 0
	}
	return upcoming[0].Total
}

// SumWithdrawals adds up the monthly totals.
func SumWithdrawals(months []model.MonthlyWithdrawal) int64 {
	var total int64
	for _, m := range months {
		total += m.Total
	}
	return total
}
