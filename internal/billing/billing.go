// Package billing projects when a card purchase is debited from the bank.
package billing

import (
	"time"

	"github.com/yutoain/savings-app/internal/model"
)

// ClosingDayIn returns the statement closing day of the card for the given
// month. Month-end cards close on the last calendar day; numeric closing days
// are used as-is, even past the end of a short month.
func ClosingDayIn(c model.ClosingDay, year int, month time.Month) int {
	if c.IsMonthEnd() {
		return model.DaysIn(year, month)
	}
	return c.Day()
}

// WithdrawalDate returns the debit date for a purchase made on date with a
// card that closes on closing and pays on paymentDay.
//
// Purchases on or before the closing day are debited on paymentDay of the
// following month; later purchases roll one month further. Day overflow
// normalizes into the next month (payment day 31 in April is May 1).
func WithdrawalDate(closing model.ClosingDay, paymentDay int, date model.Date) model.Date {
	y, m, d := date.Date()
	offset := time.Month(1)
	if d > ClosingDayIn(closing, y, m) {
		offset = 2
	}
	return model.NewDate(y, m+offset, paymentDay)
}

// ForCard returns the debit date of a purchase on card.
func ForCard(card model.Card, date model.Date) model.Date {
	return WithdrawalDate(card.ClosingDay, card.PaymentDay, date)
}

// ForPaymentMethod resolves method against cards and returns the debit date.
// It reports false for cash and for ids that match no card.
func ForPaymentMethod(cards []model.Card, method string, date model.Date) (model.Date, bool) {
	if method == model.Cash {
		return model.Date{}, false
	}
	for _, c := range cards {
		if c.ID == method {
			return ForCard(c, date), true
		}
	}
	return model.Date{}, false
}

// PaymentDateIn returns the card's debit date within the given month.
func PaymentDateIn(card model.Card, year int, month time.Month) model.Date {
	return model.NewDate(year, month, card.PaymentDay)
}
