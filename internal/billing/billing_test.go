package billing

import (
	"testing"
	"time"

	"github.com/yutoain/savings-app/internal/model"
)

func d(y int, m time.Month, day int) model.Date {
	return model.NewDate(y, m, day)
}

func TestWithdrawalDate(t *testing.T) {
	tests := []struct {
		name    string
		closing model.ClosingDay
		payment int
		date    model.Date
		want    model.Date
	}{
		{"on closing day", model.ClosingOn(15), 10, d(2024, time.March, 15), d(2024, time.April, 10)},
		{"after closing day", model.ClosingOn(15), 10, d(2024, time.March, 16), d(2024, time.May, 10)},
		{"first of month", model.ClosingOn(15), 10, d(2024, time.March, 1), d(2024, time.April, 10)},
		{"month-end in leap February", model.MonthEnd(), 27, d(2024, time.February, 29), d(2024, time.March, 27)},
		{"month-end in 31-day month", model.MonthEnd(), 27, d(2024, time.January, 31), d(2024, time.February, 27)},
		{"closing 31 in 30-day month", model.ClosingOn(31), 5, d(2024, time.April, 30), d(2024, time.May, 5)},
		{"year rollover", model.ClosingOn(10), 26, d(2024, time.December, 20), d(2025, time.February, 26)},
		{"payment day overflow", model.ClosingOn(15), 31, d(2024, time.March, 10), d(2024, time.May, 1)},
		{"payment 31 into February", model.ClosingOn(15), 31, d(2024, time.January, 5), d(2024, time.March, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithdrawalDate(tt.closing, tt.payment, tt.date)
			if !got.Equal(tt.want) {
				t.Errorf("WithdrawalDate(%v, %d, %s) = %s, want %s",
					tt.closing, tt.payment, tt.date, got, tt.want)
			}
		})
	}
}

func TestWithdrawalDateAlwaysLater(t *testing.T) {
	start := d(2023, time.January, 1)
	for i := 0; i < 730; i++ {
		date := model.DateOf(start.AddDate(0, 0, i))
		for _, closing := range []model.ClosingDay{model.ClosingOn(1), model.ClosingOn(15), model.ClosingOn(31), model.MonthEnd()} {
			got := WithdrawalDate(closing, 1, date)
			if !got.After(date.Time) {
				t.Fatalf("WithdrawalDate(%v, 1, %s) = %s, not after purchase", closing, date, got)
			}
		}
	}
}

func TestClosingDayIn(t *testing.T) {
	if got := ClosingDayIn(model.MonthEnd(), 2023, time.February); got != 28 {
		t.Errorf("month-end Feb 2023 = %d, want 28", got)
	}
	if got := ClosingDayIn(model.MonthEnd(), 2024, time.February); got != 29 {
		t.Errorf("month-end Feb 2024 = %d, want 29", got)
	}
	if got := ClosingDayIn(model.ClosingOn(31), 2024, time.February); got != 31 {
		t.Errorf("closing 31 Feb 2024 = %d, want 31 (no clamping)", got)
	}
}

func TestForPaymentMethod(t *testing.T) {
	cards := []model.Card{
		{ID: "card_a", Name: "A", ClosingDay: model.ClosingOn(15), PaymentDay: 10},
		{ID: "card_b", Name: "B", ClosingDay: model.MonthEnd(), PaymentDay: 27},
	}
	date := d(2024, time.March, 20)

	if _, ok := ForPaymentMethod(cards, model.Cash, date); ok {
		t.Error("cash should have no withdrawal date")
	}
	if _, ok := ForPaymentMethod(cards, "card_missing", date); ok {
		t.Error("unknown card should have no withdrawal date")
	}
	got, ok := ForPaymentMethod(cards, "card_b", date)
	if !ok || !got.Equal(d(2024, time.April, 27)) {
		t.Errorf("card_b = %s, %v; want 2024-04-27, true", got, ok)
	}
}
