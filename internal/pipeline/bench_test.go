package pipeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/yutoain/savings-app/internal/billing"
	"github.com/yutoain/savings-app/internal/model"
)

// syntheticDocument builds a year of daily card and cash spending.
func syntheticDocument(cards, perDay int) model.Document {
	var doc model.Document
	for i := 0; i < cards; i++ {
		doc.Cards = append(doc.Cards, model.Card{
			ID:         fmt.Sprintf("card_%d", i),
			Name:       fmt.Sprintf("Card %d", i),
			ClosingDay: model.ClosingOn(5 + i),
			PaymentDay: 10 + i,
			Color:      model.CardColors[i%len(model.CardColors)],
		})
	}

	start := model.NewDate(2024, time.January, 1)
	for d := 0; d < 365; d++ {
		date := model.DateOf(start.AddDate(0, 0, d))
		for j := 0; j < perDay; j++ {
			e := model.Expense{
				ID:            fmt.Sprintf("expense_%d_%d", d, j),
				Date:          date,
				Amount:        int64(100 + j*50),
				PaymentMethod: model.Cash,
				Category:      "Food",
			}
			if j%2 == 0 && cards > 0 {
				card := doc.Cards[(d+j)%cards]
				e.PaymentMethod = card.ID
				w := billing.ForCard(card, date)
				e.WithdrawalDate = &w
			}
			doc.Expenses = append(doc.Expenses, e)
		}
		if date.Day() == 25 {
			doc.Incomes = append(doc.Incomes, model.Income{
				ID: fmt.Sprintf("income_%d", d), Date: date, Amount: 250000, Source: "Salary",
			})
		}
	}
	return doc
}

func BenchmarkUpcomingWithdrawals(b *testing.B) {
	doc := syntheticDocument(6, 8)
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = UpcomingWithdrawals(doc, now, 12)
	}
}

func BenchmarkDashboard(b *testing.B) {
	doc := syntheticDocument(6, 8)
	doc.Goal = &model.Goal{Amount: 1000000, CurrentSavings: 120000, Deadline: model.NewDate(2025, time.March, 31)}
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Dashboard(doc, now, DashboardOptions{})
		_, _ = GoalForecast(doc, now, DefaultAssumedMonthlySavings)
	}
}

func BenchmarkCalendarMonth(b *testing.B) {
	doc := syntheticDocument(6, 8)
	today := model.NewDate(2024, time.June, 15)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CalendarMonth(doc, 2024, time.June, today)
	}
}
