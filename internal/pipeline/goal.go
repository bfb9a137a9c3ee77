package pipeline

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yutoain/savings-app/internal/model"
)

// DefaultAssumedMonthlySavings is the monthly amount the forecast assumes
// will be set aside.
const DefaultAssumedMonthlySavings = 30000

const (
	daysPerMonth = 30
	day          = 24 * time.Hour
)

var (
	decDaysPerMonth = decimal.NewFromInt(daysPerMonth)
	decDangerRatio  = decimal.RequireFromString("1.2")
)

// DaysUntil returns the whole days from now to the start of deadline,
// rounded up. It is negative once the deadline has passed.
func DaysUntil(deadline model.Date, now time.Time) int {
	start := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, now.Location())
	return int(math.Ceil(float64(start.Sub(now)) / float64(day)))
}

// GoalProgress returns current savings as a percentage of the goal, clamped
// to [0, 100].
func GoalProgress(g model.Goal) float64 {
	if g.Amount <= 0 {
		return 100
	}
	p := float64(g.CurrentSavings) / float64(g.Amount) * 100
	return math.Max(0, math.Min(p, 100))
}

// MonthlyAverage divides all-time spending by the number of 30-day periods
// since the oldest expense, rounded to the nearest unit.
func MonthlyAverage(expenses []model.Expense, now time.Time) int64 {
	if len(expenses) == 0 {
		return 0
	}

	oldest := expenses[0].Date
	var total int64
	for _, e := range expenses {
		if e.Date.Before(oldest.Time) {
			oldest = e.Date
		}
		total += e.Amount
	}

	start := time.Date(oldest.Year(), oldest.Month(), oldest.Day(), 0, 0, 0, 0, now.Location())
	months := int64(math.Ceil(float64(now.Sub(start)) / float64(daysPerMonth*day)))
	if months < 1 {
		months = 1
	}
	return decimal.NewFromInt(total).Div(decimal.NewFromInt(months)).Round(0).IntPart()
}

// GoalForecast estimates whether the goal will be met by its deadline, after
// the projected card withdrawals and average spending. It reports false when
// no goal is set.
func GoalForecast(doc model.Document, now time.Time, assumedMonthlySavings int64) (model.GoalForecast, bool) {
	if doc.Goal == nil {
		return model.GoalForecast{}, false
	}
	g := *doc.Goal

	f := model.GoalForecast{
		Goal:     g,
		Progress: GoalProgress(g),
		Needed:   g.Remaining(),
		DaysLeft: DaysUntil(g.Deadline, now),
	}

	monthsLeft := decimal.Zero
	if f.DaysLeft > 0 {
		monthsLeft = decimal.NewFromInt(int64(f.DaysLeft)).Div(decDaysPerMonth)
		f.ProjectionMonths = int(monthsLeft.Ceil().IntPart())
	}

	f.Withdrawals = SumWithdrawals(UpcomingWithdrawals(doc, now, f.ProjectionMonths))
	f.MonthlyAverage = MonthlyAverage(doc.Expenses, now)

	spending := monthsLeft.Mul(decimal.NewFromInt(f.MonthlyAverage))
	projected := decimal.NewFromInt(g.CurrentSavings).
		Add(monthsLeft.Mul(decimal.NewFromInt(assumedMonthlySavings))).
		Sub(decimal.NewFromInt(f.Withdrawals)).
		Sub(spending)

	f.EstimatedSpending = spending.Round(0).IntPart()
	f.ProjectedSavings = projected.Round(0).IntPart()
	f.Achievable = projected.GreaterThanOrEqual(decimal.NewFromInt(f.Needed))
	return f, true
}

// Motivation grades this month's spending against the pace the goal needs.
// Without a goal it flags months where card spending dwarfs cash.
func Motivation(goal *model.Goal, cash, card, nextWithdrawal int64, now time.Time) model.Motivation {
	if goal == nil {
		if card > 2*cash {
			return model.Motivation{
				Level:   model.MotivationWarning,
				Message: "Heavy card use? Mind next month's withdrawals.",
			}
		}
		return model.Motivation{
			Level:   model.MotivationSuccess,
			Message: "Spending is well balanced.",
		}
	}

	needed := goal.Remaining()
	daysLeft := DaysUntil(goal.Deadline, now)
	if needed <= 0 {
		return onTrack()
	}
	if daysLeft <= 0 {
		return offTrack()
	}

	spent := decimal.NewFromInt(cash + card + nextWithdrawal)
	target := decimal.NewFromInt(needed).Div(decimal.NewFromInt(int64(daysLeft)).Div(decDaysPerMonth))
	switch {
	case spent.GreaterThan(target.Mul(decDangerRatio)):
		return offTrack()
	case spent.GreaterThan(target):
		return model.Motivation{
			Level:   model.MotivationWarning,
			Message: "Time to economize. Plan around the upcoming withdrawals.",
		}
	default:
		return onTrack()
	}
}

func onTrack() model.Motivation {
	return model.Motivation{
		Level:   model.MotivationSuccess,
		Message: "Keep it up! You are on track for your goal.",
	}
}

func offTrack() model.Motivation {
	return model.Motivation{
		Level:   model.MotivationDanger,
		Message: "Watch your card use! At this pace the goal is out of reach.",
	}
}
