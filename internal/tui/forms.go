package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yutoain/savings-app/internal/cli"
	"github.com/yutoain/savings-app/internal/ledger"
	"github.com/yutoain/savings-app/internal/model"

	"github.com/charmbracelet/huh"
)

// formKind identifies which entry form is open.
type formKind int

const (
	formNone formKind = iota
	formExpense
	formIncome
	formCard
	formEditCard
	formGoal
	formDelete
	formSetup
)

// formValues backs every entry form. huh binds to its fields by pointer, so
// the App keeps it behind a pointer across Update copies.
type formValues struct {
	Date     string
	Amount   string
	Method   string
	Category string
	Source   string

	CardID     string
	Name       string
	ClosingDay string
	PaymentDay string
	Color      string

	GoalAmount  string
	GoalCurrent string
	Deadline    string

	Confirm    bool
	DeleteKind string // "card", "expense", "income"
	DeleteID   string

	SetupValues
}

func validateDate(s string) error {
	_, err := model.ParseDate(strings.TrimSpace(s))
	return err
}

func validatePositiveAmount(s string) error {
	n, err := cli.ParseAmount(s)
	if err != nil {
		return err
	}
	if n <= 0 {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

func validateNonNegativeAmount(s string) error {
	n, err := cli.ParseAmount(s)
	if err != nil {
		return err
	}
	if n < 0 {
		return errors.New("amount cannot be negative")
	}
	return nil
}

func validateClosingDay(s string) error {
	_, err := model.ParseClosingDay(s)
	return err
}

func validatePaymentDay(s string) error {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || d < 1 || d > 31 {
		return errors.New("payment day must be between 1 and 31")
	}
	return nil
}

func validateColor(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return (model.Card{Name: "x", ClosingDay: model.ClosingOn(1), PaymentDay: 1, Color: s}).Validate()
}

func newExpenseForm(v *formValues, cards []model.Card, today model.Date) *huh.Form {
	*v = formValues{Date: today.String(), Method: model.Cash}

	opts := []huh.Option[string]{huh.NewOption("Cash", model.Cash)}
	for _, c := range cards {
		opts = append(opts, huh.NewOption(c.Name, c.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("New expense"),
			huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").
				Value(&v.Date).Validate(validateDate),
			huh.NewInput().Title("Amount").
				Value(&v.Amount).Validate(validatePositiveAmount),
			huh.NewSelect[string]().Title("Paid with").
				Options(opts...).Value(&v.Method),
			huh.NewInput().Title("Category").Placeholder(model.DefaultCategory).
				Value(&v.Category),
		),
	).WithShowHelp(true)
}

func newIncomeForm(v *formValues, today model.Date) *huh.Form {
	*v = formValues{Date: today.String()}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("New income"),
			huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").
				Value(&v.Date).Validate(validateDate),
			huh.NewInput().Title("Amount").
				Value(&v.Amount).Validate(validatePositiveAmount),
			huh.NewInput().Title("Source").Placeholder(model.DefaultIncomeSource).
				Value(&v.Source),
		),
	).WithShowHelp(true)
}

// newCardForm opens an empty card form, or one prefilled from existing
// when editing.
func newCardForm(v *formValues, existing *model.Card) *huh.Form {
	*v = formValues{}
	title := "New card"
	if existing != nil {
		title = "Edit " + existing.Name
		v.CardID = existing.ID
		v.Name = existing.Name
		v.ClosingDay = existing.ClosingDay.String()
		v.PaymentDay = strconv.Itoa(existing.PaymentDay)
		v.Color = existing.Color
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().Title("Name").Value(&v.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().Title("Closing day").Description("1-31 or month-end").
				Value(&v.ClosingDay).Validate(validateClosingDay),
			huh.NewInput().Title("Payment day").Description("1-31, in the following month").
				Value(&v.PaymentDay).Validate(validatePaymentDay),
			huh.NewInput().Title("Color").Placeholder("#RRGGBB (blank picks one)").
				Value(&v.Color).Validate(validateColor),
		),
	).WithShowHelp(true)
}

func newGoalForm(v *formValues, existing *model.Goal, today model.Date) *huh.Form {
	*v = formValues{Deadline: model.DateOf(today.AddDate(1, 0, 0)).String(), GoalCurrent: "0"}
	if existing != nil {
		v.GoalAmount = strconv.FormatInt(existing.Amount, 10)
		v.GoalCurrent = strconv.FormatInt(existing.CurrentSavings, 10)
		v.Deadline = existing.Deadline.String()
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Savings goal"),
			huh.NewInput().Title("Target amount").
				Value(&v.GoalAmount).Validate(validatePositiveAmount),
			huh.NewInput().Title("Current savings").
				Value(&v.GoalCurrent).Validate(validateNonNegativeAmount),
			huh.NewInput().Title("Deadline").Placeholder("YYYY-MM-DD").
				Value(&v.Deadline).Validate(validateDate),
		),
	).WithShowHelp(true)
}

func newDeleteForm(v *formValues, kind, id, label string) *huh.Form {
	*v = formValues{DeleteKind: kind, DeleteID: id}

	desc := ""
	if kind == "card" {
		desc = "Every expense paid with this card is deleted too."
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %s?", label)).
				Description(desc).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&v.Confirm),
		),
	)
}

// submitForm applies a completed form to the ledger and returns the
// status-bar notice.
func submitForm(l *ledger.Ledger, kind formKind, v *formValues) (string, error) {
	switch kind {
	case formExpense:
		date, err := model.ParseDate(strings.TrimSpace(v.Date))
		if err != nil {
			return "", err
		}
		amount, err := cli.ParseAmount(v.Amount)
		if err != nil {
			return "", err
		}
		e, err := l.AddExpense(ledger.ExpenseInput{
			Date:          date,
			Amount:        amount,
			PaymentMethod: v.Method,
			Category:      v.Category,
		})
		if err != nil {
			return "", err
		}
		if e.WithdrawalDate != nil {
			return fmt.Sprintf("Expense added, withdrawn on %s", e.WithdrawalDate), nil
		}
		return "Expense added", nil

	case formIncome:
		date, err := model.ParseDate(strings.TrimSpace(v.Date))
		if err != nil {
			return "", err
		}
		amount, err := cli.ParseAmount(v.Amount)
		if err != nil {
			return "", err
		}
		if _, err := l.AddIncome(ledger.IncomeInput{Date: date, Amount: amount, Source: v.Source}); err != nil {
			return "", err
		}
		return "Income added", nil

	case formCard, formEditCard:
		closing, err := model.ParseClosingDay(v.ClosingDay)
		if err != nil {
			return "", err
		}
		payment, err := strconv.Atoi(strings.TrimSpace(v.PaymentDay))
		if err != nil {
			return "", fmt.Errorf("%w: payment day %q", model.ErrInvalid, v.PaymentDay)
		}
		in := ledger.CardInput{
			Name:       v.Name,
			ClosingDay: closing,
			PaymentDay: payment,
			Color:      strings.TrimSpace(v.Color),
		}
		if kind == formEditCard {
			c, err := l.UpdateCard(v.CardID, in)
			if err != nil {
				return "", err
			}
			return "Updated " + c.Name, nil
		}
		c, err := l.AddCard(in)
		if err != nil {
			return "", err
		}
		return "Added " + c.Name, nil

	case formGoal:
		amount, err := cli.ParseAmount(v.GoalAmount)
		if err != nil {
			return "", err
		}
		current, err := cli.ParseAmount(v.GoalCurrent)
		if err != nil {
			return "", err
		}
		deadline, err := model.ParseDate(strings.TrimSpace(v.Deadline))
		if err != nil {
			return "", err
		}
		if err := l.SetGoal(model.Goal{Amount: amount, CurrentSavings: current, Deadline: deadline}); err != nil {
			return "", err
		}
		return "Goal saved", nil

	case formDelete:
		if !v.Confirm {
			return "", nil
		}
		switch v.DeleteKind {
		case "card":
			n, err := l.DeleteCard(v.DeleteID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Card deleted with %d expenses", n), nil
		case "expense":
			if err := l.DeleteExpense(v.DeleteID); err != nil {
				return "", err
			}
			return "Expense deleted", nil
		case "income":
			if err := l.DeleteIncome(v.DeleteID); err != nil {
				return "", err
			}
			return "Income deleted", nil
		}
	}
	return "", nil
}
