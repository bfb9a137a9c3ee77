// Package model defines the budget entities and report types.
package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid input")

// Cash is the payment method for expenses not charged to a card.
const Cash = "cash"

// Theme values persisted in Settings.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Defaults applied when a field is left blank.
const (
	DefaultCategory         = "Uncategorized"
	DefaultIncomeSource     = "Income"
	DefaultNotificationTime = "08:00"
)

// CardColors is the palette new cards draw from when no color is given.
var CardColors = []string{"#4F46E5", "#EF4444", "#10B981", "#F59E0B", "#8B5CF6", "#EC4899"}

// UnknownCardColor is used for expenses whose card can no longer be found.
const UnknownCardColor = "#666666"

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Card is a registered payment card.
type Card struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	ClosingDay ClosingDay `json:"closingDay"`
	PaymentDay int        `json:"paymentDay"`
	Color      string     `json:"color"`
}

// Validate checks the user-editable fields.
func (c Card) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: card name is required", ErrInvalid)
	}
	if c.ClosingDay.IsZero() {
		return fmt.Errorf("%w: closing day is required", ErrInvalid)
	}
	if err := c.ClosingDay.Validate(); err != nil {
		return err
	}
	if c.PaymentDay < 1 || c.PaymentDay > 31 {
		return fmt.Errorf("%w: payment day %d out of range 1-31", ErrInvalid, c.PaymentDay)
	}
	if c.Color != "" && !colorPattern.MatchString(c.Color) {
		return fmt.Errorf("%w: color %q: want #RRGGBB", ErrInvalid, c.Color)
	}
	return nil
}

// Expense is money spent on a given day, in cash or on a card.
type Expense struct {
	ID             string `json:"id"`
	Date           Date   `json:"date"`
	Amount         int64  `json:"amount"`
	PaymentMethod  string `json:"paymentMethod"`
	Category       string `json:"category"`
	WithdrawalDate *Date  `json:"withdrawalDate"`
}

// IsCash reports whether the expense was paid in cash.
func (e Expense) IsCash() bool {
	return e.PaymentMethod == Cash
}

// Income is money received on a given day.
type Income struct {
	ID     string `json:"id"`
	Date   Date   `json:"date"`
	Amount int64  `json:"amount"`
	Source string `json:"source"`
}

// Goal is the savings target.
type Goal struct {
	Amount         int64 `json:"amount"`
	CurrentSavings int64 `json:"currentSavings"`
	Deadline       Date  `json:"deadline"`
}

// Validate checks the goal fields.
func (g Goal) Validate() error {
	if g.Amount <= 0 {
		return fmt.Errorf("%w: goal amount must be greater than zero", ErrInvalid)
	}
	if g.CurrentSavings < 0 {
		return fmt.Errorf("%w: current savings cannot be negative", ErrInvalid)
	}
	if g.Deadline.IsZero() {
		return fmt.Errorf("%w: goal deadline is required", ErrInvalid)
	}
	return nil
}

// Remaining returns how much is still needed; negative once exceeded.
func (g Goal) Remaining() int64 {
	return g.Amount - g.CurrentSavings
}

// Settings holds user preferences persisted alongside the data.
type Settings struct {
	Theme            string `json:"theme"`
	NotificationTime string `json:"notificationTime"`
}

// DefaultSettings returns the settings used when none are stored.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight, NotificationTime: DefaultNotificationTime}
}

// ValidateTheme checks a theme value.
func ValidateTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("%w: theme %q: want %s or %s", ErrInvalid, theme, ThemeLight, ThemeDark)
	}
	return nil
}

// ValidateNotificationTime checks an HH:MM clock time.
func ValidateNotificationTime(s string) error {
	if _, err := time.Parse("15:04", s); err != nil || len(s) != 5 {
		return fmt.Errorf("%w: notification time %q: want HH:MM", ErrInvalid, s)
	}
	return nil
}

// Document is the full persisted state.
type Document struct {
	Cards    []Card    `json:"cards"`
	Expenses []Expense `json:"expenses"`
	Incomes  []Income  `json:"incomes"`
	Goal     *Goal     `json:"goal"`
	Settings Settings  `json:"settings"`
}

// CardByID returns the card with the given id.
func (d Document) CardByID(id string) (Card, bool) {
	for _, c := range d.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}
