package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the on-disk and command-line format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a naive calendar date. It is stored as midnight UTC so that
// arithmetic never crosses a zone offset.
type Date struct {
	time.Time
}

// NewDate returns the date for y-m-d. Out-of-range values normalize the way
// time.Date does (February 30 becomes March 1 or 2).
func NewDate(y int, m time.Month, d int) Date {
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the local calendar date of t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q: want YYYY-MM-DD", ErrInvalid, s)
	}
	return Date{t}, nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// InMonth reports whether d falls in the given calendar month.
func (d Date) InMonth(y int, m time.Month) bool {
	return d.Year() == y && d.Month() == m
}

// Equal reports whether both values name the same calendar day.
func (d Date) Equal(o Date) bool {
	return d.Time.Equal(o.Time)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. An empty string decodes to the
// zero date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	// Exports from older builds may carry a full timestamp.
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysIn returns the number of days in the given month.
func DaysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthEndToken is the closing-day sentinel for cards that close on the last
// day of every month.
const MonthEndToken = "month-end"

// ClosingDay is a card's statement closing day: a day-of-month or month-end.
type ClosingDay struct {
	day      int
	monthEnd bool
}

// ClosingOn returns a closing day on the given day of the month.
func ClosingOn(day int) ClosingDay {
	return ClosingDay{day: day}
}

// MonthEnd returns the month-end closing day.
func MonthEnd() ClosingDay {
	return ClosingDay{monthEnd: true}
}

// ParseClosingDay accepts "month-end" or a day number 1-31.
func ParseClosingDay(s string) (ClosingDay, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, MonthEndToken) {
		return MonthEnd(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return ClosingDay{}, fmt.Errorf("%w: closing day %q: want 1-31 or %s", ErrInvalid, s, MonthEndToken)
	}
	c := ClosingOn(n)
	if err := c.Validate(); err != nil {
		return ClosingDay{}, err
	}
	return c, nil
}

// IsMonthEnd reports whether the card closes on the last day of the month.
func (c ClosingDay) IsMonthEnd() bool { return c.monthEnd }

// Day returns the literal closing day; zero for month-end.
func (c ClosingDay) Day() int { return c.day }

// IsZero reports whether the closing day was never set.
func (c ClosingDay) IsZero() bool { return !c.monthEnd && c.day == 0 }

// Validate checks the day range.
func (c ClosingDay) Validate() error {
	if c.monthEnd {
		return nil
	}
	if c.day < 1 || c.day > 31 {
		return fmt.Errorf("%w: closing day %d out of range 1-31", ErrInvalid, c.day)
	}
	return nil
}

func (c ClosingDay) String() string {
	if c.monthEnd {
		return MonthEndToken
	}
	return strconv.Itoa(c.day)
}

// MarshalJSON writes the closing day as a string, "15" or "month-end".
func (c ClosingDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts a string or a bare number.
func (c *ClosingDay) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] != '"' {
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("closing day: %w", err)
		}
		*c = ClosingOn(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClosingDay(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
