package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseClosingDay(t *testing.T) {
	tests := []struct {
		in       string
		want     string
		monthEnd bool
		wantErr  bool
	}{
		{in: "15", want: "15"},
		{in: " 1 ", want: "1"},
		{in: "31", want: "31"},
		{in: "month-end", want: "month-end", monthEnd: true},
		{in: "Month-End", want: "month-end", monthEnd: true},
		{in: "0", wantErr: true},
		{in: "32", wantErr: true},
		{in: "fifteen", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClosingDay(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("ParseClosingDay(%q) error = %v, want ErrInvalid", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClosingDay(%q): %v", tt.in, err)
			}
			if got.String() != tt.want || got.IsMonthEnd() != tt.monthEnd {
				t.Errorf("ParseClosingDay(%q) = %v (month-end %v), want %s", tt.in, got, got.IsMonthEnd(), tt.want)
			}
		})
	}
}

func FuzzParseClosingDay(f *testing.F) {
	for _, s := range []string{"1", "15", "31", "month-end", "0", "-3", "x", ""} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		c, err := ParseClosingDay(s)
		if err != nil {
			return
		}
		if c.Validate() != nil {
			t.Fatalf("ParseClosingDay(%q) returned invalid %v", s, c)
		}
		back, err := ParseClosingDay(c.String())
		if err != nil || back != c {
			t.Fatalf("round trip of %q: got %v, %v", s, back, err)
		}
	})
}

func TestClosingDayJSON(t *testing.T) {
	var card Card
	if err := json.Unmarshal([]byte(`{"closingDay":20,"paymentDay":27}`), &card); err != nil {
		t.Fatal(err)
	}
	if card.ClosingDay.Day() != 20 {
		t.Errorf("numeric closingDay = %v, want 20", card.ClosingDay)
	}

	if err := json.Unmarshal([]byte(`{"closingDay":"month-end"}`), &card); err != nil {
		t.Fatal(err)
	}
	if !card.ClosingDay.IsMonthEnd() {
		t.Errorf("closingDay = %v, want month-end", card.ClosingDay)
	}

	out, err := json.Marshal(Card{ClosingDay: ClosingOn(5)})
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(out, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["closingDay"] != "5" {
		t.Errorf("encoded closingDay = %#v, want \"5\"", raw["closingDay"])
	}
}

func TestDateJSON(t *testing.T) {
	var e Expense
	in := `{"date":"2024-03-15","withdrawalDate":null}`
	if err := json.Unmarshal([]byte(in), &e); err != nil {
		t.Fatal(err)
	}
	if !e.Date.Equal(NewDate(2024, time.March, 15)) {
		t.Errorf("date = %s, want 2024-03-15", e.Date)
	}
	if e.WithdrawalDate != nil {
		t.Errorf("withdrawalDate = %v, want nil", e.WithdrawalDate)
	}

	if err := json.Unmarshal([]byte(`{"date":"2024-03-15T09:30:00.000Z"}`), &e); err != nil {
		t.Fatal(err)
	}
	if e.Date.String() != "2024-03-15" {
		t.Errorf("timestamp date = %s, want 2024-03-15", e.Date)
	}

	if err := json.Unmarshal([]byte(`{"date":"15/03/2024"}`), &e); !errors.Is(err, ErrInvalid) {
		t.Errorf("bad date error = %v, want ErrInvalid", err)
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		y    int
		m    time.Month
		want int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.y, tt.m); got != tt.want {
			t.Errorf("DaysIn(%d, %s) = %d, want %d", tt.y, tt.m, got, tt.want)
		}
	}
}

func TestCardValidate(t *testing.T) {
	valid := Card{Name: "Visa", ClosingDay: ClosingOn(15), PaymentDay: 10, Color: "#4F46E5"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid card: %v", err)
	}

	bad := []Card{
		{Name: "", ClosingDay: ClosingOn(15), PaymentDay: 10},
		{Name: "Visa", PaymentDay: 10},
		{Name: "Visa", ClosingDay: ClosingOn(15), PaymentDay: 0},
		{Name: "Visa", ClosingDay: ClosingOn(15), PaymentDay: 32},
		{Name: "Visa", ClosingDay: ClosingOn(15), PaymentDay: 10, Color: "blue"},
	}
	for i, c := range bad {
		if err := c.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("case %d: Validate() = %v, want ErrInvalid", i, err)
		}
	}
}

func TestValidateNotificationTime(t *testing.T) {
	for _, s := range []string{"08:00", "23:59", "00:00"} {
		if err := ValidateNotificationTime(s); err != nil {
			t.Errorf("ValidateNotificationTime(%q) = %v", s, err)
		}
	}
	for _, s := range []string{"8:00", "24:00", "08:60", "noon", ""} {
		if err := ValidateNotificationTime(s); err == nil {
			t.Errorf("ValidateNotificationTime(%q) = nil, want error", s)
		}
	}
}
