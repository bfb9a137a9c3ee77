package cli

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in       int64
		currency string
		want     string
	}{
		{12345, "¥", "¥12,345"},
		{-12345, "¥", "-¥12,345"},
		{0, "$", "$0"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in, tt.currency); got != tt.want {
			t.Errorf("FormatMoney(%d, %q) = %q, want %q", tt.in, tt.currency, got, tt.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(500, "¥"); got != "+¥500" {
		t.Errorf("FormatSigned(500) = %q", got)
	}
	if got := FormatSigned(0, "¥"); got != "+¥0" {
		t.Errorf("FormatSigned(0) = %q", got)
	}
	if got := FormatSigned(-1500, "¥"); got != "-¥1,500" {
		t.Errorf("FormatSigned(-1500) = %q", got)
	}
}

func TestFormatDays(t *testing.T) {
	tests := map[int]string{1: "1 day", 0: "0 days", 45: "45 days", -1: "1 day ago", -3: "3 days ago"}
	for in, want := range tests {
		if got := FormatDays(in); got != want {
			t.Errorf("FormatDays(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatMonthAndWeekday(t *testing.T) {
	if got := FormatMonth(2024, time.March); got != "March 2024" {
		t.Errorf("FormatMonth = %q", got)
	}
	if got := FormatDayOfWeek(0); got != "Sun" {
		t.Errorf("FormatDayOfWeek(0) = %q", got)
	}
	if got := FormatDayOfWeek(9); got != "???" {
		t.Errorf("FormatDayOfWeek(9) = %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "12000", want: 12000},
		{in: " 12,000 ", want: 12000},
		{in: "¥3,500", want: 3500},
		{in: "-200", want: -200},
		{in: "", wantErr: true},
		{in: "12.5", wantErr: true},
		{in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q) = %d, want error", tt.in, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseAmount(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
}
