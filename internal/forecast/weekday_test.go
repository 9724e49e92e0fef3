package forecast

import (
	"testing"
	"time"
)

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
		want  int
	}{
		{name: "first day of 2024", year: 2024, month: 1, day: 1, want: 1},   // Monday
		{name: "first day of 2000", year: 2000, month: 1, day: 1, want: 6},   // Saturday
		{name: "leap day 2024", year: 2024, month: 2, day: 29, want: 4},      // Thursday
		{name: "non-leap century", year: 1900, month: 3, day: 1, want: 4},    // Thursday
		{name: "leap century", year: 2000, month: 2, day: 29, want: 2},       // Tuesday
		{name: "end of year", year: 2023, month: 12, day: 31, want: 0},       // Sunday
		{name: "mid-year sunday", year: 2024, month: 6, day: 16, want: 0},    // Sunday
		{name: "january of leap year", year: 2024, month: 1, day: 31, want: 3}, // Wednesday
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DayOfWeek(tt.year, tt.month, tt.day)
			if got != tt.want {
				t.Errorf("DayOfWeek(%d, %d, %d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestDayOfWeekAgreesWithTimePackage(t *testing.T) {
	// Walk a few years day by day and compare against the standard library.
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() < 2026; d = d.AddDate(0, 0, 1) {
		got := DayOfWeek(d.Year(), int(d.Month()), d.Day())
		want := int(d.Weekday())
		if got != want {
			t.Fatalf("DayOfWeek(%s) = %d, want %d", d.Format("2006-01-02"), got, want)
		}
	}
}

func TestDayOfWeekPeriodic(t *testing.T) {
	// The same weekday must recur every 7 days, including across month and
	// leap-day boundaries. Increment via time.AddDate, not the formula.
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		d := start.AddDate(0, 0, i)
		next := d.AddDate(0, 0, 7)
		a := DayOfWeek(d.Year(), int(d.Month()), d.Day())
		b := DayOfWeek(next.Year(), int(next.Month()), next.Day())
		if a != b {
			t.Fatalf("weekday not periodic: %s=%d but %s=%d",
				d.Format("2006-01-02"), a, next.Format("2006-01-02"), b)
		}
	}
}

func TestDayOfWeekDoesNotPanicOnGarbage(t *testing.T) {
	// Result is undefined for invalid months, but must not panic.
	for _, month := range []int{-5, 0, 13, 99} {
		got := DayOfWeek(2024, month, 1)
		if got < 0 || got > 6 {
			t.Errorf("DayOfWeek(2024, %d, 1) = %d, outside [0,6]", month, got)
		}
	}
}

func TestWeekdayAbbrev(t *testing.T) {
	want := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for i, w := range want {
		if got := WeekdayAbbrev(i); got != w {
			t.Errorf("WeekdayAbbrev(%d) = %q, want %q", i, got, w)
		}
	}
	if got := WeekdayAbbrev(8); got != "Mon" {
		t.Errorf("WeekdayAbbrev(8) = %q, want folded %q", got, "Mon")
	}
}

func TestFloorDivAndMod(t *testing.T) {
	tests := []struct {
		a, b    int
		wantDiv int
		wantMod int
	}{
		{7, 4, 1, 3},
		{-7, 4, -2, 1},
		{-1, 7, -1, 6},
		{-100, 7, -15, 5},
		{100, 7, 14, 2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.wantDiv {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantDiv)
		}
		if got := floorMod(tt.a, tt.b); got != tt.wantMod {
			t.Errorf("floorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantMod)
		}
	}
}
