package forecast

import (
	"strings"
	"testing"
)

func TestBuildRows(t *testing.T) {
	dates := []string{"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13", "2024-06-14", "2024-06-15", "2024-06-16"}
	codes := []int{3, 61, 0, 95, 96, 2, 1}
	highs := []float64{20.4, 18.9, 25.1, 19.0, 17.6, 21.3, 22.8}
	lows := []float64{12.1, 10.0, 13.4, 11.9, 9.8, 12.2, 13.0}

	rows, err := BuildRows(dates, codes, highs, lows)
	if err != nil {
		t.Fatalf("BuildRows: %v", err)
	}
	if len(rows) != Days {
		t.Fatalf("expected %d rows, got %d", Days, len(rows))
	}

	if rows[0].Label != "Today" {
		t.Errorf("row 0 label = %q, want Today", rows[0].Label)
	}
	if rows[0].Icon != IconCloudy {
		t.Errorf("row 0 icon = %q, want %q", rows[0].Icon, IconCloudy)
	}
	if got := FormatTemp(rows[0].High); got != "20°" {
		t.Errorf("row 0 high = %q, want 20°", got)
	}
	if got := FormatTemp(rows[0].Low); got != "12°" {
		t.Errorf("row 0 low = %q, want 12°", got)
	}

	wantLabels := []string{"Today", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, want := range wantLabels {
		if rows[i].Label != want {
			t.Errorf("row %d label = %q, want %q", i, rows[i].Label, want)
		}
	}

	if rows[1].Icon != IconScatteredShowersDay {
		t.Errorf("row 1 icon = %q, want %q", rows[1].Icon, IconScatteredShowersDay)
	}
	// Forecast rows are forced to the day variant even where the code has a
	// night one.
	if rows[3].Icon != IconIsolatedTstormsDay {
		t.Errorf("row 3 icon = %q, want %q", rows[3].Icon, IconIsolatedTstormsDay)
	}
	if rows[4].Icon != IconStrongTstorms {
		t.Errorf("row 4 icon = %q, want %q", rows[4].Icon, IconStrongTstorms)
	}
}

func TestBuildRowsTodayOverride(t *testing.T) {
	// 2024-06-12 is a Wednesday. At index 0 it must still read "Today"; the
	// same date at a later index gets the Wed label.
	dates := []string{"2024-06-12", "2024-06-13", "2024-06-14", "2024-06-15", "2024-06-16", "2024-06-17", "2024-06-19"}
	codes := make([]int, 7)
	vals := make([]float64, 7)

	rows, err := BuildRows(dates, codes, vals, vals)
	if err != nil {
		t.Fatalf("BuildRows: %v", err)
	}
	if rows[0].Label != "Today" {
		t.Errorf("row 0 label = %q, want Today", rows[0].Label)
	}

	shifted := []string{"2024-06-11", "2024-06-12", "2024-06-13", "2024-06-14", "2024-06-15", "2024-06-16", "2024-06-17"}
	rows, err = BuildRows(shifted, codes, vals, vals)
	if err != nil {
		t.Fatalf("BuildRows: %v", err)
	}
	if rows[1].Label != "Wed" {
		t.Errorf("row 1 label = %q, want Wed", rows[1].Label)
	}
}

func TestBuildRowsShortInput(t *testing.T) {
	dates := []string{"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13", "2024-06-14", "2024-06-15", "2024-06-16"}
	full := make([]float64, 7)
	codes := make([]int, 7)

	tests := []struct {
		name  string
		dates []string
		codes []int
		highs []float64
		lows  []float64
	}{
		{name: "short dates", dates: dates[:6], codes: codes, highs: full, lows: full},
		{name: "short codes", dates: dates, codes: codes[:3], highs: full, lows: full},
		{name: "short highs", dates: dates, codes: codes, highs: full[:1], lows: full},
		{name: "empty lows", dates: dates, codes: codes, highs: full, lows: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildRows(tt.dates, tt.codes, tt.highs, tt.lows); err == nil {
				t.Error("expected error for short input, got nil")
			}
		})
	}
}

func TestBuildRowsMalformedDate(t *testing.T) {
	dates := []string{"2024-06-10", "not-a-date", "2024-06-12", "2024-06-13", "2024-06-14", "2024-06-15", "2024-06-16"}
	vals := make([]float64, 7)
	_, err := BuildRows(dates, make([]int, 7), vals, vals)
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
	if !strings.Contains(err.Error(), "day 1") {
		t.Errorf("error %q does not identify the bad index", err)
	}
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		year    int
		month   int
		day     int
		wantErr bool
	}{
		{name: "plain date", in: "2024-06-10", year: 2024, month: 6, day: 10},
		{name: "trailing time ignored", in: "2024-06-10T15:04:05Z", year: 2024, month: 6, day: 10},
		{name: "trailing offset ignored", in: "1999-12-31T00:00+11:00", year: 1999, month: 12, day: 31},
		{name: "too short", in: "2024-06", wantErr: true},
		{name: "wrong separators", in: "2024/06/10", wantErr: true},
		{name: "non-numeric", in: "yyyy-mm-dd", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, d, err := ParseISODate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseISODate(%q): expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseISODate(%q): %v", tt.in, err)
			}
			if y != tt.year || m != tt.month || d != tt.day {
				t.Errorf("ParseISODate(%q) = (%d, %d, %d), want (%d, %d, %d)",
					tt.in, y, m, d, tt.year, tt.month, tt.day)
			}
		})
	}
}

func TestFormatTemp(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20.4, "20°"},
		{12.1, "12°"},
		{22.8, "23°"},
		{-0.2, "-0°"},
		{-5.6, "-6°"},
		{0, "0°"},
	}
	for _, tt := range tests {
		if got := FormatTemp(tt.in); got != tt.want {
			t.Errorf("FormatTemp(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
