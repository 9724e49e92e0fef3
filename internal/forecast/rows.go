package forecast

import (
	"fmt"
	"strconv"
)

// Days is the number of forecast rows the dashboard renders.
const Days = 7

// Row is one line of the forecast panel.
type Row struct {
	Label string  `json:"label"`
	Icon  Icon    `json:"icon"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
}

// BuildRows turns the provider's parallel daily arrays into the 7 forecast
// rows. Row 0 is always labelled "Today"; rows 1-6 get the weekday
// abbreviation for their date. Forecast rows always use the daytime icon
// variant, even for codes that have a night variant.
//
// The upstream fetch layer guarantees 7-element arrays; shorter input is a
// contract violation and is returned as an error rather than read out of
// bounds.
func BuildRows(dates []string, codes []int, highs, lows []float64) ([]Row, error) {
	if len(dates) < Days || len(codes) < Days || len(highs) < Days || len(lows) < Days {
		return nil, fmt.Errorf("forecast: need %d days, got dates=%d codes=%d highs=%d lows=%d",
			Days, len(dates), len(codes), len(highs), len(lows))
	}

	rows := make([]Row, Days)
	for i := 0; i < Days; i++ {
		label := "Today"
		if i > 0 {
			y, m, d, err := ParseISODate(dates[i])
			if err != nil {
				return nil, fmt.Errorf("forecast: day %d: %w", i, err)
			}
			label = WeekdayAbbrev(DayOfWeek(y, m, d))
		}
		rows[i] = Row{
			Label: label,
			Icon:  ResolveIcon(codes[i], true),
			High:  highs[i],
			Low:   lows[i],
		}
	}
	return rows, nil
}

// ParseISODate extracts (year, month, day) from the YYYY-MM-DD prefix of an
// ISO-8601 string. Trailing content (time, offset) is ignored. The provider
// localizes dates before sending them, so there is no timezone handling here.
func ParseISODate(s string) (year, month, day int, err error) {
	if len(s) < 10 || s[4] != '-' || s[7] != '-' {
		return 0, 0, 0, fmt.Errorf("malformed ISO date %q", s)
	}
	year, err = strconv.Atoi(s[0:4])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("malformed ISO date %q: %w", s, err)
	}
	month, err = strconv.Atoi(s[5:7])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("malformed ISO date %q: %w", s, err)
	}
	day, err = strconv.Atoi(s[8:10])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("malformed ISO date %q: %w", s, err)
	}
	return year, month, day, nil
}

// FormatTemp renders a temperature with no decimal places and a degree
// suffix, e.g. "20°".
func FormatTemp(v float64) string {
	return fmt.Sprintf("%.0f°", v)
}
