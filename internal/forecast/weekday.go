package forecast

// weekdayOffsets is the per-month adjustment table for Zeller's congruence,
// indexed by month-1.
var weekdayOffsets = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// weekdayAbbrevs is indexed by day-of-week, Sunday=0.
var weekdayAbbrevs = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DayOfWeek returns the day of the week (Sunday=0) for a proleptic Gregorian
// date, using Zeller's congruence. January and February count as months 13
// and 14 of the previous year. The caller is responsible for passing a valid
// month/day; invalid inputs give an undefined result but never panic.
func DayOfWeek(year, month, day int) int {
	if month < 3 {
		year--
	}
	idx := floorMod(month-1, 12)
	sum := year + floorDiv(year, 4) - floorDiv(year, 100) + floorDiv(year, 400) + weekdayOffsets[idx] + day
	return floorMod(sum, 7)
}

// WeekdayAbbrev returns the 3-letter English abbreviation for a day-of-week
// index. Out-of-range indexes are folded back into [0,6].
func WeekdayAbbrev(dow int) string {
	return weekdayAbbrevs[floorMod(dow, 7)]
}

// floorDiv divides rounding toward negative infinity. Go's / truncates toward
// zero, which is wrong for the negative intermediate values Zeller's
// congruence can produce.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns a mod b with the sign of b, so the result is always in
// [0,b) for positive b.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
