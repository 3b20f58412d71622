package core

import "time"

// SameDay compares calendar dates in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func InMonth(t time.Time, month time.Month, year int) bool {
	return t.Month() == month && t.Year() == year
}

// WholeYearsBetween returns the number of full years from start to end,
// or 0 when end precedes start.
func WholeYearsBetween(start, end time.Time) int {
	if start.IsZero() || !end.After(start) {
		return 0
	}
	end = end.In(start.Location())
	years := end.Year() - start.Year()
	if end.Month() < start.Month() || (end.Month() == start.Month() && end.Day() < start.Day()) {
		years--
	}
	return max(years, 0)
}
