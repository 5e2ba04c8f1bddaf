// Package streak holds the pure date arithmetic behind habit metrics.
// Every function takes the completion dates and (where needed) a reference
// day explicitly, so callers own the clock.
package streak

import (
	"math"
	"sort"
	"time"
)

// Normalize strips the time component, leaving midnight of the same
// calendar day in the date's location. All comparisons in this package go
// through it: two completions on the same day are the same day no matter
// when they were written.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Normalize(a).Equal(Normalize(b))
}

// Current counts consecutive completed days ending at today or, if today is
// not yet completed, at yesterday. A single missed day doesn't break an
// active streak until it stretches to two.
func Current(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	normalized := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		normalized = append(normalized, Normalize(d))
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].After(normalized[j])
	})

	day := Normalize(today)
	yesterday := day.AddDate(0, 0, -1)
	var anchor time.Time
	switch {
	case containsDay(normalized, day):
		anchor = day
	case containsDay(normalized, yesterday):
		anchor = yesterday
	default:
		return 0
	}

	streak := 0
	for _, d := range normalized {
		if d.Equal(anchor) {
			streak++
			anchor = anchor.AddDate(0, 0, -1)
		} else if d.Before(anchor) {
			// Passed the expected day without a match, streak ends here.
			break
		}
	}
	return streak
}

// Best walks the history oldest-first and returns the longest run of
// consecutive calendar days. A single completion yields 1, an empty
// history 0.
func Best(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	normalized := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		normalized = append(normalized, Normalize(d))
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].Before(normalized[j])
	})

	best := 1
	current := 1
	for i := 1; i < len(normalized); i++ {
		diff := daysBetween(normalized[i-1], normalized[i])
		if diff == 1 {
			current++
			if current > best {
				best = current
			}
		} else if diff > 1 {
			current = 1
		}
	}
	return best
}

// WeeklyCompletion returns the percentage (0-100, rounded to nearest) of the
// seven days [weekStart, weekStart+6] with a completion.
func WeeklyCompletion(dates []time.Time, weekStart time.Time) int {
	start := Normalize(weekStart)
	end := start.AddDate(0, 0, 6)
	count := 0
	for _, d := range dates {
		day := Normalize(d)
		if !day.Before(start) && !day.After(end) {
			count++
		}
	}
	return int(math.Round(float64(count) / 7 * 100))
}

// WeekStart returns the Monday of the week containing day.
func WeekStart(day time.Time) time.Time {
	d := Normalize(day)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		// Sunday belongs to the week that started six days earlier.
		offset = 6
	}
	return d.AddDate(0, 0, -offset)
}

// MonthBounds returns the first day of day's month and the number of days
// in that month.
func MonthBounds(day time.Time) (time.Time, int) {
	d := Normalize(day)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	days := first.AddDate(0, 1, -1).Day()
	return first, days
}

func containsDay(dates []time.Time, day time.Time) bool {
	for _, d := range dates {
		if d.Equal(day) {
			return true
		}
	}
	return false
}

func daysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}
