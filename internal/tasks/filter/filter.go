// Package filter derives the visible subset of the task list from the search
// text and the optional calendar day. It keeps no state; callers re-run it
// whenever the list, the search text or the date changes.
package filter

import (
	"strings"
	"time"

	"tasktrack/internal/tasks/data"
)

// Visible returns the tasks matching searchText and filterDate, in their
// original order. Task days are taken in UTC.
func Visible(tasks []data.Task, searchText string, filterDate Date) []data.Task {
	return VisibleIn(tasks, searchText, filterDate, time.UTC)
}

// VisibleIn is Visible with the day of each task's LastUpdated taken in loc.
func VisibleIn(tasks []data.Task, searchText string, filterDate Date, loc *time.Location) []data.Task {
	query := strings.ToLower(searchText)
	out := make([]data.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchesText(t, query) && matchesDay(t, filterDate, loc) {
			out = append(out, t)
		}
	}
	return out
}

// Matches reports whether a single task passes both conditions.
func Matches(t data.Task, searchText string, filterDate Date, loc *time.Location) bool {
	return matchesText(t, strings.ToLower(searchText)) && matchesDay(t, filterDate, loc)
}

func matchesText(t data.Task, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(t.Description), lowerQuery)
}

func matchesDay(t data.Task, filterDate Date, loc *time.Location) bool {
	if filterDate.IsZero() {
		return true
	}
	return DayOf(t.LastUpdated, loc) == filterDate
}

// MatchRanges returns the byte ranges of s containing searchText, compared
// case-insensitively. Ranges do not overlap.
func MatchRanges(s, searchText string) [][2]int {
	if searchText == "" {
		return nil
	}
	lower := strings.ToLower(s)
	query := strings.ToLower(searchText)
	// Lower-casing can change byte lengths outside ASCII; only map back when
	// the offsets still line up.
	if len(lower) != len(s) {
		return nil
	}

	var ranges [][2]int
	offset := 0
	for {
		i := strings.Index(lower[offset:], query)
		if i < 0 {
			break
		}
		start := offset + i
		end := start + len(query)
		ranges = append(ranges, [2]int{start, end})
		offset = end
	}
	return ranges
}
