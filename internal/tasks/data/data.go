package data

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 form used for LastUpdated: UTC with
// millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Task is the unit tracked by the store.
type Task struct {
	ID          int
	Title       string
	Description string
	Completed   bool
	LastUpdated time.Time
}

func (t Task) String() string {
	status := " "
	if t.Completed {
		status = "x"
	}
	return fmt.Sprintf("#%d [%s] %s (%s)", t.ID, status, t.Title, FormatTimestamp(t.LastUpdated))
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts RFC 3339 timestamps with or without fractional seconds.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FindTask returns the index of the task with the given ID, or -1.
func FindTask(tasks []Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// ReplaceTask returns a copy of tasks with the entry matching updated.ID
// replaced. The input slice is never modified. The bool is false when no task
// matched, in which case tasks is returned as is.
func ReplaceTask(tasks []Task, updated Task) ([]Task, bool) {
	i := FindTask(tasks, updated.ID)
	if i < 0 {
		return tasks, false
	}
	out := make([]Task, len(tasks))
	copy(out, tasks)
	out[i] = updated
	return out, true
}

// MaxID returns the largest ID in tasks, or 0 for an empty list.
func MaxID(tasks []Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}

// CountCompleted returns the number of pending and completed tasks.
func CountCompleted(tasks []Task) (int, int) {
	pending := 0
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return pending, done
}
