package shared

import (
	"strings"

	"tasktrack/internal/tasks/data"
	"tasktrack/internal/tasks/filter"
	"tasktrack/internal/tui/theme"
)

// StyledTitle renders a task title. Completed titles are struck through;
// otherwise the parts matching query are highlighted.
func StyledTitle(t data.Task, query string) string {
	if t.Completed {
		return theme.Done.Render(t.Title)
	}
	return Highlight(t.Title, query)
}

// Highlight marks every case-insensitive occurrence of query in s.
func Highlight(s, query string) string {
	ranges := filter.MatchRanges(s, query)
	if len(ranges) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, r := range ranges {
		b.WriteString(s[last:r[0]])
		b.WriteString(theme.Match.Render(s[r[0]:r[1]]))
		last = r[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// StatusMark renders the completion checkbox.
func StatusMark(t data.Task) string {
	if t.Completed {
		return theme.Ok.Render("[x]")
	}
	return "[ ]"
}
