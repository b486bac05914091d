package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/tasks/data"
)

func makeTasks() []data.Task {
	return []data.Task{
		{ID: 1, Title: "Abcdef", Description: "letters", LastUpdated: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Groceries", Description: "Buy ABC cereal", LastUpdated: time.Date(2024, 7, 2, 23, 30, 0, 0, time.UTC)},
		{ID: 3, Title: "Dentist", Description: "Check-up", Completed: true, LastUpdated: time.Date(2024, 7, 3, 0, 15, 0, 0, time.UTC)},
	}
}

func ids(tasks []data.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestVisible_EmptySearchNoDateReturnsAllInOrder(t *testing.T) {
	tasks := makeTasks()
	assert.Equal(t, []int{1, 2, 3}, ids(Visible(tasks, "", Date{})))
}

func TestVisible_TextMatchIsCaseInsensitive(t *testing.T) {
	tasks := makeTasks()

	tests := []struct {
		query string
		want  []int
	}{
		{"ABC", []int{1, 2}},
		{"bc", []int{1, 2}},
		{"cereal", []int{2}},
		{"CHECK", []int{3}},
		{"nothing", []int{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ids(Visible(tasks, tt.query, Date{})), "query %q", tt.query)
	}
}

func TestVisible_DateFilter(t *testing.T) {
	tasks := makeTasks()

	own, err := ParseDate("2024-07-02")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids(Visible(tasks, "", own)))

	other, err := ParseDate("2024-08-01")
	require.NoError(t, err)
	assert.Empty(t, Visible(tasks, "", other))
}

func TestVisible_TextAndDateCombined(t *testing.T) {
	tasks := makeTasks()
	day, _ := ParseDate("2024-07-01")

	assert.Equal(t, []int{1}, ids(Visible(tasks, "abc", day)))
	assert.Empty(t, Visible(tasks, "cereal", day))
}

func TestVisible_DoesNotMutateInput(t *testing.T) {
	tasks := makeTasks()
	out := Visible(tasks, "", Date{})
	out[0].Title = "changed"
	assert.Equal(t, "Abcdef", tasks[0].Title)
}

func TestVisibleIn_DayDependsOnLocation(t *testing.T) {
	tasks := makeTasks()
	plusTwo := time.FixedZone("UTC+2", 2*60*60)

	// 23:30 UTC on the 2nd is already the 3rd at UTC+2.
	day, _ := ParseDate("2024-07-03")
	assert.Equal(t, []int{3}, ids(VisibleIn(tasks, "", day, time.UTC)))
	assert.Equal(t, []int{2, 3}, ids(VisibleIn(tasks, "", day, plusTwo)))
}

func TestMatches(t *testing.T) {
	task := makeTasks()[0]
	assert.True(t, Matches(task, "DEF", Date{}, time.UTC))
	assert.False(t, Matches(task, "DEF", Date{Year: 2024, Month: time.July, Day: 2}, time.UTC))
}

func TestMatchRanges(t *testing.T) {
	assert.Nil(t, MatchRanges("anything", ""))
	assert.Equal(t, [][2]int{{1, 3}}, MatchRanges("Abcdef", "BC"))
	assert.Equal(t, [][2]int{{0, 2}, {4, 6}}, MatchRanges("abXXab", "ab"))
	assert.Nil(t, MatchRanges("Abcdef", "zz"))
}
