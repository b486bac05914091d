package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
	assert.Equal(t, "", empty.String())

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
}

func TestDayOf(t *testing.T) {
	ts := time.Date(2024, 7, 1, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, Date{2024, time.July, 1}, DayOf(ts, time.UTC))
	assert.Equal(t, Date{2024, time.July, 1}, DayOf(ts, nil))

	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, Date{2024, time.July, 2}, DayOf(ts, tokyo))
}

func TestDate_AddDays(t *testing.T) {
	d := Date{2024, time.February, 28}
	assert.Equal(t, Date{2024, time.February, 29}, d.AddDays(1))
	assert.Equal(t, Date{2024, time.March, 1}, d.AddDays(2))
	assert.Equal(t, Date{2024, time.February, 27}, d.AddDays(-1))
}
