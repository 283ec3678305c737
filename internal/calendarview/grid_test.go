package calendarview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGridMonthAlwaysWholeWeeks(t *testing.T) {
	refs := []time.Time{
		date(2024, time.January, 15),
		date(2024, time.February, 10),
		date(2024, time.June, 1),
		date(2024, time.September, 30),
		date(2023, time.December, 25),
	}
	for _, ref := range refs {
		start, end := ResolveRange(ref, ViewMonth)
		cells := BuildGrid(start, end, ref, ref)

		require.NotEmpty(t, cells, "ref %s", ref)
		assert.Zero(t, len(cells)%7, "grid for %s is not whole weeks", ref)
		assert.Equal(t, time.Sunday, cells[0].Date.Weekday(), "ref %s", ref)
		assert.Equal(t, time.Saturday, cells[len(cells)-1].Date.Weekday(), "ref %s", ref)
	}
}

func TestBuildGridPaddingFlags(t *testing.T) {
	// January 2024 runs Monday to Wednesday: one leading and three
	// trailing padding days.
	start, end := ResolveRange(date(2024, time.January, 15), ViewMonth)
	cells := BuildGrid(start, end, date(2024, time.January, 15), date(2024, time.January, 20))

	require.Len(t, cells, 35)
	assert.Equal(t, date(2023, time.December, 31), cells[0].Date)
	assert.False(t, cells[0].InCurrentPeriod)
	assert.True(t, cells[1].InCurrentPeriod)
	assert.Equal(t, date(2024, time.February, 3), cells[34].Date)
	assert.False(t, cells[34].InCurrentPeriod)

	inPeriod := 0
	for _, cell := range cells {
		if cell.InCurrentPeriod {
			inPeriod++
		}
	}
	assert.Equal(t, 31, inPeriod)
}

func TestBuildGridTodayAndSelected(t *testing.T) {
	start, end := ResolveRange(date(2024, time.January, 15), ViewMonth)
	today := time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)
	cells := BuildGrid(start, end, today, date(2024, time.January, 20))

	var todayCount, selectedCount int
	for _, cell := range cells {
		if cell.IsToday {
			todayCount++
			assert.Equal(t, date(2024, time.January, 15), cell.Date)
		}
		if cell.IsSelected {
			selectedCount++
			assert.Equal(t, date(2024, time.January, 20), cell.Date)
		}
	}
	assert.Equal(t, 1, todayCount)
	assert.Equal(t, 1, selectedCount)
}

func TestBuildGridWeekHasNoPadding(t *testing.T) {
	// 2024-01-17 is a Wednesday; its week view covers Jan 14 to Jan 20.
	start, end := ResolveRange(date(2024, time.January, 17), ViewWeek)
	assert.Equal(t, date(2024, time.January, 14), start)
	assert.Equal(t, date(2024, time.January, 20), end)

	cells := BuildGrid(start, end, start, start)
	require.Len(t, cells, 7)
	for _, cell := range cells {
		assert.True(t, cell.InCurrentPeriod)
	}
}

func TestBuildGridDayPadsToFullWeek(t *testing.T) {
	start, end := ResolveRange(date(2024, time.January, 17), ViewDay)
	cells := BuildGrid(start, end, start, start)

	require.Len(t, cells, 7)
	inPeriod := 0
	for _, cell := range cells {
		if cell.InCurrentPeriod {
			inPeriod++
			assert.Equal(t, date(2024, time.January, 17), cell.Date)
		}
	}
	assert.Equal(t, 1, inPeriod)
}
