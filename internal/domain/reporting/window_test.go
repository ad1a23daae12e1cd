package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveWindow_Day(t *testing.T) {
	today := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	w := ResolveWindow(RangeDay, today, time.Monday)

	assert.Equal(t, date(2025, 6, 15), w.Start)
	assert.Equal(t, 1, w.Days())
	assert.True(t, w.Contains(today))
	assert.False(t, w.Contains(date(2025, 6, 16)))
	assert.True(t, w.Contains(time.Date(2025, 6, 15, 23, 59, 59, 999999999, time.UTC)))
}

func TestResolveWindow_Week(t *testing.T) {
	// 2025-06-15 is a Sunday.
	today := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	w := ResolveWindow(RangeWeek, today, time.Monday)

	assert.Equal(t, date(2025, 6, 9), w.Start) // preceding Monday
	assert.Equal(t, 7, w.Days())
	assert.True(t, w.Contains(today))

	// A week that starts on Sunday anchors at today itself.
	w = ResolveWindow(RangeWeek, today, time.Sunday)
	assert.Equal(t, date(2025, 6, 15), w.Start)
	assert.Equal(t, 7, w.Days())
}

func TestResolveWindow_Month(t *testing.T) {
	today := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)

	w := ResolveWindow(RangeMonth, today, time.Monday)

	assert.Equal(t, date(2025, 2, 1), w.Start)
	assert.Equal(t, 28, w.Days())
	assert.True(t, w.Contains(time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(date(2025, 3, 1)))
}

func TestResolveWindow_Year(t *testing.T) {
	today := time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)

	w := ResolveWindow(RangeYear, today, time.Monday)

	assert.Equal(t, date(2024, 1, 1), w.Start)
	assert.Equal(t, 366, w.Days()) // 2024 is a leap year
}

func TestCustomWindow(t *testing.T) {
	w := CustomWindow(
		time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC),
	)

	assert.Equal(t, date(2025, 3, 10), w.Start)
	assert.Equal(t, 3, w.Days())
	assert.True(t, w.Contains(time.Date(2025, 3, 12, 23, 59, 0, 0, time.UTC)))
}

func TestCustomWindow_InvertedBoundsMatchNothing(t *testing.T) {
	// Start after end is not rejected; the window is simply empty.
	w := CustomWindow(date(2025, 3, 12), date(2025, 3, 10))

	assert.Equal(t, 0, w.Days())
	assert.False(t, w.Contains(date(2025, 3, 11)))
}
