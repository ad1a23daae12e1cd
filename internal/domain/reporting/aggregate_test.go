package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendia/internal/core/types"
)

func record(day time.Time, total string, category string) Record {
	return Record{
		ID:       day.Format(time.DateOnly) + "/" + total,
		Date:     day,
		Subtotal: types.MustMoney(total),
		Discount: types.Zero(),
		Total:    types.MustMoney(total),
		Status:   "completed",
		Category: category,
	}
}

func TestFilterByWindow(t *testing.T) {
	w := CustomWindow(date(2025, 6, 1), date(2025, 6, 7))

	records := []Record{
		record(date(2025, 6, 3), "10", ""),
		record(date(2025, 5, 31), "20", ""),
		record(date(2025, 6, 7), "30", ""),
		record(date(2025, 6, 8), "40", ""),
		record(date(2025, 6, 1), "50", ""),
	}

	filtered := FilterByWindow(records, w)

	require.Len(t, filtered, 3)
	// Input order preserved, never re-sorted.
	assert.Equal(t, records[0].ID, filtered[0].ID)
	assert.Equal(t, records[2].ID, filtered[1].ID)
	assert.Equal(t, records[4].ID, filtered[2].ID)
}

func TestFilterByWindow_ExcludesMissingDates(t *testing.T) {
	w := CustomWindow(date(2025, 6, 1), date(2025, 6, 30))

	records := []Record{
		record(date(2025, 6, 3), "10", ""),
		{ID: "broken", Total: types.MustMoney("99")},
	}

	filtered := FilterByWindow(records, w)
	require.Len(t, filtered, 1)
	assert.Equal(t, records[0].ID, filtered[0].ID)
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	records := []Record{
		record(date(2025, 6, 3), "10.50", ""),
		record(date(2025, 6, 10), "20.00", ""),
		record(date(2025, 5, 20), "100.00", ""),
	}

	summary := Summarize(records, now)

	assert.Equal(t, 3, summary.Count)
	assert.True(t, summary.Sum.Equal(types.MustMoney("130.50")))
	// This-month figures track the current date, not the filter window.
	assert.Equal(t, 2, summary.ThisMonthCount)
	assert.True(t, summary.ThisMonthAmount.Equal(types.MustMoney("30.50")))
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, time.Now())

	assert.Equal(t, 0, summary.Count)
	assert.True(t, summary.Sum.IsZero())
	assert.Equal(t, 0, summary.ThisMonthCount)
	assert.True(t, summary.ThisMonthAmount.IsZero())
}

func TestBucketByDay_WeekScenario(t *testing.T) {
	// One calendar week, 2 records on day 3, none elsewhere.
	w := CustomWindow(date(2025, 6, 9), date(2025, 6, 15))

	records := []Record{
		record(date(2025, 6, 11), "12.00", ""),
		record(date(2025, 6, 11), "8.00", ""),
	}

	buckets := BucketByDay(records, w)

	require.Len(t, buckets, 7)
	for i, b := range buckets {
		assert.Equal(t, date(2025, 6, 9+i), b.Day)
		if i == 2 {
			assert.True(t, b.Total.Equal(types.MustMoney("20.00")))
		} else {
			assert.True(t, b.Total.IsZero(), "day %d should be empty", i)
		}
	}
}

func TestBucketByDay_CoversWholeWindowWithNoRecords(t *testing.T) {
	w := CustomWindow(date(2025, 2, 1), date(2025, 2, 28))

	buckets := BucketByDay(nil, w)

	require.Len(t, buckets, 28)
	for _, b := range buckets {
		assert.True(t, b.Total.IsZero())
	}
}

func TestBucketByCategory(t *testing.T) {
	records := []Record{
		record(date(2025, 6, 1), "10", "drinks"),
		record(date(2025, 6, 2), "50", "snacks"),
		record(date(2025, 6, 3), "15", "drinks"),
		record(date(2025, 6, 4), "5", ""),
	}

	buckets := BucketByCategory(records)

	require.Len(t, buckets, 3)
	assert.Equal(t, "snacks", buckets[0].Category)
	assert.True(t, buckets[0].Total.Equal(types.MustMoney("50")))
	assert.Equal(t, "drinks", buckets[1].Category)
	assert.True(t, buckets[1].Total.Equal(types.MustMoney("25")))
	assert.Equal(t, UncategorizedBucket, buckets[2].Category)
	assert.True(t, buckets[2].Total.Equal(types.MustMoney("5")))
}

func TestBucketByCategory_TiesKeepFirstEncounteredOrder(t *testing.T) {
	records := []Record{
		record(date(2025, 6, 1), "10", "beta"),
		record(date(2025, 6, 2), "10", "alpha"),
	}

	buckets := BucketByCategory(records)

	require.Len(t, buckets, 2)
	assert.Equal(t, "beta", buckets[0].Category)
	assert.Equal(t, "alpha", buckets[1].Category)
}

func TestBucketByCategory_TotalsMatchSummarizeSum(t *testing.T) {
	records := []Record{
		record(date(2025, 6, 1), "10.25", "a"),
		record(date(2025, 6, 2), "0.75", "b"),
		record(date(2025, 6, 3), "14.00", ""),
		record(date(2025, 6, 4), "3.50", "a"),
	}

	sum := types.Zero()
	for _, b := range BucketByCategory(records) {
		sum = sum.Add(b.Total)
	}

	assert.True(t, sum.Equal(Summarize(records, time.Now()).Sum))
}

func TestExportRows(t *testing.T) {
	records := []Record{
		{
			ID:       "s1",
			Number:   "000001",
			Date:     date(2025, 6, 1),
			Subtotal: types.MustMoney("30.00"),
			Discount: types.MustMoney("5.00"),
			Total:    types.MustMoney("25.00"),
			Status:   "completed",
			Category: "drinks",
		},
	}

	rows := ExportRows(records)

	require.Len(t, rows, 1)
	assert.Equal(t, "s1", rows[0].ID)
	assert.Equal(t, "000001", rows[0].Number)
	assert.Equal(t, date(2025, 6, 1), rows[0].Date)
	assert.True(t, rows[0].Subtotal.Equal(types.MustMoney("30.00")))
	assert.True(t, rows[0].Discount.Equal(types.MustMoney("5.00")))
	assert.True(t, rows[0].Total.Equal(types.MustMoney("25.00")))
	assert.Equal(t, "completed", rows[0].Status)
}
