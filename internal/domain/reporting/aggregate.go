package reporting

import (
	"sort"
	"time"

	"vendia/internal/core/types"
)

// UncategorizedBucket is the fallback category for records without one.
const UncategorizedBucket = "uncategorized"

// Record is one persisted sale as the aggregator sees it: a read-only
// row supplied by the sales history.
type Record struct {
	ID       string         `json:"id"`
	Number   string         `json:"number"`
	Date     time.Time      `json:"date"`
	Subtotal types.Money    `json:"subtotal"`
	Discount types.Money    `json:"discount"`
	Total    types.Money    `json:"total"`
	Status   string         `json:"status"`
	Category string         `json:"category,omitempty"`
}

// FilterByWindow returns the records whose date falls within the window,
// inclusive, preserving input order. Records with a missing date are
// excluded rather than aborting the whole aggregation.
func FilterByWindow(records []Record, w Window) []Record {
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		if w.Contains(r.Date) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Summary is the scalar rollup of a record set. Count and Sum cover the
// records passed in; ThisMonthCount and ThisMonthAmount always cover the
// calendar month of now, independent of any window the caller filtered by.
type Summary struct {
	Count           int         `json:"count"`
	Sum             types.Money `json:"sum"`
	ThisMonthCount  int         `json:"thisMonthCount"`
	ThisMonthAmount types.Money `json:"thisMonthAmount"`
}

// Summarize computes the scalar rollup of records.
func Summarize(records []Record, now time.Time) Summary {
	summary := Summary{
		Sum:             types.Zero(),
		ThisMonthAmount: types.Zero(),
	}

	for _, r := range records {
		summary.Count++
		summary.Sum = summary.Sum.Add(r.Total)

		if r.Date.Year() == now.Year() && r.Date.Month() == now.Month() {
			summary.ThisMonthCount++
			summary.ThisMonthAmount = summary.ThisMonthAmount.Add(r.Total)
		}
	}

	return summary
}

// DayBucket is one point of a day-granularity chart series.
type DayBucket struct {
	Day   time.Time   `json:"day"`
	Total types.Money `json:"total"`
}

// BucketByDay groups records by calendar day over the whole window:
// one bucket per day, in ascending order, with zero totals for days
// without sales. Records outside the window or without a date are
// ignored.
func BucketByDay(records []Record, w Window) []DayBucket {
	totals := make(map[string]types.Money)
	for _, r := range records {
		if r.Date.IsZero() || !w.Contains(r.Date) {
			continue
		}
		key := startOfDay(r.Date).Format(time.DateOnly)
		if existing, ok := totals[key]; ok {
			totals[key] = existing.Add(r.Total)
		} else {
			totals[key] = r.Total
		}
	}

	buckets := make([]DayBucket, 0, w.Days())
	start := startOfDay(w.Start)
	end := startOfDay(w.End)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		total := types.Zero()
		if t, ok := totals[d.Format(time.DateOnly)]; ok {
			total = t
		}
		buckets = append(buckets, DayBucket{Day: d, Total: total})
	}

	return buckets
}

// CategoryBucket is one slice of a proportion chart.
type CategoryBucket struct {
	Category string      `json:"category"`
	Total    types.Money `json:"total"`
}

// BucketByCategory groups records by category, summing totals. Records
// without a category fall into the "uncategorized" bucket. Buckets are
// returned in descending order by total; ties keep first-encountered
// order.
func BucketByCategory(records []Record) []CategoryBucket {
	totals := make(map[string]types.Money)
	order := make([]string, 0)

	for _, r := range records {
		category := r.Category
		if category == "" {
			category = UncategorizedBucket
		}
		if existing, ok := totals[category]; ok {
			totals[category] = existing.Add(r.Total)
		} else {
			totals[category] = r.Total
			order = append(order, category)
		}
	}

	buckets := make([]CategoryBucket, 0, len(order))
	for _, category := range order {
		buckets = append(buckets, CategoryBucket{Category: category, Total: totals[category]})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Total.GreaterThan(buckets[j].Total)
	})

	return buckets
}

// ExportRow is the fixed tuple rendered into tables, XLSX, and PDF.
type ExportRow struct {
	ID       string      `json:"id"`
	Number   string      `json:"number"`
	Date     time.Time   `json:"date"`
	Subtotal types.Money `json:"subtotal"`
	Discount types.Money `json:"discount"`
	Total    types.Money `json:"total"`
	Status   string      `json:"status"`
}

// ExportRows maps records to export rows one-to-one. Pure formatting,
// no aggregation.
func ExportRows(records []Record) []ExportRow {
	rows := make([]ExportRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, ExportRow{
			ID:       r.ID,
			Number:   r.Number,
			Date:     r.Date,
			Subtotal: r.Subtotal,
			Discount: r.Discount,
			Total:    r.Total,
			Status:   r.Status,
		})
	}
	return rows
}
