// Package reporting turns a raw sales history into time-bucketed and
// category-bucketed summaries. Every operation is a pure function of
// its inputs; the caller owns the current range selection and re-invokes
// on change.
package reporting

import (
	"time"
)

// RangeKind selects the calendar granularity of a report window.
type RangeKind string

const (
	RangeDay    RangeKind = "day"
	RangeWeek   RangeKind = "week"
	RangeMonth  RangeKind = "month"
	RangeYear   RangeKind = "year"
	RangeCustom RangeKind = "custom"
)

// IsValidRangeKind reports whether k is a known range kind.
func IsValidRangeKind(k RangeKind) bool {
	switch k {
	case RangeDay, RangeWeek, RangeMonth, RangeYear, RangeCustom:
		return true
	}
	return false
}

// Window is an inclusive date range: Start is the first instant and End
// the last instant of the selected period in the local calendar.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// startOfDay returns midnight of t's calendar day in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last nanosecond of t's calendar day.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// ResolveWindow returns the calendar-aligned window of the given kind
// anchored at today. weekStart is the locale's first day of week.
// RangeCustom is not resolvable here; use CustomWindow.
func ResolveWindow(kind RangeKind, today time.Time, weekStart time.Weekday) Window {
	switch kind {
	case RangeWeek:
		offset := (int(today.Weekday()) - int(weekStart) + 7) % 7
		start := startOfDay(today).AddDate(0, 0, -offset)
		return Window{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}
	case RangeMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return Window{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
	case RangeYear:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return Window{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}
	default: // RangeDay
		return Window{Start: startOfDay(today), End: endOfDay(today)}
	}
}

// CustomWindow builds a window from caller-supplied bounds, normalized
// to whole calendar days. Start after end is deliberately not rejected:
// such a window simply matches nothing.
func CustomWindow(start, end time.Time) Window {
	return Window{Start: startOfDay(start), End: endOfDay(end)}
}

// Contains reports whether t falls within the window, inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Days returns the number of calendar days the window spans, inclusive.
// Zero when start is after end.
func (w Window) Days() int {
	start := startOfDay(w.Start)
	end := startOfDay(w.End)
	if end.Before(start) {
		return 0
	}
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}
