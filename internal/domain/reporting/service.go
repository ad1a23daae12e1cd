package reporting

import (
	"context"
	"fmt"
	"time"

	"vendia/internal/core/apperror"
	appctx "vendia/internal/core/context"
)

// RecordSource supplies the raw sales history for aggregation.
type RecordSource interface {
	// ListRecords returns all sales of the company within the window,
	// in storage order, with the category of each sale resolved.
	ListRecords(ctx context.Context, companyID string, w Window) ([]Record, error)
}

// Clock abstracts "now" so reports are reproducible in tests.
type Clock func() time.Time

// ServiceConfig holds reporting configuration.
type ServiceConfig struct {
	// WeekStart is the locale's first day of week.
	WeekStart time.Weekday
}

// DefaultServiceConfig returns default configuration (weeks start Monday).
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{WeekStart: time.Monday}
}

// Service produces sales reports from the persisted history.
type Service struct {
	source RecordSource
	clock  Clock
	config ServiceConfig
}

// NewService creates a new reporting service.
func NewService(source RecordSource, clock Clock, config ServiceConfig) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		source: source,
		clock:  clock,
		config: config,
	}
}

// Query selects the report range: a calendar granularity anchored at
// today, or explicit custom bounds.
type Query struct {
	Kind  RangeKind
	Start time.Time // custom only
	End   time.Time // custom only
}

// Report is the full derived output for one window: scalar rollup,
// chart series, and exportable rows.
type Report struct {
	Window     Window           `json:"window"`
	Summary    Summary          `json:"summary"`
	ByDay      []DayBucket      `json:"byDay"`
	ByCategory []CategoryBucket `json:"byCategory"`
	Rows       []ExportRow      `json:"rows"`
}

// Window resolves the query into a concrete window.
func (s *Service) Window(q Query) (Window, error) {
	if !IsValidRangeKind(q.Kind) {
		return Window{}, apperror.NewValidation("invalid range kind").
			WithDetail("field", "kind").
			WithDetail("value", string(q.Kind))
	}
	if q.Kind == RangeCustom {
		return CustomWindow(q.Start, q.End), nil
	}
	return ResolveWindow(q.Kind, s.clock(), s.config.WeekStart), nil
}

// load resolves the window and fetches the caller's records in it.
func (s *Service) load(ctx context.Context, q Query) (Window, []Record, error) {
	companyID := appctx.GetCompanyID(ctx)
	if companyID == "" {
		return Window{}, nil, apperror.NewUnauthorized("no company in context")
	}

	window, err := s.Window(q)
	if err != nil {
		return Window{}, nil, err
	}

	history, err := s.source.ListRecords(ctx, companyID, window)
	if err != nil {
		return Window{}, nil, apperror.NewAggregation(fmt.Sprintf("load sales history: %v", err))
	}

	return window, FilterByWindow(history, window), nil
}

// Generate builds the report for the caller's company over the queried
// window.
func (s *Service) Generate(ctx context.Context, q Query) (*Report, error) {
	window, records, err := s.load(ctx, q)
	if err != nil {
		return nil, err
	}

	return &Report{
		Window:     window,
		Summary:    Summarize(records, s.clock()),
		ByDay:      BucketByDay(records, window),
		ByCategory: BucketByCategory(records),
		Rows:       ExportRows(records),
	}, nil
}

// Totals computes only the scalar rollup over the queried window. The
// dashboard asks for all-time figures, where the per-day series of a
// full report would span thousands of buckets for nothing.
func (s *Service) Totals(ctx context.Context, q Query) (Summary, error) {
	_, records, err := s.load(ctx, q)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(records, s.clock()), nil
}
