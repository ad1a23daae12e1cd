package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "vendia/internal/core/context"
	"vendia/internal/core/types"
)

type stubSource struct {
	records   []Record
	companyID string
	window    Window
	calls     int
}

func (s *stubSource) ListRecords(ctx context.Context, companyID string, w Window) ([]Record, error) {
	s.companyID = companyID
	s.window = w
	s.calls++
	return s.records, nil
}

func reportingCtx() context.Context {
	return appctx.WithUser(context.Background(), &appctx.UserContext{
		UserID:    "u-1",
		CompanyID: "c-1",
	})
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestService_Totals(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	source := &stubSource{records: []Record{
		record(date(2025, 6, 3), "10.50", "Drinks"),
		record(date(2025, 6, 10), "20.00", "Snacks"),
		record(date(2025, 5, 20), "100.00", "Drinks"),
	}}
	svc := NewService(source, fixedClock(now), DefaultServiceConfig())

	summary, err := svc.Totals(reportingCtx(), Query{
		Kind:  RangeCustom,
		Start: time.Unix(0, 0).UTC(),
		End:   now,
	})
	require.NoError(t, err)

	assert.Equal(t, "c-1", source.companyID)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 3, summary.Count)
	assert.True(t, summary.Sum.Equal(types.MustMoney("130.50")))
	assert.Equal(t, 2, summary.ThisMonthCount)
	assert.True(t, summary.ThisMonthAmount.Equal(types.MustMoney("30.50")))
}

func TestService_TotalsRequiresCompany(t *testing.T) {
	svc := NewService(&stubSource{}, nil, DefaultServiceConfig())

	_, err := svc.Totals(context.Background(), Query{Kind: RangeDay})
	assert.Error(t, err)
}

func TestService_TotalsRejectsUnknownRange(t *testing.T) {
	source := &stubSource{}
	svc := NewService(source, nil, DefaultServiceConfig())

	_, err := svc.Totals(reportingCtx(), Query{Kind: RangeKind("decade")})
	assert.Error(t, err)
	assert.Equal(t, 0, source.calls)
}

func TestService_GenerateBuildsFullReport(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	source := &stubSource{records: []Record{
		record(date(2025, 6, 3), "10.00", "Drinks"),
		record(date(2025, 6, 3), "5.00", "Snacks"),
	}}
	svc := NewService(source, fixedClock(now), DefaultServiceConfig())

	report, err := svc.Generate(reportingCtx(), Query{Kind: RangeMonth})
	require.NoError(t, err)

	assert.Equal(t, report.Window, source.window)
	assert.Equal(t, 2, report.Summary.Count)
	assert.Len(t, report.ByDay, 30)
	assert.Len(t, report.ByCategory, 2)
	assert.Len(t, report.Rows, 2)
}
