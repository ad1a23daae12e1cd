package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendia/internal/domain/reporting"
)

func TestSalesReportQuery_DefaultsToMonth(t *testing.T) {
	q, err := (&SalesReportQuery{}).ToQuery()
	require.NoError(t, err)
	assert.Equal(t, reporting.RangeMonth, q.Kind)
}

func TestSalesReportQuery_Custom(t *testing.T) {
	req := &SalesReportQuery{Kind: "custom", Start: "2025-03-01", End: "2025-03-31"}

	q, err := req.ToQuery()
	require.NoError(t, err)
	assert.Equal(t, reporting.RangeCustom, q.Kind)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), q.Start)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), q.End)
}

func TestSalesReportQuery_CustomRequiresBothBounds(t *testing.T) {
	_, err := (&SalesReportQuery{Kind: "custom", Start: "2025-03-01"}).ToQuery()
	assert.Error(t, err)
}

func TestSalesReportQuery_UnknownKind(t *testing.T) {
	_, err := (&SalesReportQuery{Kind: "quarter"}).ToQuery()
	assert.Error(t, err)
}

func TestSalesReportQuery_BadDate(t *testing.T) {
	_, err := (&SalesReportQuery{Kind: "custom", Start: "03/01/2025", End: "2025-03-31"}).ToQuery()
	assert.Error(t, err)
}
