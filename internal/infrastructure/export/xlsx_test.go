package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"vendia/internal/core/types"
	"vendia/internal/domain/reporting"
)

func TestSalesXLSX(t *testing.T) {
	report := &reporting.Report{
		Rows: []reporting.ExportRow{
			{
				ID:       "a1",
				Number:   "000001",
				Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				Subtotal: types.MustMoney("30.00"),
				Discount: types.MustMoney("5.00"),
				Total:    types.MustMoney("25.00"),
				Status:   "completed",
			},
			{
				ID:       "a2",
				Number:   "000002",
				Date:     time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
				Subtotal: types.MustMoney("12.50"),
				Discount: types.Zero(),
				Total:    types.MustMoney("12.50"),
				Status:   "completed",
			},
		},
		Summary: reporting.Summary{
			Count: 2,
			Sum:   types.MustMoney("37.50"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, SalesXLSX(&buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(salesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 2 data rows + totals

	assert.Equal(t, salesHeaders, rows[0][:len(salesHeaders)])
	assert.Equal(t, "000001", rows[1][0])
	assert.Equal(t, "2025-03-10", rows[1][1])
	assert.Equal(t, "25", rows[1][4])
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "37.5", rows[3][4])
}

func TestSalesXLSX_Empty(t *testing.T) {
	report := &reporting.Report{
		Summary: reporting.Summary{Sum: types.Zero()},
	}

	var buf bytes.Buffer
	require.NoError(t, SalesXLSX(&buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(salesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + totals
	assert.Equal(t, "Total", rows[1][0])
}
