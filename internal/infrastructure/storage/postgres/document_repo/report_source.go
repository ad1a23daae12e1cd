package document_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"vendia/internal/core/types"
	"vendia/internal/domain/reporting"
	"vendia/internal/infrastructure/storage/postgres"
)

// ReportSource implements reporting.RecordSource over the sales tables.
// The category of a sale is taken from the product on its first line.
type ReportSource struct {
	txm *postgres.TxManager
}

var _ reporting.RecordSource = (*ReportSource)(nil)

// NewReportSource creates a sales record source for reporting.
func NewReportSource(txm *postgres.TxManager) *ReportSource {
	return &ReportSource{txm: txm}
}

type recordRow struct {
	ID       string      `db:"id"`
	Number   string      `db:"number"`
	Date     time.Time   `db:"date"`
	Subtotal types.Money `db:"subtotal"`
	Discount types.Money `db:"discount"`
	Total    types.Money `db:"total"`
	Status   string      `db:"status"`
	Category *string     `db:"category"`
}

// ListRecords returns the company's sales within the window, oldest first.
func (s *ReportSource) ListRecords(ctx context.Context, companyID string, w reporting.Window) ([]reporting.Record, error) {
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(
			"s.id", "s.number", "s.date",
			"s.subtotal", "s.discount", "s.total", "s.status",
			"cat.name AS category",
		).
		From("doc_sales s").
		LeftJoin("doc_sale_lines l ON l.document_id = s.id AND l.line_no = 1").
		LeftJoin("products p ON p.id = l.product_id").
		LeftJoin("categories cat ON cat.id = p.category_id").
		Where(squirrel.Eq{"s.company_id": companyID}).
		Where(squirrel.Eq{"s.deletion_mark": false}).
		Where(squirrel.GtOrEq{"s.date": w.Start}).
		Where(squirrel.LtOrEq{"s.date": w.End}).
		OrderBy("s.date", "s.number")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, s.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list sale records: %w", err)
	}

	records := make([]reporting.Record, 0, len(rows))
	for _, row := range rows {
		rec := reporting.Record{
			ID:       row.ID,
			Number:   row.Number,
			Date:     row.Date,
			Subtotal: row.Subtotal,
			Discount: row.Discount,
			Total:    row.Total,
			Status:   row.Status,
		}
		if row.Category != nil {
			rec.Category = *row.Category
		}
		records = append(records, rec)
	}

	return records, nil
}
