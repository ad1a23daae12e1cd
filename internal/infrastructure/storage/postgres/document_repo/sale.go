package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"vendia/internal/core/id"
	"vendia/internal/domain"
	"vendia/internal/domain/sales"
	"vendia/internal/infrastructure/storage/postgres"
)

// SaleRepo implements sales.Repository.
type SaleRepo struct {
	*BaseDocumentRepo[*sales.Sale]
}

var _ sales.Repository = (*SaleRepo)(nil)

const saleLinesTable = "doc_sale_lines"

// NewSaleRepo creates a new sale repository.
func NewSaleRepo(txm *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			"doc_sales",
			postgres.ExtractDBColumns[sales.Sale](),
			func() *sales.Sale { return &sales.Sale{} },
		),
	}
}

// GetLines retrieves sale lines ordered by line number.
func (r *SaleRepo) GetLines(ctx context.Context, saleID id.ID) ([]sales.SaleLine, error) {
	q := r.Builder().
		Select("line_id", "line_no", "product_id", "product_name", "quantity", "unit_price", "subtotal").
		From(saleLinesTable).
		Where(squirrel.Eq{"document_id": saleID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []sales.SaleLine
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get sale lines: %w", err)
	}

	return lines, nil
}

// SaveLines replaces all lines of a sale.
func (r *SaleRepo) SaveLines(ctx context.Context, saleID id.ID, lines []sales.SaleLine) error {
	querier := r.Querier(ctx)

	delQ := r.Builder().
		Delete(saleLinesTable).
		Where(squirrel.Eq{"document_id": saleID})

	sql, args, err := delQ.ToSql()
	if err != nil {
		return fmt.Errorf("build delete lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete sale lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	insQ := r.Builder().
		Insert(saleLinesTable).
		Columns("line_id", "document_id", "line_no", "product_id", "product_name", "quantity", "unit_price", "subtotal")

	for _, line := range lines {
		insQ = insQ.Values(
			line.LineID,
			saleID,
			line.LineNo,
			line.ProductID,
			line.ProductName,
			line.Quantity,
			line.UnitPrice,
			line.Subtotal,
		)
	}

	sql, args, err = insQ.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert sale lines: %w", err)
	}

	return nil
}

// List retrieves sales matching the filter.
func (r *SaleRepo) List(ctx context.Context, filter sales.ListFilter) (domain.ListResult[*sales.Sale], error) {
	var conds []squirrel.Sqlizer

	if filter.CompanyID != "" {
		conds = append(conds, squirrel.Eq{"company_id": filter.CompanyID})
	}
	if filter.CustomerID != nil {
		conds = append(conds, squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Status != nil {
		conds = append(conds, squirrel.Eq{"status": *filter.Status})
	}
	if filter.DateFrom != nil {
		conds = append(conds, squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		conds = append(conds, squirrel.LtOrEq{"date": *filter.DateTo})
	}

	return r.ListWhere(ctx, filter.ListFilter, conds...)
}

// ListNumbers returns every document number issued for the company,
// including cancelled and soft-deleted sales, so numbering never reuses
// a value.
func (r *SaleRepo) ListNumbers(ctx context.Context, companyID string) ([]string, error) {
	q := r.Builder().
		Select("number").
		From("doc_sales").
		Where(squirrel.Eq{"company_id": companyID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var numbers []string
	if err := pgxscan.Select(ctx, r.Querier(ctx), &numbers, sql, args...); err != nil {
		return nil, fmt.Errorf("list sale numbers: %w", err)
	}

	return numbers, nil
}
