package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"vendia/internal/core/id"
	"vendia/internal/core/types"
	"vendia/internal/domain"
	"vendia/internal/domain/catalogs/product"
	"vendia/internal/infrastructure/storage/postgres"
)

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// Compile-time interface check.
var _ product.Repository = (*ProductRepo)(nil)

// NewProductRepo creates a new product repository. Products belong to
// one company each, so the repository is company-scoped.
func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewCompanyCatalogRepo(
			txm,
			"products",
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}

// FindLowStock retrieves products with stock at or below minimum.
func (r *ProductRepo) FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*product.Product], error) {
	return r.ListWhere(ctx, filter,
		squirrel.Expr("stock <= min_stock"),
		squirrel.Eq{"active": true},
	)
}

// AdjustStock changes the stock level by delta (negative for sales).
func (r *ProductRepo) AdjustStock(ctx context.Context, productID id.ID, delta types.Quantity) error {
	company, err := r.company(ctx)
	if err != nil {
		return err
	}

	q := r.Builder().
		Update("products").
		Set("stock", squirrel.Expr("stock + ?", delta)).
		Where(squirrel.Eq{"id": productID, "company_id": company})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build adjust stock: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("adjust stock: product %s not found", productID)
	}

	return nil
}
