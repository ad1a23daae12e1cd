package catalog_repo

import (
	"context"
	"fmt"

	"vendia/internal/core/id"
	"vendia/internal/core/types"
	"vendia/internal/domain"
	"vendia/internal/domain/sales"
)

// SalesGateway adapts the product repository to the narrow view the
// sales service needs.
type SalesGateway struct {
	products *ProductRepo
}

var _ sales.ProductGateway = (*SalesGateway)(nil)

// NewSalesGateway creates a product gateway for the sales service.
func NewSalesGateway(products *ProductRepo) *SalesGateway {
	return &SalesGateway{products: products}
}

// Lookup resolves a product reference to a catalog entry.
func (g *SalesGateway) Lookup(ctx context.Context, productID id.ID) (sales.CatalogEntry, error) {
	p, err := g.products.GetByID(ctx, productID)
	if err != nil {
		return sales.CatalogEntry{}, err
	}
	return sales.CatalogEntry{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.SalePrice,
	}, nil
}

// Snapshot loads the active catalog into memory for draft editing.
func (g *SalesGateway) Snapshot(ctx context.Context) (sales.CatalogSnapshot, error) {
	filter := domain.ListFilter{OrderBy: "name"}

	result, err := g.products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	snapshot := make(sales.CatalogSnapshot, len(result.Items))
	for _, p := range result.Items {
		if !p.Active {
			continue
		}
		snapshot[p.ID] = sales.CatalogEntry{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.SalePrice,
		}
	}

	return snapshot, nil
}

// AdjustStock changes stock by delta (negative for sales).
func (g *SalesGateway) AdjustStock(ctx context.Context, productID id.ID, delta types.Quantity) error {
	return g.products.AdjustStock(ctx, productID, delta)
}
