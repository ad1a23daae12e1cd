package dto

import (
	"vendia/internal/core/id"
	"vendia/internal/core/types"
	"vendia/internal/domain/catalogs/product"
)

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	CatalogResponse
	Description   *string        `json:"description,omitempty"`
	CategoryID    *string        `json:"categoryId,omitempty"`
	PurchasePrice types.Money    `json:"purchasePrice"`
	SalePrice     types.Money    `json:"salePrice"`
	Stock         types.Quantity `json:"stock"`
	MinStock      types.Quantity `json:"minStock"`
	Active        bool           `json:"active"`
	LowStock      bool           `json:"lowStock"`
}

// FromProduct creates ProductResponse from domain entity.
func FromProduct(p *product.Product) ProductResponse {
	resp := ProductResponse{
		CatalogResponse: FromCatalog(p.Catalog),
		Description:     p.Description,
		PurchasePrice:   p.PurchasePrice,
		SalePrice:       p.SalePrice,
		Stock:           p.Stock,
		MinStock:        p.MinStock,
		Active:          p.Active,
		LowStock:        p.IsLowStock(),
	}
	if p.CategoryID != nil {
		s := p.CategoryID.String()
		resp.CategoryID = &s
	}
	return resp
}

// CreateProductRequest for creating products.
type CreateProductRequest struct {
	Code          string          `json:"code"`
	Name          string          `json:"name" binding:"required"`
	Description   *string         `json:"description"`
	CategoryID    *string         `json:"categoryId"`
	PurchasePrice *types.Money    `json:"purchasePrice"`
	SalePrice     *types.Money    `json:"salePrice"`
	Stock         *types.Quantity `json:"stock"`
	MinStock      *types.Quantity `json:"minStock"`
}

// ToProduct converts the request to a domain entity.
func (r *CreateProductRequest) ToProduct() (*product.Product, error) {
	p := product.NewProduct(r.Code, r.Name)
	p.Description = r.Description

	if r.CategoryID != nil && *r.CategoryID != "" {
		categoryID, err := id.Parse(*r.CategoryID)
		if err != nil {
			return nil, err
		}
		p.CategoryID = &categoryID
	}
	if r.PurchasePrice != nil {
		p.PurchasePrice = *r.PurchasePrice
	}
	if r.SalePrice != nil {
		p.SalePrice = *r.SalePrice
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.MinStock != nil {
		p.MinStock = *r.MinStock
	}

	return p, nil
}

// UpdateProductRequest for updating products.
type UpdateProductRequest struct {
	Name          *string         `json:"name"`
	Description   *string         `json:"description"`
	CategoryID    *string         `json:"categoryId"`
	PurchasePrice *types.Money    `json:"purchasePrice"`
	SalePrice     *types.Money    `json:"salePrice"`
	MinStock      *types.Quantity `json:"minStock"`
	Active        *bool           `json:"active"`
	Version       int             `json:"version" binding:"required,min=1"`
}

// Apply merges the request onto an existing product.
func (r *UpdateProductRequest) Apply(p *product.Product) (*product.Product, error) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	if r.CategoryID != nil {
		if *r.CategoryID == "" {
			p.CategoryID = nil
		} else {
			categoryID, err := id.Parse(*r.CategoryID)
			if err != nil {
				return nil, err
			}
			p.CategoryID = &categoryID
		}
	}
	if r.PurchasePrice != nil {
		p.PurchasePrice = *r.PurchasePrice
	}
	if r.SalePrice != nil {
		p.SalePrice = *r.SalePrice
	}
	if r.MinStock != nil {
		p.MinStock = *r.MinStock
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
	p.Version = r.Version

	return p, nil
}
