package dto

import (
	"vendia/internal/domain/catalogs/category"
)

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	CatalogResponse
	Description *string `json:"description,omitempty"`
}

// FromCategory creates CategoryResponse from domain entity.
func FromCategory(c *category.Category) CategoryResponse {
	return CategoryResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Description:     c.Description,
	}
}

// CreateCategoryRequest for creating categories.
type CreateCategoryRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// ToCategory converts the request to a domain entity.
func (r *CreateCategoryRequest) ToCategory() *category.Category {
	c := category.NewCategory(r.Code, r.Name)
	c.Description = r.Description
	return c
}

// UpdateCategoryRequest for updating categories.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Version     int     `json:"version" binding:"required,min=1"`
}

// Apply merges the request onto an existing category.
func (r *UpdateCategoryRequest) Apply(c *category.Category) *category.Category {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Description != nil {
		c.Description = r.Description
	}
	c.Version = r.Version
	return c
}
