// Package entity defines the shared shapes of stored records: a base
// with id and optimistic-lock version, catalogs for reference data,
// and documents for dated business transactions.
package entity

import (
	"context"
	"time"

	"vendia/internal/core/id"
)

// Validatable is implemented by entities that can check their own
// invariants without touching storage.
type Validatable interface {
	Validate(ctx context.Context) error
}

// BaseEntity carries the columns present on every table.
type BaseEntity struct {
	ID id.ID `db:"id" json:"id"`

	// DeletionMark soft-deletes the row; listings skip marked rows
	// unless asked otherwise.
	DeletionMark bool `db:"deletion_mark" json:"deletionMark"`

	// Version backs optimistic locking. The repository increments it
	// on every successful update.
	Version int `db:"version" json:"version"`
}

// NewBaseEntity assigns a fresh id and the initial version.
func NewBaseEntity() BaseEntity {
	return BaseEntity{ID: id.New(), Version: 1}
}

// BaseCatalog is the base for reference data. Catalogs carry no audit
// timestamps.
type BaseCatalog struct {
	BaseEntity
}

// NewBaseCatalog assigns a fresh id.
func NewBaseCatalog() BaseCatalog {
	return BaseCatalog{BaseEntity: NewBaseEntity()}
}

// BaseDocument adds audit timestamps and authorship on top of
// BaseEntity.
type BaseDocument struct {
	BaseEntity

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	CreatedBy string    `db:"created_by" json:"createdBy,omitempty"`
	UpdatedBy string    `db:"updated_by" json:"updatedBy,omitempty"`
}

// NewBaseDocument assigns a fresh id and stamps both timestamps.
func NewBaseDocument() BaseDocument {
	now := time.Now().UTC()
	return BaseDocument{
		BaseEntity: NewBaseEntity(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
