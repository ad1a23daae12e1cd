package domain

import (
	"context"
	"fmt"

	"vendia/internal/core/apperror"
	"vendia/internal/core/entity"
	"vendia/internal/core/id"
	"vendia/internal/core/tx"
)

// CatalogService implements generic catalog CRUD: validate, run the
// before-hooks, write inside a transaction, run the after-hooks.
// Concrete services embed it and hang their rules on the registry.
type CatalogService[T entity.Validatable] struct {
	repo       CatalogRepository[T]
	txManager  tx.Manager
	hooks      *HookRegistry[T]
	entityName string
}

// CatalogServiceConfig wires a catalog service. EntityName appears in
// not-found and internal errors.
type CatalogServiceConfig[T entity.Validatable] struct {
	Repo       CatalogRepository[T]
	TxManager  tx.Manager
	EntityName string
}

// NewCatalogService creates a catalog service with an empty registry.
func NewCatalogService[T entity.Validatable](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	return &CatalogService[T]{
		repo:       cfg.Repo,
		txManager:  cfg.TxManager,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
	}
}

// Hooks exposes the registry so the embedding service can register.
func (s *CatalogService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// asValidation keeps a structured error as-is and wraps anything else
// as a validation error.
func (s *CatalogService[T]) asValidation(err error) error {
	if err == nil || apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

// asLookup rewrites a raw not-found with this service's entity name
// so the API reports "product not found" rather than a table name.
func (s *CatalogService[T]) asLookup(err error, key any) error {
	switch {
	case err == nil:
		return nil
	case apperror.IsNotFound(err):
		return apperror.NewNotFound(s.entityName, key)
	case apperror.IsAppError(err):
		return err
	}
	return apperror.NewInternal(err).
		WithDetail("entity", s.entityName).
		WithDetail("id", key)
}

func (s *CatalogService[T]) write(ctx context.Context, verb string, op func(ctx context.Context) error) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := op(ctx); err != nil {
			return fmt.Errorf("%s %s: %w", verb, s.entityName, err)
		}
		return nil
	})
}

// Create validates and stores a new entity.
func (s *CatalogService[T]) Create(ctx context.Context, ent T) error {
	if err := ent.Validate(ctx); err != nil {
		return s.asValidation(err)
	}
	if err := s.hooks.Run(ctx, BeforeCreate, ent); err != nil {
		return err
	}

	if err := s.write(ctx, "create", func(ctx context.Context) error {
		return s.repo.Create(ctx, ent)
	}); err != nil {
		return err
	}

	// After-hooks run outside the transaction: the entity is already
	// stored, a failure here is reported but not rolled back.
	return s.hooks.Run(ctx, AfterCreate, ent)
}

// GetByID loads an entity by id.
func (s *CatalogService[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	ent, err := s.repo.GetByID(ctx, entityID)
	return ent, s.asLookup(err, entityID.String())
}

// GetByCode loads an entity by catalog code.
func (s *CatalogService[T]) GetByCode(ctx context.Context, code string) (T, error) {
	ent, err := s.repo.GetByCode(ctx, code)
	return ent, s.asLookup(err, code)
}

// Update validates and saves changes under optimistic locking.
func (s *CatalogService[T]) Update(ctx context.Context, ent T) error {
	if err := ent.Validate(ctx); err != nil {
		return s.asValidation(err)
	}
	if err := s.hooks.Run(ctx, BeforeUpdate, ent); err != nil {
		return err
	}

	if err := s.write(ctx, "update", func(ctx context.Context) error {
		return s.repo.Update(ctx, ent)
	}); err != nil {
		return err
	}

	return s.hooks.Run(ctx, AfterUpdate, ent)
}

// Delete soft-deletes by setting the deletion mark. The entity is
// loaded first so delete-hooks see the full record.
func (s *CatalogService[T]) Delete(ctx context.Context, entityID id.ID) error {
	ent, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		return s.asLookup(err, entityID.String())
	}
	if err := s.hooks.Run(ctx, BeforeDelete, ent); err != nil {
		return err
	}

	if err := s.write(ctx, "delete", func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, entityID, true)
	}); err != nil {
		return err
	}

	return s.hooks.Run(ctx, AfterDelete, ent)
}

// SetDeletionMark sets or clears the mark without running hooks.
func (s *CatalogService[T]) SetDeletionMark(ctx context.Context, entityID id.ID, marked bool) error {
	return s.repo.SetDeletionMark(ctx, entityID, marked)
}

// List pages entities through the repository.
func (s *CatalogService[T]) List(ctx context.Context, filter ListFilter) (ListResult[T], error) {
	return s.repo.List(ctx, filter)
}

// Exists reports whether the entity exists.
func (s *CatalogService[T]) Exists(ctx context.Context, entityID id.ID) (bool, error) {
	return s.repo.Exists(ctx, entityID)
}
