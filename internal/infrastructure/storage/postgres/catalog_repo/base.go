// Package catalog_repo persists catalog entities: reference data
// addressed by id or code, soft-deleted via a deletion mark.
package catalog_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"vendia/internal/core/apperror"
	appctx "vendia/internal/core/context"
	"vendia/internal/core/id"
	"vendia/internal/domain"
	"vendia/internal/infrastructure/storage/postgres"
)

// BaseCatalogRepo implements the CRUD surface shared by every catalog
// table. Concrete repositories embed it and contribute their own
// filters and lookups.
type BaseCatalogRepo[T any] struct {
	txm            *postgres.TxManager
	tableName      string
	selectCols     []string
	newFn          func() T
	scopeByCompany bool
}

// NewBaseCatalogRepo wires a base repository to its table. selectCols
// is the full column list, normally ExtractDBColumns of the entity.
func NewBaseCatalogRepo[T any](
	txm *postgres.TxManager,
	tableName string,
	selectCols []string,
	newFn func() T,
) *BaseCatalogRepo[T] {
	return &BaseCatalogRepo[T]{
		txm:        txm,
		tableName:  tableName,
		selectCols: selectCols,
		newFn:      newFn,
	}
}

// NewCompanyCatalogRepo wires a base repository to a table whose rows
// each belong to one company. Every read and write carries a
// company_id condition taken from the context, and Create stamps the
// caller's company onto the row.
func NewCompanyCatalogRepo[T any](
	txm *postgres.TxManager,
	tableName string,
	selectCols []string,
	newFn func() T,
) *BaseCatalogRepo[T] {
	r := NewBaseCatalogRepo(txm, tableName, selectCols, newFn)
	r.scopeByCompany = true
	return r
}

// company returns the caller's company id, or "" for shared tables.
// Scoped tables refuse to run a query on an anonymous context.
func (r *BaseCatalogRepo[T]) company(ctx context.Context) (string, error) {
	if !r.scopeByCompany {
		return "", nil
	}
	companyID := appctx.GetCompanyID(ctx)
	if companyID == "" {
		return "", apperror.NewUnauthorized("no company in context")
	}
	return companyID, nil
}

// Builder returns a squirrel builder with $-placeholders.
func (r *BaseCatalogRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Querier resolves to the transaction on the context, or the pool.
func (r *BaseCatalogRepo[T]) Querier(ctx context.Context) postgres.Querier {
	return r.txm.GetQuerier(ctx)
}

// rowValues projects the entity's db-tagged fields onto the column
// list, skipping any columns named in exclude.
func (r *BaseCatalogRepo[T]) rowValues(entity T, exclude ...string) (map[string]any, error) {
	data := postgres.StructToMap(entity)
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: entity carries no db tags", r.tableName)
	}

	skip := make(map[string]bool, len(exclude))
	for _, col := range exclude {
		skip[col] = true
	}

	values := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if skip[col] {
			continue
		}
		if v, ok := data[col]; ok {
			values[col] = v
		}
	}
	return values, nil
}

// Create inserts the entity.
func (r *BaseCatalogRepo[T]) Create(ctx context.Context, entity T) error {
	values, err := r.rowValues(entity)
	if err != nil {
		return err
	}

	company, err := r.company(ctx)
	if err != nil {
		return err
	}
	if company != "" {
		values["company_id"] = company
	}

	sql, args, err := r.Builder().Insert(r.tableName).SetMap(values).ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", r.tableName, err)
	}
	return nil
}

// Update rewrites the row guarded by the version the caller loaded.
// A zero row count means someone else saved first.
func (r *BaseCatalogRepo[T]) Update(ctx context.Context, entity T) error {
	data := postgres.StructToMap(entity)
	entityID, ok := data["id"]
	if !ok {
		return fmt.Errorf("%s: entity has no id column", r.tableName)
	}
	version, ok := data["version"].(int)
	if !ok {
		return fmt.Errorf("%s: entity has no int version column", r.tableName)
	}

	values, err := r.rowValues(entity, "id", "version", "company_id")
	if err != nil {
		return err
	}

	company, err := r.company(ctx)
	if err != nil {
		return err
	}

	q := r.Builder().
		Update(r.tableName).
		SetMap(values).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": entityID, "version": version})
	if company != "" {
		q = q.Where(squirrel.Eq{"company_id": company})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.tableName, err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewConcurrentModification(r.tableName, entityID)
	}
	return nil
}

func (r *BaseCatalogRepo[T]) baseSelect() squirrel.SelectBuilder {
	return r.Builder().Select(r.selectCols...).From(r.tableName)
}

func (r *BaseCatalogRepo[T]) getOne(ctx context.Context, q squirrel.SelectBuilder, key string) (T, error) {
	entity := r.newFn()

	company, err := r.company(ctx)
	if err != nil {
		return entity, err
	}
	if company != "" {
		q = q.Where(squirrel.Eq{"company_id": company})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return entity, fmt.Errorf("build select: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.tableName, key)
		}
		return entity, fmt.Errorf("select %s: %w", r.tableName, err)
	}
	return entity, nil
}

// GetByID loads an entity by id, deletion-marked rows included.
func (r *BaseCatalogRepo[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	q := r.baseSelect().Where(squirrel.Eq{"id": entityID}).Limit(1)
	return r.getOne(ctx, q, entityID.String())
}

// GetByCode loads a live entity by its catalog code.
func (r *BaseCatalogRepo[T]) GetByCode(ctx context.Context, code string) (T, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"code": code, "deletion_mark": false}).
		Limit(1)
	return r.getOne(ctx, q, code)
}

// GetForUpdate loads an entity under FOR UPDATE. Call inside a
// transaction; on the bare pool the lock releases immediately.
func (r *BaseCatalogRepo[T]) GetForUpdate(ctx context.Context, entityID id.ID) (T, error) {
	q := r.baseSelect().Where(squirrel.Eq{"id": entityID}).Suffix("FOR UPDATE")
	return r.getOne(ctx, q, entityID.String())
}

// FindOne runs a caller-built select expecting exactly one row.
func (r *BaseCatalogRepo[T]) FindOne(ctx context.Context, q squirrel.SelectBuilder) (T, error) {
	return r.getOne(ctx, q, "matching query")
}

// applyListFilter adds the common catalog list conditions.
func (r *BaseCatalogRepo[T]) applyListFilter(q squirrel.SelectBuilder, filter domain.ListFilter) squirrel.SelectBuilder {
	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"code": pattern},
		})
	}
	if len(filter.IDs) > 0 {
		q = q.Where(squirrel.Eq{"id": filter.IDs})
	}
	return q
}

// List pages through entities matching the common filter.
func (r *BaseCatalogRepo[T]) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error) {
	return r.ListWhere(ctx, filter)
}

// ListWhere is List with extra conditions from the concrete
// repository. TotalCount is computed before paging.
func (r *BaseCatalogRepo[T]) ListWhere(ctx context.Context, filter domain.ListFilter, conds ...squirrel.Sqlizer) (domain.ListResult[T], error) {
	result := domain.ListResult[T]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	company, err := r.company(ctx)
	if err != nil {
		return result, err
	}

	q := r.applyListFilter(r.baseSelect(), filter)
	if company != "" {
		q = q.Where(squirrel.Eq{"company_id": company})
	}
	for _, cond := range conds {
		q = q.Where(cond)
	}

	countSQL, countArgs, err := r.Builder().
		Select("COUNT(*)").
		FromSelect(q, "sub").
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build count: %w", err)
	}

	querier := r.Querier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count %s: %w", r.tableName, err)
	}

	orderBy, err := r.parseOrderBy(filter.OrderBy)
	if err != nil {
		return result, err
	}
	q = q.OrderBy(orderBy)

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build select: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list %s: %w", r.tableName, err)
	}
	return result, nil
}

// ListCodes returns every code visible to the caller, deletion-marked
// rows included, for sequential code allocation.
func (r *BaseCatalogRepo[T]) ListCodes(ctx context.Context) ([]string, error) {
	company, err := r.company(ctx)
	if err != nil {
		return nil, err
	}

	q := r.Builder().
		Select("code").
		From(r.tableName)
	if company != "" {
		q = q.Where(squirrel.Eq{"company_id": company})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var codes []string
	if err := pgxscan.Select(ctx, r.Querier(ctx), &codes, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s codes: %w", r.tableName, err)
	}
	return codes, nil
}

func (r *BaseCatalogRepo[T]) exists(ctx context.Context, q squirrel.SelectBuilder) (bool, error) {
	company, err := r.company(ctx)
	if err != nil {
		return false, err
	}
	if company != "" {
		q = q.Where(squirrel.Eq{"company_id": company})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build select: %w", err)
	}

	var one int
	err = r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", r.tableName, err)
	}
	return true, nil
}

// Exists reports whether a row with the id exists.
func (r *BaseCatalogRepo[T]) Exists(ctx context.Context, entityID id.ID) (bool, error) {
	q := r.Builder().
		Select("1").
		From(r.tableName).
		Where(squirrel.Eq{"id": entityID}).
		Limit(1)
	return r.exists(ctx, q)
}

// ExistsByCode reports whether a live row with the code exists.
func (r *BaseCatalogRepo[T]) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := r.Builder().
		Select("1").
		From(r.tableName).
		Where(squirrel.Eq{"code": code, "deletion_mark": false}).
		Limit(1)
	return r.exists(ctx, q)
}

// Delete removes the row physically. A foreign key violation comes
// back as a conflict so the API can explain it instead of erroring.
func (r *BaseCatalogRepo[T]) Delete(ctx context.Context, entityID id.ID) error {
	company, err := r.company(ctx)
	if err != nil {
		return err
	}

	q := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": entityID})
	if company != "" {
		q = q.Where(squirrel.Eq{"company_id": company})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperror.NewConflict("cannot delete: the record is referenced by other records").
				WithDetail("entity", r.tableName).
				WithDetail("id", entityID.String()).
				WithCause(err)
		}
		return fmt.Errorf("delete %s: %w", r.tableName, err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, entityID.String())
	}
	return nil
}

// SetDeletionMark sets or clears the soft-delete mark.
func (r *BaseCatalogRepo[T]) SetDeletionMark(ctx context.Context, entityID id.ID, marked bool) error {
	company, err := r.company(ctx)
	if err != nil {
		return err
	}

	q := r.Builder().
		Update(r.tableName).
		Set("deletion_mark", marked).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": entityID})
	if company != "" {
		q = q.Where(squirrel.Eq{"company_id": company})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build deletion mark update: %w", err)
	}

	tag, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("mark %s: %w", r.tableName, err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, entityID.String())
	}
	return nil
}

// parseOrderBy turns "-field" / "+field" / "field" into an ORDER BY
// clause, rejecting columns outside the select list so the filter
// cannot inject SQL. Empty input orders by name.
func (r *BaseCatalogRepo[T]) parseOrderBy(orderBy string) (string, error) {
	if strings.TrimSpace(orderBy) == "" {
		return "name ASC", nil
	}

	direction := "ASC"
	field := orderBy
	switch {
	case strings.HasPrefix(orderBy, "-"):
		direction = "DESC"
		field = orderBy[1:]
	case strings.HasPrefix(orderBy, "+"):
		field = orderBy[1:]
	}
	field = strings.TrimSpace(field)

	allowed := field == "id" || field == "code" || field == "name"
	for _, col := range r.selectCols {
		if col == field {
			allowed = true
			break
		}
	}
	if field == "" || !allowed {
		return "", apperror.NewValidation("invalid orderBy").
			WithDetail("orderBy", orderBy)
	}

	return field + " " + direction, nil
}
