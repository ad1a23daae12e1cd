package catalog_repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendia/internal/core/apperror"
	appctx "vendia/internal/core/context"
	"vendia/internal/core/id"
	"vendia/internal/core/types"
	"vendia/internal/domain"
	"vendia/internal/domain/catalogs/product"
	"vendia/internal/infrastructure/storage/postgres"
)

func scopedProductRepo() *ProductRepo {
	return NewProductRepo(postgres.NewTxManagerFromRawPool(nil))
}

func companyCtx(companyID string) context.Context {
	return appctx.WithUser(context.Background(), &appctx.UserContext{
		UserID:    "u-1",
		CompanyID: companyID,
	})
}

func TestCompanyScope_ResolvesFromContext(t *testing.T) {
	repo := scopedProductRepo()

	company, err := repo.company(companyCtx("c-42"))
	require.NoError(t, err)
	assert.Equal(t, "c-42", company)
}

func TestCompanyScope_SharedTableNeedsNoCompany(t *testing.T) {
	repo := NewCompanyRepo(postgres.NewTxManagerFromRawPool(nil))

	company, err := repo.company(context.Background())
	require.NoError(t, err)
	assert.Empty(t, company)
}

// Every scoped operation refuses to run without a company on the
// context: a query that cannot be filtered by tenant must not reach
// the database at all.
func TestCompanyScope_AnonymousContextRejected(t *testing.T) {
	repo := scopedProductRepo()
	ctx := context.Background()
	productID := id.MustParse("018f0000-0000-7000-8000-000000000001")

	assertUnauthorized := func(t *testing.T, err error) {
		t.Helper()
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
	}

	t.Run("get by id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, productID)
		assertUnauthorized(t, err)
	})

	t.Run("get by code", func(t *testing.T) {
		_, err := repo.GetByCode(ctx, "000001")
		assertUnauthorized(t, err)
	})

	t.Run("list", func(t *testing.T) {
		_, err := repo.List(ctx, domain.DefaultListFilter())
		assertUnauthorized(t, err)
	})

	t.Run("list codes", func(t *testing.T) {
		_, err := repo.ListCodes(ctx)
		assertUnauthorized(t, err)
	})

	t.Run("exists", func(t *testing.T) {
		_, err := repo.Exists(ctx, productID)
		assertUnauthorized(t, err)
	})

	t.Run("exists by code", func(t *testing.T) {
		_, err := repo.ExistsByCode(ctx, "000001")
		assertUnauthorized(t, err)
	})

	t.Run("create", func(t *testing.T) {
		assertUnauthorized(t, repo.Create(ctx, product.NewProduct("000001", "Espresso")))
	})

	t.Run("update", func(t *testing.T) {
		assertUnauthorized(t, repo.Update(ctx, product.NewProduct("000001", "Espresso")))
	})

	t.Run("delete", func(t *testing.T) {
		assertUnauthorized(t, repo.Delete(ctx, productID))
	})

	t.Run("deletion mark", func(t *testing.T) {
		assertUnauthorized(t, repo.SetDeletionMark(ctx, productID, true))
	})

	t.Run("adjust stock", func(t *testing.T) {
		assertUnauthorized(t, repo.AdjustStock(ctx, productID, types.One()))
	})
}
