package sales

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
)

type memoryRepo struct {
	sales   map[id.ID]*Sale
	lines   map[id.ID][]SaleLine
	numbers []string
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		sales: make(map[id.ID]*Sale),
		lines: make(map[id.ID][]SaleLine),
	}
}

func (r *memoryRepo) Create(ctx context.Context, sale *Sale) error {
	copied := *sale
	r.sales[sale.ID] = &copied
	r.numbers = append(r.numbers, sale.Number)
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, saleID id.ID) (*Sale, error) {
	sale, ok := r.sales[saleID]
	if !ok {
		return nil, apperror.NewNotFound("sale", saleID.String())
	}
	copied := *sale
	return &copied, nil
}

func (r *memoryRepo) GetByNumber(ctx context.Context, number string) (*Sale, error) {
	for _, sale := range r.sales {
		if sale.Number == number {
			copied := *sale
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("sale", number)
}

func (r *memoryRepo) Update(ctx context.Context, sale *Sale) error {
	if _, ok := r.sales[sale.ID]; !ok {
		return apperror.NewNotFound("sale", sale.ID.String())
	}
	copied := *sale
	r.sales[sale.ID] = &copied
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, saleID id.ID) error {
	delete(r.sales, saleID)
	return nil
}

func (r *memoryRepo) GetLines(ctx context.Context, saleID id.ID) ([]SaleLine, error) {
	return append([]SaleLine(nil), r.lines[saleID]...), nil
}

func (r *memoryRepo) SaveLines(ctx context.Context, saleID id.ID, lines []SaleLine) error {
	r.lines[saleID] = append([]SaleLine(nil), lines...)
	return nil
}

func (r *memoryRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error) {
	return domain.ListResult[*Sale]{}, nil
}

func (r *memoryRepo) ListNumbers(ctx context.Context, companyID string) ([]string, error) {
	return append([]string(nil), r.numbers...), nil
}

type memoryGateway struct {
	entries map[id.ID]CatalogEntry
	stock   map[id.ID]types.Quantity
}

func (g *memoryGateway) Lookup(ctx context.Context, productID id.ID) (CatalogEntry, error) {
	entry, ok := g.entries[productID]
	if !ok {
		return CatalogEntry{}, apperror.NewNotFound("product", productID.String())
	}
	return entry, nil
}

func (g *memoryGateway) Snapshot(ctx context.Context) (CatalogSnapshot, error) {
	return CatalogSnapshot(g.entries), nil
}

func (g *memoryGateway) AdjustStock(ctx context.Context, productID id.ID, delta types.Quantity) error {
	g.stock[productID] = g.stock[productID].Add(delta)
	return nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func serviceFixture() (*Service, *memoryRepo, *memoryGateway, context.Context) {
	repo := newMemoryRepo()
	gateway := &memoryGateway{
		entries: map[id.ID]CatalogEntry{
			itemA: {ID: itemA, Name: "Item A", Price: types.MustMoney("10.00")},
		},
		stock: map[id.ID]types.Quantity{
			itemA: types.MustMoney("100"),
		},
	}
	svc := NewService(repo, gateway, passthroughTx{})

	ctx := appctx.WithUser(context.Background(), &appctx.UserContext{
		UserID:    "u-1",
		CompanyID: "c-1",
		Role:      "seller",
	})
	return svc, repo, gateway, ctx
}

func submitQuantity(t *testing.T, svc *Service, ctx context.Context, qty string) *Sale {
	t.Helper()

	snapshot, err := svc.Catalog(ctx)
	require.NoError(t, err)

	draft := NewDraft()
	draft.AddLine()
	draft.SetLineItem(0, itemA, snapshot)
	draft.SetLineQuantity(0, types.MustMoney(qty))

	sale, err := svc.Submit(ctx, draft)
	require.NoError(t, err)
	return sale
}

func TestService_SubmitDeductsStock(t *testing.T) {
	svc, _, gateway, ctx := serviceFixture()

	sale := submitQuantity(t, svc, ctx, "5")

	assert.Equal(t, StatusCompleted, sale.Status)
	assert.True(t, gateway.stock[itemA].Equal(types.MustMoney("95")))
}

func TestService_CancelReturnsStock(t *testing.T) {
	svc, repo, gateway, ctx := serviceFixture()

	sale := submitQuantity(t, svc, ctx, "5")
	require.NoError(t, svc.Cancel(ctx, sale.ID))

	assert.True(t, gateway.stock[itemA].Equal(types.MustMoney("100")))
	assert.Equal(t, StatusCancelled, repo.sales[sale.ID].Status)
}

func TestService_ResubmitReconcilesStock(t *testing.T) {
	svc, _, gateway, ctx := serviceFixture()

	sale := submitQuantity(t, svc, ctx, "5")

	draft, err := svc.OpenForEdit(ctx, sale.ID)
	require.NoError(t, err)
	draft.SetLineQuantity(0, types.MustMoney("2"))

	updated, err := svc.Resubmit(ctx, draft)
	require.NoError(t, err)

	assert.Equal(t, sale.Number, updated.Number)
	assert.True(t, gateway.stock[itemA].Equal(types.MustMoney("98")))
}

func TestService_ResubmitRejectsCancelledSale(t *testing.T) {
	svc, repo, gateway, ctx := serviceFixture()

	sale := submitQuantity(t, svc, ctx, "5")
	require.NoError(t, svc.Cancel(ctx, sale.ID))

	draft, err := svc.OpenForEdit(ctx, sale.ID)
	require.NoError(t, err)
	draft.SetLineQuantity(0, types.MustMoney("2"))

	_, err = svc.Resubmit(ctx, draft)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeBusinessRule, appErr.Code)

	// The cancelled sale holds no stock and keeps its stored lines.
	assert.True(t, gateway.stock[itemA].Equal(types.MustMoney("100")))
	assert.Equal(t, StatusCancelled, repo.sales[sale.ID].Status)
	require.Len(t, repo.lines[sale.ID], 1)
	assert.True(t, repo.lines[sale.ID][0].Quantity.Equal(types.MustMoney("5")))
}

func TestService_DeleteRequiresCancelled(t *testing.T) {
	svc, _, _, ctx := serviceFixture()

	sale := submitQuantity(t, svc, ctx, "5")

	err := svc.Delete(ctx, sale.ID)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeBusinessRule, appErr.Code)

	require.NoError(t, svc.Cancel(ctx, sale.ID))
	require.NoError(t, svc.Delete(ctx, sale.ID))
}
