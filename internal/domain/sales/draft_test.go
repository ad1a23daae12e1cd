package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendia/internal/core/id"
	"vendia/internal/core/types"
)

var (
	itemA = id.MustParse("018f0000-0000-7000-8000-00000000000a")
	itemB = id.MustParse("018f0000-0000-7000-8000-00000000000b")
)

func testCatalog() CatalogSnapshot {
	return CatalogSnapshot{
		itemA: {ID: itemA, Name: "Item A", Price: types.MustMoney("10.00")},
		itemB: {ID: itemB, Name: "Item B", Price: types.MustMoney("2.50")},
	}
}

func TestDraft_ComposeScenario(t *testing.T) {
	catalog := testCatalog()

	draft := NewDraft()
	draft.AddLine()
	draft.SetLineItem(0, itemA, catalog)
	draft.SetLineQuantity(0, types.MustMoney("3"))

	require.Len(t, draft.Lines, 1)
	assert.True(t, draft.Lines[0].UnitPrice.Equal(types.MustMoney("10.00")))
	assert.True(t, draft.Lines[0].Subtotal().Equal(types.MustMoney("30.00")))
	assert.True(t, draft.Subtotal().Equal(types.MustMoney("30.00")))

	draft.SetDiscount(types.MustMoney("5.00"))
	assert.True(t, draft.Total().Equal(types.MustMoney("25.00")))
}

func TestDraft_AddLineDefaults(t *testing.T) {
	draft := NewDraft()
	draft.AddLine()

	require.Len(t, draft.Lines, 1)
	line := draft.Lines[0]
	assert.Nil(t, line.ItemRef)
	assert.True(t, line.Quantity.Equal(types.One()))
	assert.True(t, line.UnitPrice.IsZero())
	assert.True(t, line.Subtotal().IsZero())
	assert.True(t, draft.Subtotal().IsZero())
}

func TestDraft_SubtotalConsistentAfterAnySequence(t *testing.T) {
	catalog := testCatalog()
	draft := NewDraft()

	draft.AddLine()
	draft.AddLine()
	draft.AddLine()
	draft.SetLineItem(0, itemA, catalog)
	draft.SetLineItem(1, itemB, catalog)
	draft.SetLineQuantity(0, types.MustMoney("2"))
	draft.SetLineQuantity(1, types.MustMoney("4"))
	draft.SetLineUnitPrice(1, types.MustMoney("3.00"))
	draft.RemoveLine(2)

	expected := types.Zero()
	for _, line := range draft.Lines {
		assert.True(t, line.Subtotal().Equal(line.Quantity.Mul(line.UnitPrice)))
		expected = expected.Add(line.Subtotal())
	}
	assert.True(t, draft.Subtotal().Equal(expected))
	// 2*10.00 + 4*3.00
	assert.True(t, draft.Subtotal().Equal(types.MustMoney("32.00")))
}

func TestDraft_UnresolvedItemLeavesPriceUntouched(t *testing.T) {
	catalog := testCatalog()
	unknown := id.MustParse("018f0000-0000-7000-8000-0000000000ff")

	draft := NewDraft()
	draft.AddLine()
	draft.SetLineUnitPrice(0, types.MustMoney("7.77"))
	draft.SetLineItem(0, unknown, catalog)

	require.NotNil(t, draft.Lines[0].ItemRef)
	assert.Equal(t, unknown, *draft.Lines[0].ItemRef)
	assert.True(t, draft.Lines[0].UnitPrice.Equal(types.MustMoney("7.77")))
}

func TestDraft_PriceOverridableAfterResolve(t *testing.T) {
	catalog := testCatalog()

	draft := NewDraft()
	draft.AddLine()
	draft.SetLineItem(0, itemA, catalog)
	draft.SetLineUnitPrice(0, types.MustMoney("8.00"))
	draft.SetLineQuantity(0, types.MustMoney("2"))

	assert.True(t, draft.Lines[0].Subtotal().Equal(types.MustMoney("16.00")))
}

func TestDraft_OutOfRangeIndexIsIgnored(t *testing.T) {
	catalog := testCatalog()

	draft := NewDraft()
	draft.AddLine()

	draft.SetLineItem(5, itemA, catalog)
	draft.SetLineQuantity(-1, types.MustMoney("99"))
	draft.SetLineUnitPrice(1, types.MustMoney("99"))
	draft.RemoveLine(3)

	require.Len(t, draft.Lines, 1)
	assert.Nil(t, draft.Lines[0].ItemRef)
	assert.True(t, draft.Lines[0].Quantity.Equal(types.One()))
	assert.True(t, draft.Lines[0].UnitPrice.IsZero())
}

func TestDraft_RemoveAllLines(t *testing.T) {
	catalog := testCatalog()

	draft := NewDraft()
	draft.AddLine()
	draft.SetLineItem(0, itemA, catalog)
	draft.RemoveLine(0)

	assert.Empty(t, draft.Lines)
	assert.True(t, draft.Subtotal().IsZero())
}

func TestDraft_TotalNotClampedAtZero(t *testing.T) {
	catalog := testCatalog()

	draft := NewDraft()
	draft.AddLine()
	draft.SetLineItem(0, itemB, catalog)
	draft.SetDiscount(types.MustMoney("100.00"))

	// 2.50 - 100.00: permissive, negative totals are the caller's call.
	assert.True(t, draft.Total().Equal(types.MustMoney("-97.50")))
}

func TestDraft_Validate(t *testing.T) {
	catalog := testCatalog()

	t.Run("empty lines rejected", func(t *testing.T) {
		draft := NewDraft()
		assert.Error(t, draft.Validate())
	})

	t.Run("one resolved positive line accepted", func(t *testing.T) {
		draft := NewDraft()
		draft.AddLine()
		draft.SetLineItem(0, itemA, catalog)
		assert.NoError(t, draft.Validate())
	})

	t.Run("line without item rejected", func(t *testing.T) {
		draft := NewDraft()
		draft.AddLine()
		assert.Error(t, draft.Validate())
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		draft := NewDraft()
		draft.AddLine()
		draft.SetLineItem(0, itemA, catalog)
		draft.SetLineQuantity(0, types.Zero())
		assert.Error(t, draft.Validate())
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		draft := NewDraft()
		draft.AddLine()
		draft.SetLineItem(0, itemA, catalog)
		draft.SetLineUnitPrice(0, types.Zero())
		assert.Error(t, draft.Validate())
	})

	t.Run("failed validation preserves the draft", func(t *testing.T) {
		draft := NewDraft()
		draft.AddLine()
		draft.SetLineQuantity(0, types.MustMoney("5"))

		require.Error(t, draft.Validate())
		require.Len(t, draft.Lines, 1)
		assert.True(t, draft.Lines[0].Quantity.Equal(types.MustMoney("5")))
	})
}

func TestDraft_ToSale(t *testing.T) {
	catalog := testCatalog()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sctx := SubmissionContext{
		UserID:    "018f0000-0000-7000-8000-000000000001",
		CompanyID: "018f0000-0000-7000-8000-000000000002",
		Now:       now,
	}

	draft := NewDraft()
	draft.Number = "000042"
	draft.AddLine()
	draft.SetLineItem(0, itemA, catalog)
	draft.SetLineQuantity(0, types.MustMoney("3"))
	draft.SetDiscount(types.MustMoney("5.00"))
	draft.SetNotes("counter sale")

	sale, err := draft.ToSale(sctx)
	require.NoError(t, err)

	assert.Equal(t, "000042", sale.Number)
	assert.Equal(t, sctx.CompanyID, sale.CompanyID)
	assert.Equal(t, sctx.UserID, sale.CreatedBy)
	assert.Equal(t, now, sale.Date)
	assert.Equal(t, "counter sale", sale.Notes)

	require.Len(t, sale.Lines, 1)
	assert.Equal(t, itemA, sale.Lines[0].ProductID)
	assert.Equal(t, "Item A", sale.Lines[0].ProductName)
	assert.Equal(t, 1, sale.Lines[0].LineNo)
	assert.True(t, sale.Lines[0].Subtotal.Equal(types.MustMoney("30.00")))

	assert.True(t, sale.Subtotal.Equal(types.MustMoney("30.00")))
	assert.True(t, sale.Total.Equal(types.MustMoney("25.00")))
}

func TestDraft_ToSaleInvalidDraftFails(t *testing.T) {
	draft := NewDraft()

	_, err := draft.ToSale(SubmissionContext{
		UserID:    "u",
		CompanyID: "c",
		Now:       time.Now(),
	})
	assert.Error(t, err)
}

func TestDraftFromSale_PreservesNumberAndIdentity(t *testing.T) {
	catalog := testCatalog()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sctx := SubmissionContext{UserID: "u1", CompanyID: "c1", Now: now}

	original := NewDraft()
	original.Number = "000007"
	original.AddLine()
	original.SetLineItem(0, itemA, catalog)
	sale, err := original.ToSale(sctx)
	require.NoError(t, err)

	draft := DraftFromSale(sale)
	assert.False(t, draft.IsNew())
	assert.Equal(t, "000007", draft.Number)
	require.Len(t, draft.Lines, 1)
	assert.Equal(t, itemA, *draft.Lines[0].ItemRef)

	// Edit and convert back: identity and number survive.
	draft.SetLineQuantity(0, types.MustMoney("2"))
	later := SubmissionContext{UserID: "u2", CompanyID: "c1", Now: now.Add(time.Hour)}
	updated, err := draft.ToSale(later)
	require.NoError(t, err)

	assert.Equal(t, sale.ID, updated.ID)
	assert.Equal(t, "000007", updated.Number)
	assert.Equal(t, sale.CreatedBy, updated.CreatedBy)
	assert.Equal(t, "u2", updated.UpdatedBy)
	assert.True(t, updated.Subtotal.Equal(types.MustMoney("20.00")))
}
