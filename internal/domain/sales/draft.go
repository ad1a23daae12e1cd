package sales

import (
	"time"

	"vendia/internal/core/apperror"
	"vendia/internal/core/id"
	"vendia/internal/core/types"
)

// CatalogEntry is the slice of product data the composer needs when a
// line picks an item.
type CatalogEntry struct {
	ID    id.ID
	Name  string
	Price types.Money
}

// Catalog resolves item references to catalog entries. Implementations
// are expected to be in-memory snapshots; Lookup never blocks.
type Catalog interface {
	Lookup(ref id.ID) (CatalogEntry, bool)
}

// CatalogSnapshot is a map-backed Catalog.
type CatalogSnapshot map[id.ID]CatalogEntry

// Lookup implements Catalog.
func (s CatalogSnapshot) Lookup(ref id.ID) (CatalogEntry, bool) {
	entry, ok := s[ref]
	return entry, ok
}

// LineItem is one editable row of a draft sale. Its subtotal is never
// stored: it is derived from quantity and unit price on every read, so
// it cannot drift from its inputs.
type LineItem struct {
	// ItemRef references the product catalog; nil until the row picks one.
	ItemRef *id.ID

	// ItemName is a display snapshot taken when ItemRef resolves.
	ItemName string

	Quantity  types.Quantity
	UnitPrice types.Money
}

// Subtotal returns quantity times unit price.
func (l LineItem) Subtotal() types.Money {
	return l.Quantity.Mul(l.UnitPrice)
}

// Draft is a sale under construction. It is a plain in-memory value
// with single-writer semantics: one user edits one draft at a time,
// and every operation completes synchronously.
//
// Discarding a draft requires no cleanup.
type Draft struct {
	// CustomerRef is optional; nil means a walk-in sale.
	CustomerRef *id.ID

	// Number is the document number. Empty for a new draft until the
	// service allocates one; preserved as-is when editing an existing sale.
	Number string

	Notes    string
	Discount types.Money
	Lines    []LineItem

	// base holds the persisted sale when the draft was opened for
	// editing; nil for a brand-new draft.
	base *Sale
}

// NewDraft creates an empty draft.
func NewDraft() *Draft {
	return &Draft{
		Discount: types.Zero(),
		Lines:    make([]LineItem, 0),
	}
}

// DraftFromSale opens an existing sale for editing. The stored document
// number is preserved and never reallocated.
func DraftFromSale(sale *Sale) *Draft {
	draft := &Draft{
		CustomerRef: sale.CustomerID,
		Number:      sale.Number,
		Notes:       sale.Notes,
		Discount:    sale.Discount,
		Lines:       make([]LineItem, 0, len(sale.Lines)),
		base:        sale,
	}

	for _, line := range sale.Lines {
		ref := line.ProductID
		draft.Lines = append(draft.Lines, LineItem{
			ItemRef:   &ref,
			ItemName:  line.ProductName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	return draft
}

// IsNew reports whether the draft has no persisted counterpart.
func (d *Draft) IsNew() bool {
	return d.base == nil
}

// AddLine appends an empty placeholder row: no item reference,
// quantity 1, price 0. Totals are unaffected until the row is populated.
func (d *Draft) AddLine() {
	d.Lines = append(d.Lines, LineItem{
		Quantity:  types.One(),
		UnitPrice: types.Zero(),
	})
}

func (d *Draft) lineInRange(index int) bool {
	return index >= 0 && index < len(d.Lines)
}

// SetLineItem points the row at a catalog entry. When the reference
// resolves, the row adopts the catalog's current price and name; when it
// does not, the reference is stored but the price is left untouched.
// The price remains user-overridable afterwards via SetLineUnitPrice.
//
// Out-of-range indices are ignored; callers only address rows they created.
func (d *Draft) SetLineItem(index int, ref id.ID, catalog Catalog) {
	if !d.lineInRange(index) {
		return
	}

	line := &d.Lines[index]
	line.ItemRef = &ref

	if entry, ok := catalog.Lookup(ref); ok {
		line.ItemName = entry.Name
		line.UnitPrice = entry.Price
	}
}

// SetLineQuantity updates the quantity of the row at index.
// Out-of-range indices are ignored.
func (d *Draft) SetLineQuantity(index int, quantity types.Quantity) {
	if !d.lineInRange(index) {
		return
	}
	d.Lines[index].Quantity = quantity
}

// SetLineUnitPrice overrides the unit price of the row at index.
// Out-of-range indices are ignored.
func (d *Draft) SetLineUnitPrice(index int, price types.Money) {
	if !d.lineInRange(index) {
		return
	}
	d.Lines[index].UnitPrice = price
}

// RemoveLine deletes the row at index by position. Removing every row
// is allowed and yields a draft with empty lines.
// Out-of-range indices are ignored.
func (d *Draft) RemoveLine(index int) {
	if !d.lineInRange(index) {
		return
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
}

// SetCustomer sets or clears the customer reference.
func (d *Draft) SetCustomer(ref *id.ID) {
	d.CustomerRef = ref
}

// SetDiscount sets the document-level discount. The discount applies
// once to the aggregate subtotal, not per line.
func (d *Draft) SetDiscount(discount types.Money) {
	d.Discount = discount
}

// SetNotes sets the free-text notes.
func (d *Draft) SetNotes(notes string) {
	d.Notes = notes
}

// Subtotal returns the sum of all line subtotals.
func (d *Draft) Subtotal() types.Money {
	sum := types.Zero()
	for _, line := range d.Lines {
		sum = sum.Add(line.Subtotal())
	}
	return sum
}

// Total returns subtotal minus discount. The result is not clamped at
// zero and no discount-versus-subtotal check is applied; whether a
// negative total is acceptable is the caller's business decision.
func (d *Draft) Total() types.Money {
	return d.Subtotal().Sub(d.Discount)
}

// Validate checks the draft is submission-ready: at least one line,
// every line with a resolved item reference, positive quantity, and
// positive unit price. Nothing is auto-corrected; on failure the draft
// stays editable exactly as it was.
func (d *Draft) Validate() error {
	if len(d.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range d.Lines {
		if line.ItemRef == nil || id.IsNil(*line.ItemRef) {
			return apperror.NewValidation("line has no item selected").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if !line.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if !line.UnitPrice.IsPositive() {
			return apperror.NewValidation("unit price must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// SubmissionContext carries the ambient values stamped onto a sale at
// submission time. They are explicit parameters so the composer stays a
// pure function of its inputs.
type SubmissionContext struct {
	UserID    string
	CompanyID string
	Now       time.Time
}

// ToSale converts a validated draft into a Sale ready for storage.
// For a draft opened from an existing sale, identity, document number,
// and audit fields of the original are preserved; only the edited
// content changes.
func (d *Draft) ToSale(sctx SubmissionContext) (*Sale, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var sale *Sale
	if d.base != nil {
		copied := *d.base
		sale = &copied
		sale.UpdatedBy = sctx.UserID
		sale.UpdatedAt = sctx.Now
	} else {
		sale = NewSale(sctx.CompanyID)
		sale.Date = sctx.Now
		sale.CreatedAt = sctx.Now
		sale.UpdatedAt = sctx.Now
		sale.CreatedBy = sctx.UserID
		sale.UpdatedBy = sctx.UserID
		sale.Number = d.Number
	}

	sale.CustomerID = d.CustomerRef
	sale.Notes = d.Notes
	sale.Discount = d.Discount

	sale.Lines = make([]SaleLine, 0, len(d.Lines))
	for i, line := range d.Lines {
		sale.Lines = append(sale.Lines, SaleLine{
			LineID:      id.New(),
			LineNo:      i + 1,
			ProductID:   *line.ItemRef,
			ProductName: line.ItemName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal(),
		})
	}

	sale.RecalculateTotals()

	return sale, nil
}
