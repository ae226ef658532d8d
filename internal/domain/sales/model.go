// Package sales provides the daily sales batch: the set of lines saved
// together in one action, identified by (record date, location, created_at).
package sales

import (
	"context"
	"time"

	"stallbook/internal/core/apperror"
	"stallbook/internal/core/id"
	"stallbook/internal/core/types"
	"stallbook/internal/domain/measure"
)

// Line is one product row inside a batch. Product name and prices are
// snapshots copied at save time - lines never read the product catalog
// again, and are never mutated after creation.
type Line struct {
	// Line identification
	ID      id.ID `db:"id" json:"id"`
	BatchID id.ID `db:"batch_id" json:"batch_id"`

	// Batch identity, denormalized onto every line
	RecordDate time.Time `db:"record_date" json:"record_date"`
	Location   string    `db:"location" json:"location"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`

	// Product snapshot
	ProductName string           `db:"product_name" json:"product_name"`
	UnitType    measure.UnitType `db:"unit_type" json:"unit_type"`
	RetailPrice types.Money      `db:"retail_price" json:"retail_price"`
	CostPrice   types.Money      `db:"cost_price" json:"cost_price"`

	// Quantities in base units (tael for weight goods, items for count goods)
	PurchaseUnits int64 `db:"purchase_units" json:"purchase_units"`
	ReturnUnits   int64 `db:"return_units" json:"return_units"`

	// CommissionRate chosen by the operator for this save, e.g. 0.16
	CommissionRate types.Rate `db:"commission_rate" json:"commission_rate"`
}

// LineInput is the operator-entered form of one line, before unit conversion.
type LineInput struct {
	ProductName    string
	UnitType       measure.UnitType
	RetailPrice    types.Money
	CostPrice      types.Money
	PurchaseParts  measure.Parts
	ReturnParts    measure.Parts
	CommissionRate types.Rate
}

// Batch is the set of lines created by one save action. All lines share the
// batch id and the exact created_at timestamp; that shared timestamp is the
// wire-visible batch identity.
type Batch struct {
	ID         id.ID
	RecordDate time.Time
	Location   string
	CreatedAt  time.Time
	Lines      []Line
}

// NewBatch creates an empty batch for the given day and location, stamped
// with a fresh id and timestamp. Microsecond precision matches what the
// database stores, so the identity survives a round trip unchanged.
func NewBatch(recordDate time.Time, location string) *Batch {
	return &Batch{
		ID:         id.New(),
		RecordDate: recordDate,
		Location:   location,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
		Lines:      make([]Line, 0),
	}
}

// AddLine converts an entered line to base units and appends it.
// Conversion failures (tael out of range, negative quantities) come back as
// validation errors naming the product.
func (b *Batch) AddLine(in LineInput) error {
	purchase, err := measure.TotalUnits(in.UnitType, in.PurchaseParts)
	if err != nil {
		return lineError(err, in.ProductName, "purchase")
	}

	returned, err := measure.TotalUnits(in.UnitType, in.ReturnParts)
	if err != nil {
		return lineError(err, in.ProductName, "return")
	}

	b.Lines = append(b.Lines, Line{
		ID:             id.New(),
		BatchID:        b.ID,
		RecordDate:     b.RecordDate,
		Location:       b.Location,
		CreatedAt:      b.CreatedAt,
		ProductName:    in.ProductName,
		UnitType:       in.UnitType,
		RetailPrice:    in.RetailPrice,
		CostPrice:      in.CostPrice,
		PurchaseUnits:  purchase,
		ReturnUnits:    returned,
		CommissionRate: in.CommissionRate,
	})

	return nil
}

// Validate implements entity.Validatable. Checked before any persistence;
// a failing batch writes nothing.
func (b *Batch) Validate(ctx context.Context) error {
	if b.RecordDate.IsZero() {
		return apperror.NewValidation("record date is required").
			WithDetail("field", "date")
	}

	if b.Location == "" {
		return apperror.NewValidation("location is required").
			WithDetail("field", "location")
	}

	if len(b.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "items")
	}

	for i, line := range b.Lines {
		if line.ProductName == "" {
			return apperror.NewValidation("product name is required").
				WithDetail("line_no", i+1)
		}
		if !line.UnitType.Valid() {
			return apperror.NewValidation("unit type must be weight or count").
				WithDetail("product", line.ProductName).
				WithDetail("value", string(line.UnitType))
		}
		if line.RetailPrice.IsNegative() || line.CostPrice.IsNegative() {
			return apperror.NewValidation("prices cannot be negative").
				WithDetail("product", line.ProductName)
		}
		if line.CommissionRate.IsNegative() || line.CommissionRate.GreaterThanOrEqual(one) {
			return apperror.NewValidation("commission rate must be a fraction below 1").
				WithDetail("product", line.ProductName).
				WithDetail("commission_rate", line.CommissionRate.String())
		}
		if line.ReturnUnits > line.PurchaseUnits {
			return apperror.NewValidation("cannot return more than was shipped for " + line.ProductName).
				WithDetail("product", line.ProductName).
				WithDetail("purchase_units", line.PurchaseUnits).
				WithDetail("return_units", line.ReturnUnits)
		}
	}

	return nil
}

var one = types.MustMoney("1")

// lineError attaches the product and quantity kind to a conversion error.
func lineError(err error, productName, kind string) error {
	if appErr, ok := apperror.AsAppError(err); ok {
		return appErr.WithDetail("product", productName).WithDetail("quantity", kind)
	}
	return err
}
