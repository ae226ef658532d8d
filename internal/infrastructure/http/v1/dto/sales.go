package dto

import (
	"time"

	"stallbook/internal/core/apperror"
	"stallbook/internal/core/types"
	"stallbook/internal/domain/measure"
	"stallbook/internal/domain/sales"
)

// dateLayout is the calendar-day format used across the sales API.
const dateLayout = "2006-01-02"

// SalesItemRequest is one entered line of a batch. Price and cost_price
// are per-base-unit snapshots taken from the product the operator picked;
// the server stores them as given and never re-reads the catalog.
type SalesItemRequest struct {
	ProductName    string        `json:"product_name" binding:"required"`
	UnitType       string        `json:"unit_type" binding:"required"`
	Price          types.Money   `json:"price"`
	CostPrice      types.Money   `json:"cost_price"`
	PurchaseParts  measure.Parts `json:"purchase_parts"`
	ReturnParts    measure.Parts `json:"return_parts"`
	CommissionRate types.Money   `json:"commission_rate"`
}

// BulkCreateRequest is the body of POST /sales/bulk.
type BulkCreateRequest struct {
	Date     string             `json:"date" binding:"required"`
	Location string             `json:"location" binding:"required"`
	Items    []SalesItemRequest `json:"items" binding:"required"`
}

// BatchKeyRequest is the body of DELETE /sales/batch: the exact identity
// of one batch.
type BatchKeyRequest struct {
	Date      string `json:"date" binding:"required"`
	Location  string `json:"location" binding:"required"`
	CreatedAt string `json:"created_at" binding:"required"`
}

// BatchReplaceRequest is the body of PUT /sales/batch: the identity of the
// batch being replaced plus its new content.
type BatchReplaceRequest struct {
	Date      string             `json:"date" binding:"required"`
	Location  string             `json:"location" binding:"required"`
	CreatedAt string             `json:"created_at" binding:"required"`
	Items     []SalesItemRequest `json:"items" binding:"required"`
}

// BatchResponse describes a stored batch: the identity a client needs to
// later delete or edit it.
type BatchResponse struct {
	BatchID   string `json:"batch_id"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	CreatedAt string `json:"created_at"`
	LineCount int    `json:"line_count"`
}

// ToBatchResponse converts a stored batch.
func ToBatchResponse(b *sales.Batch) BatchResponse {
	return BatchResponse{
		BatchID:   b.ID.String(),
		Date:      b.RecordDate.Format(dateLayout),
		Location:  b.Location,
		CreatedAt: b.CreatedAt.Format(time.RFC3339Nano),
		LineCount: len(b.Lines),
	}
}

// ParseDate parses a calendar day in YYYY-MM-DD form.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperror.NewValidation("date must be in YYYY-MM-DD form").
			WithDetail("value", value)
	}
	return d, nil
}

// ParseCreatedAt parses the precise batch timestamp as sent back by the
// report endpoint.
func ParseCreatedAt(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, apperror.NewValidation("created_at must be an RFC 3339 timestamp").
			WithDetail("value", value)
	}
	return t.UTC(), nil
}

// ToLineInputs converts entered items to domain line inputs.
func ToLineInputs(items []SalesItemRequest) []sales.LineInput {
	out := make([]sales.LineInput, 0, len(items))
	for _, item := range items {
		out = append(out, sales.LineInput{
			ProductName:    item.ProductName,
			UnitType:       measure.UnitType(item.UnitType),
			RetailPrice:    item.Price,
			CostPrice:      item.CostPrice,
			PurchaseParts:  item.PurchaseParts,
			ReturnParts:    item.ReturnParts,
			CommissionRate: item.CommissionRate,
		})
	}
	return out
}
