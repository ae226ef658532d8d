// Package reports assembles the daily settlement view: every line recorded
// for one day and location, with per-line revenue math, per-batch subtotals
// and a grand total.
package reports

import (
	"stallbook/internal/core/id"
	"stallbook/internal/domain/measure"
	"stallbook/internal/domain/pricing"
)

// ReportLine is one sales line prepared for display: stored base units are
// split back into entry parts, and the revenue breakdown is attached.
//
// Breakdown is nil when the line had no activity (nothing shipped and
// nothing returned); renderers show a placeholder for such lines instead
// of a row of zeros.
type ReportLine struct {
	BatchID   id.ID  `json:"batch_id"`
	CreatedAt string `json:"created_at"`
	PostTime  string `json:"post_time"`

	ProductName    string           `json:"product_name"`
	UnitType       measure.UnitType `json:"unit_type"`
	RetailPrice    string           `json:"retail_price"`
	CostPrice      string           `json:"cost_price"`
	CommissionRate string           `json:"commission_rate"`

	PurchaseParts measure.Parts `json:"purchase_parts"`
	ReturnParts   measure.Parts `json:"return_parts"`
	PurchaseUnits int64         `json:"purchase_units"`
	ReturnUnits   int64         `json:"return_units"`

	Breakdown *pricing.Breakdown `json:"breakdown,omitempty"`
}

// BatchTotal is the subtotal of one save action. CreatedAt is the exact
// identity clients pass back to delete or edit the batch; PostTime is the
// same instant formatted for humans.
type BatchTotal struct {
	BatchID   id.ID  `json:"batch_id"`
	CreatedAt string `json:"created_at"`
	PostTime  string `json:"post_time"`
	LineCount int    `json:"line_count"`

	pricing.Breakdown
}

// DailyReport is the full settlement for one day and location.
type DailyReport struct {
	Date     string `json:"date"`
	Location string `json:"location"`

	Items   []ReportLine      `json:"items"`
	Batches []BatchTotal      `json:"batches"`
	Totals  pricing.Breakdown `json:"totals"`
}
