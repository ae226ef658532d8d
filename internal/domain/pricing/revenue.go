// Package pricing computes commission-based revenue for sales lines.
//
// All math runs on decimal values so commission fractions like 0.16 are
// applied exactly; only the final outputs are rounded to whole currency
// units for display.
package pricing

import (
	"github.com/shopspring/decimal"

	"stallbook/internal/core/types"
)

// LineInput carries the snapshot values a single sales line was stored with.
type LineInput struct {
	// RetailPrice is the snapshot retail price per base unit.
	RetailPrice types.Money

	// CostPrice is the snapshot cost price per base unit.
	CostPrice types.Money

	// PurchaseUnits is the shipped quantity in base units.
	PurchaseUnits int64

	// ReturnUnits is the returned (unsold) quantity in base units.
	ReturnUnits int64

	// CommissionRate is the vendor's cut as an exact fraction, e.g. 0.16.
	CommissionRate types.Rate
}

// Breakdown holds the computed money values of one line (or a sum of lines),
// rounded to whole currency units.
type Breakdown struct {
	ShippedValue  int64 `json:"shipped_value"`
	ReturnedValue int64 `json:"returned_value"`
	NetSales      int64 `json:"net_sales"`
	Commission    int64 `json:"commission"`
	NetRevenue    int64 `json:"net_revenue"`
	PurchaseCost  int64 `json:"purchase_cost"`
	Margin        int64 `json:"margin"`
}

// Compute derives the full breakdown for one line:
//
//	shipped_value  = purchase_units * retail_price
//	returned_value = return_units   * retail_price
//	net_sales      = shipped_value - returned_value
//	commission     = net_sales * commission_rate
//	net_revenue    = net_sales - commission
//	purchase_cost  = purchase_units * cost_price
//	margin         = net_sales - purchase_cost
//
// The commission rate is applied before any rounding. Each output is rounded
// once, at the end, half away from zero.
func Compute(in LineInput) Breakdown {
	purchase := decimal.NewFromInt(in.PurchaseUnits)
	returned := decimal.NewFromInt(in.ReturnUnits)

	shipped := purchase.Mul(in.RetailPrice)
	returnedValue := returned.Mul(in.RetailPrice)
	netSales := shipped.Sub(returnedValue)
	commission := netSales.Mul(in.CommissionRate)
	netRevenue := netSales.Sub(commission)
	purchaseCost := purchase.Mul(in.CostPrice)
	margin := netSales.Sub(purchaseCost)

	return Breakdown{
		ShippedValue:  types.RoundCurrency(shipped),
		ReturnedValue: types.RoundCurrency(returnedValue),
		NetSales:      types.RoundCurrency(netSales),
		Commission:    types.RoundCurrency(commission),
		NetRevenue:    types.RoundCurrency(netRevenue),
		PurchaseCost:  types.RoundCurrency(purchaseCost),
		Margin:        types.RoundCurrency(margin),
	}
}

// Add accumulates another breakdown into b. Aggregate totals are the
// pointwise sum of already-rounded line values, so a batch total always
// matches the sum of the lines shown next to it.
func (b *Breakdown) Add(other Breakdown) {
	b.ShippedValue += other.ShippedValue
	b.ReturnedValue += other.ReturnedValue
	b.NetSales += other.NetSales
	b.Commission += other.Commission
	b.NetRevenue += other.NetRevenue
	b.PurchaseCost += other.PurchaseCost
	b.Margin += other.Margin
}

// IsZero reports whether every computed value is zero. Lines with no
// activity render as a placeholder instead of a row of zeros.
func (b Breakdown) IsZero() bool {
	return b == Breakdown{}
}
