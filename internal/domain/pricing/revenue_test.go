package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stallbook/internal/core/types"
)

func TestCompute_WeightExample(t *testing.T) {
	// price=100, purchase=10, return=2, rate=0.16
	got := Compute(LineInput{
		RetailPrice:    types.MustMoney("100"),
		CostPrice:      types.MustMoney("80"),
		PurchaseUnits:  10,
		ReturnUnits:    2,
		CommissionRate: types.MustMoney("0.16"),
	})

	assert.Equal(t, int64(1000), got.ShippedValue)
	assert.Equal(t, int64(200), got.ReturnedValue)
	assert.Equal(t, int64(800), got.NetSales)
	assert.Equal(t, int64(128), got.Commission)
	assert.Equal(t, int64(672), got.NetRevenue)
	assert.Equal(t, int64(800), got.PurchaseCost)
	assert.Equal(t, int64(0), got.Margin)
}

func TestCompute_CountExample(t *testing.T) {
	// price=20, purchase=5, return=1, rate=0.1
	got := Compute(LineInput{
		RetailPrice:    types.MustMoney("20"),
		CostPrice:      types.MustMoney("12"),
		PurchaseUnits:  5,
		ReturnUnits:    1,
		CommissionRate: types.MustMoney("0.1"),
	})

	assert.Equal(t, int64(100), got.ShippedValue)
	assert.Equal(t, int64(20), got.ReturnedValue)
	assert.Equal(t, int64(80), got.NetSales)
	assert.Equal(t, int64(8), got.Commission)
	assert.Equal(t, int64(72), got.NetRevenue)
	assert.Equal(t, int64(60), got.PurchaseCost)
	assert.Equal(t, int64(20), got.Margin)
}

func TestCompute_RateAppliedBeforeRounding(t *testing.T) {
	// net sales 55, rate 0.15 -> commission 8.25 rounds to 8,
	// net revenue 46.75 rounds to 47 (computed from the exact values).
	got := Compute(LineInput{
		RetailPrice:    types.MustMoney("5"),
		PurchaseUnits:  11,
		ReturnUnits:    0,
		CommissionRate: types.MustMoney("0.15"),
	})

	assert.Equal(t, int64(55), got.NetSales)
	assert.Equal(t, int64(8), got.Commission)
	assert.Equal(t, int64(47), got.NetRevenue)
}

func TestCompute_ZeroLine(t *testing.T) {
	got := Compute(LineInput{
		RetailPrice:    types.MustMoney("100"),
		CostPrice:      types.MustMoney("80"),
		CommissionRate: types.MustMoney("0.16"),
	})
	assert.True(t, got.IsZero())
}

func TestBreakdown_Add(t *testing.T) {
	var total Breakdown
	total.Add(Breakdown{ShippedValue: 100, NetSales: 80, Commission: 8, NetRevenue: 72})
	total.Add(Breakdown{ShippedValue: 50, NetSales: 50, Commission: 5, NetRevenue: 45})

	assert.Equal(t, int64(150), total.ShippedValue)
	assert.Equal(t, int64(130), total.NetSales)
	assert.Equal(t, int64(13), total.Commission)
	assert.Equal(t, int64(117), total.NetRevenue)
}
