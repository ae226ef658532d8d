package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stallbook/internal/core/apperror"
	"stallbook/internal/core/id"
	"stallbook/internal/core/types"
	"stallbook/internal/domain/measure"
	"stallbook/internal/domain/sales"
)

type stubLines struct {
	lines []sales.Line
	err   error
}

func (s *stubLines) ListByDayLocation(context.Context, time.Time, string) ([]sales.Line, error) {
	return s.lines, s.err
}

func reportDate() time.Time {
	return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
}

func storedLine(batchID id.ID, createdAt time.Time, name string, purchase, returned int64) sales.Line {
	return sales.Line{
		ID:             id.New(),
		BatchID:        batchID,
		RecordDate:     reportDate(),
		Location:       "East Gate",
		CreatedAt:      createdAt,
		ProductName:    name,
		UnitType:       measure.UnitWeight,
		RetailPrice:    types.MustMoney("100"),
		CostPrice:      types.MustMoney("60"),
		PurchaseUnits:  purchase,
		ReturnUnits:    returned,
		CommissionRate: types.MustMoney("0.16"),
	}
}

func TestDailyReport(t *testing.T) {
	ctx := context.Background()

	newer := id.New()
	older := id.New()
	newerAt := time.Date(2026, 3, 14, 14, 30, 0, 123456000, time.UTC)
	olderAt := time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC)

	svc := NewService(&stubLines{lines: []sales.Line{
		storedLine(newer, newerAt, "Dried Shrimp", 10, 2),
		storedLine(newer, newerAt, "Salted Fish", 0, 0),
		storedLine(older, olderAt, "Dried Squid", 5, 1),
	}})

	report, err := svc.Daily(ctx, reportDate(), "East Gate")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-14", report.Date)
	assert.Equal(t, "East Gate", report.Location)
	require.Len(t, report.Items, 3)

	t.Run("per line math and part splits", func(t *testing.T) {
		shrimp := report.Items[0]
		require.NotNil(t, shrimp.Breakdown)
		assert.Equal(t, int64(1000), shrimp.Breakdown.ShippedValue)
		assert.Equal(t, int64(200), shrimp.Breakdown.ReturnedValue)
		assert.Equal(t, int64(800), shrimp.Breakdown.NetSales)
		assert.Equal(t, int64(128), shrimp.Breakdown.Commission)
		assert.Equal(t, int64(672), shrimp.Breakdown.NetRevenue)
		assert.Equal(t, measure.Parts{Jin: 0, Tael: 10}, shrimp.PurchaseParts)
	})

	t.Run("zero activity line carries no breakdown", func(t *testing.T) {
		assert.Nil(t, report.Items[1].Breakdown)
	})

	t.Run("created_at keeps full precision", func(t *testing.T) {
		parsed, err := time.Parse(time.RFC3339Nano, report.Items[0].CreatedAt)
		require.NoError(t, err)
		assert.True(t, parsed.Equal(newerAt))
	})

	t.Run("one subtotal per batch", func(t *testing.T) {
		require.Len(t, report.Batches, 2)
		assert.Equal(t, newer, report.Batches[0].BatchID)
		assert.Equal(t, 2, report.Batches[0].LineCount)
		assert.Equal(t, int64(800), report.Batches[0].NetSales)
		assert.Equal(t, older, report.Batches[1].BatchID)
		assert.Equal(t, 1, report.Batches[1].LineCount)
	})

	t.Run("totals sum the batches", func(t *testing.T) {
		// Squid: 5*100=500 shipped, 100 returned, 400 net, 64 commission.
		assert.Equal(t, int64(1200), report.Totals.NetSales)
		assert.Equal(t, int64(192), report.Totals.Commission)
		assert.Equal(t, int64(1008), report.Totals.NetRevenue)
	})
}

func TestDailyReportEmptyDay(t *testing.T) {
	svc := NewService(&stubLines{})

	report, err := svc.Daily(context.Background(), reportDate(), "East Gate")
	require.NoError(t, err)

	assert.Empty(t, report.Items)
	assert.Empty(t, report.Batches)
	assert.True(t, report.Totals.IsZero())
}

func TestDailyReportValidation(t *testing.T) {
	svc := NewService(&stubLines{})

	_, err := svc.Daily(context.Background(), time.Time{}, "East Gate")
	assert.Equal(t, 400, apperror.GetHTTPStatus(err))

	_, err = svc.Daily(context.Background(), reportDate(), "")
	assert.Equal(t, 400, apperror.GetHTTPStatus(err))
}
