package reports

import (
	"context"
	"time"

	"stallbook/internal/core/apperror"
	"stallbook/internal/domain/measure"
	"stallbook/internal/domain/pricing"
	"stallbook/internal/domain/sales"
)

// Timestamp layouts used on the wire. CreatedAt keeps full microsecond
// precision because it doubles as the batch identity for delete and edit;
// PostTime is the same instant cut down for display.
const (
	createdAtLayout = time.RFC3339Nano
	postTimeLayout  = "2006-01-02 15:04"
)

// LineSource yields the stored lines for one day and location.
// Both the sales service and its repository satisfy it.
type LineSource interface {
	ListByDayLocation(ctx context.Context, recordDate time.Time, location string) ([]sales.Line, error)
}

// Service builds daily settlement reports.
type Service struct {
	lines LineSource
}

// NewService creates a new report service.
func NewService(lines LineSource) *Service {
	return &Service{lines: lines}
}

// Daily builds the settlement report for one day and location. The report
// is computed from stored snapshots only; later catalog edits never change
// what a past day shows.
func (s *Service) Daily(ctx context.Context, recordDate time.Time, location string) (*DailyReport, error) {
	if recordDate.IsZero() {
		return nil, apperror.NewValidation("record date is required").
			WithDetail("field", "date")
	}
	if location == "" {
		return nil, apperror.NewValidation("location is required").
			WithDetail("field", "location")
	}

	stored, err := s.lines.ListByDayLocation(ctx, recordDate, location)
	if err != nil {
		return nil, err
	}

	report := &DailyReport{
		Date:     recordDate.Format("2006-01-02"),
		Location: location,
		Items:    make([]ReportLine, 0, len(stored)),
		Batches:  make([]BatchTotal, 0),
	}

	// Lines arrive ordered newest batch first, so one pass groups them.
	var current *BatchTotal
	for _, line := range stored {
		breakdown := pricing.Compute(pricing.LineInput{
			RetailPrice:    line.RetailPrice,
			CostPrice:      line.CostPrice,
			PurchaseUnits:  line.PurchaseUnits,
			ReturnUnits:    line.ReturnUnits,
			CommissionRate: line.CommissionRate,
		})

		item := ReportLine{
			BatchID:        line.BatchID,
			CreatedAt:      line.CreatedAt.Format(createdAtLayout),
			PostTime:       line.CreatedAt.Local().Format(postTimeLayout),
			ProductName:    line.ProductName,
			UnitType:       line.UnitType,
			RetailPrice:    line.RetailPrice.String(),
			CostPrice:      line.CostPrice.String(),
			CommissionRate: line.CommissionRate.String(),
			PurchaseParts:  measure.SplitUnits(line.UnitType, line.PurchaseUnits),
			ReturnParts:    measure.SplitUnits(line.UnitType, line.ReturnUnits),
			PurchaseUnits:  line.PurchaseUnits,
			ReturnUnits:    line.ReturnUnits,
		}
		if line.PurchaseUnits != 0 || line.ReturnUnits != 0 {
			item.Breakdown = &breakdown
		}
		report.Items = append(report.Items, item)

		if current == nil || current.BatchID != line.BatchID {
			report.Batches = append(report.Batches, BatchTotal{
				BatchID:   line.BatchID,
				CreatedAt: item.CreatedAt,
				PostTime:  item.PostTime,
			})
			current = &report.Batches[len(report.Batches)-1]
		}
		current.LineCount++
		current.Breakdown.Add(breakdown)
		report.Totals.Add(breakdown)
	}

	return report, nil
}
