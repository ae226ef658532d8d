package sales

import (
	"context"
	"time"
)

// Repository defines the interface for sales line persistence.
// Implementations must join any transaction already open in ctx, so the
// service can make delete+insert atomic.
type Repository interface {
	// InsertLines inserts all lines in one statement.
	InsertLines(ctx context.Context, lines []Line) error

	// ListByDayLocation retrieves all lines for a day and location,
	// newest batch first.
	ListByDayLocation(ctx context.Context, recordDate time.Time, location string) ([]Line, error)

	// DeleteBatch deletes all lines matching the exact
	// (record date, location, created_at) triple and reports how many
	// rows went away.
	DeleteBatch(ctx context.Context, recordDate time.Time, location string, createdAt time.Time) (int64, error)
}
