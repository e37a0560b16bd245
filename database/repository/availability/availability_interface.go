package availabilityRepo

import (
	"context"

	"mawid/models"
)

// Repository is the month-availability document store. A month with no
// stored record is reported as (nil, nil): absence means "nothing configured
// yet" and is not an error.
type Repository interface {
	GetMonth(ctx context.Context, year, month int) (*models.MonthRecord, error)
	ReplaceMonth(ctx context.Context, rec *models.MonthRecord) error
}
