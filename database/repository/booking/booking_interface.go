package bookingRepo

import (
	"context"

	"mawid/models"
)

// Repository is the append-only booking ledger. Reserve is the only write
// path; it removes the slot from the month document and appends the booking
// record as one atomic unit, returning models.ErrSlotTaken when the slot is
// no longer present.
type Repository interface {
	Reserve(ctx context.Context, booking *models.Booking) error
	ListByMonth(ctx context.Context, year, month int) ([]models.Booking, error)
	EnsureIndexes() error
}
