package calendar

import (
	"context"

	availabilityRepo "mawid/database/repository/availability"
	bookingRepo "mawid/database/repository/booking"
	"mawid/models"
)

// Service defines the interface for the booking calendar: the availability
// view on one side and the reservation transaction on the other, plus the
// operator surface that configures months and reads the ledger.
type Service interface {
	MonthAvailability(ctx context.Context, year, month int) (*models.AvailabilityView, error)
	Reserve(ctx context.Context, input models.ReserveInput) (*models.Booking, *models.AvailabilityView, error)
	SetupMonth(ctx context.Context, year, month int, days []models.DayAvailability) (*models.AvailabilityView, error)
	MonthBookings(ctx context.Context, year, month int) ([]models.Booking, error)
}

// DefaultCalendarService implements Service.
type DefaultCalendarService struct {
	AvailabilityRepo availabilityRepo.Repository
	BookingRepo      bookingRepo.Repository
	Cache            ViewCache
}
