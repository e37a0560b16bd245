package calendar

import (
	"context"
	"fmt"

	"mawid/models"
	"mawid/utils"

	"go.uber.org/zap"
)

// SetupMonth replaces a month's availability document (operator surface).
// Days must be in 1..31 and slot labels unique within a day. The stored
// record keeps the operator's day and slot order.
func (svc *DefaultCalendarService) SetupMonth(ctx context.Context, year, month int, days []models.DayAvailability) (*models.AvailabilityView, error) {
	if err := validateDays(days); err != nil {
		return nil, wrap(ErrValidation, err)
	}

	rec := &models.MonthRecord{
		ID:   models.MonthKey(year, month),
		Days: days,
	}
	if err := svc.AvailabilityRepo.ReplaceMonth(ctx, rec); err != nil {
		utils.GetLogger().Error("failed to replace month record",
			zap.String("month", rec.ID), zap.Error(err))
		return nil, wrap(ErrRepository, err)
	}

	if svc.Cache != nil {
		svc.Cache.Invalidate(ctx, year, month)
	}
	return models.DeriveAvailabilityView(year, month, rec), nil
}

// MonthBookings returns the booking ledger for a month, newest first.
func (svc *DefaultCalendarService) MonthBookings(ctx context.Context, year, month int) ([]models.Booking, error) {
	bookings, err := svc.BookingRepo.ListByMonth(ctx, year, month)
	if err != nil {
		utils.GetLogger().Error("failed to list bookings",
			zap.String("month", models.MonthKey(year, month)), zap.Error(err))
		return nil, wrap(ErrRepository, err)
	}
	return bookings, nil
}

func validateDays(days []models.DayAvailability) error {
	seenDays := make(map[int]bool, len(days))
	for _, d := range days {
		if d.Day < 1 || d.Day > 31 {
			return fmt.Errorf("day %d out of range", d.Day)
		}
		if seenDays[d.Day] {
			return fmt.Errorf("day %d listed twice", d.Day)
		}
		seenDays[d.Day] = true

		seenSlots := make(map[string]bool, len(d.Slots))
		for _, s := range d.Slots {
			if s == "" {
				return fmt.Errorf("day %d has an empty slot label", d.Day)
			}
			if seenSlots[s] {
				return fmt.Errorf("day %d lists slot %q twice", d.Day, s)
			}
			seenSlots[s] = true
		}
	}
	return nil
}
