package calendar

import (
	"context"
	"errors"
	"strings"
	"time"

	"mawid/models"
	"mawid/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reserve books one slot for the given contact. Contact fields are validated
// before any store access. The slot removal and the ledger append run as one
// atomic unit in the repository, so at most one reservation ever succeeds
// for a given (year, month, day, slot) tuple regardless of concurrency; a
// lost race surfaces as ErrSlotUnavailable with no partial writes. On
// success the month's cached view is invalidated and a fresh view is
// returned alongside the booking.
func (svc *DefaultCalendarService) Reserve(ctx context.Context, input models.ReserveInput) (*models.Booking, *models.AvailabilityView, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.PhoneNumber) == "" {
		return nil, nil, ErrValidation
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		Year:        input.Year,
		Month:       input.Month,
		Day:         input.Day,
		Slot:        input.Slot,
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Timestamp:   time.Now().UTC(),
	}

	if err := svc.BookingRepo.Reserve(ctx, booking); err != nil {
		if svc.Cache != nil {
			// A conflict means some other session changed the month; drop
			// the cached view so the client's re-fetch sees the truth.
			svc.Cache.Invalidate(ctx, input.Year, input.Month)
		}
		if errors.Is(err, models.ErrSlotTaken) {
			logger.Info("reservation lost to a concurrent booking",
				zap.String("month", models.MonthKey(input.Year, input.Month)),
				zap.Int("day", input.Day), zap.String("slot", input.Slot))
			return nil, nil, wrap(ErrSlotUnavailable, err)
		}
		logger.Error("reservation transaction failed",
			zap.String("month", models.MonthKey(input.Year, input.Month)),
			zap.Int("day", input.Day), zap.String("slot", input.Slot), zap.Error(err))
		return nil, nil, wrap(ErrRepository, err)
	}

	if svc.Cache != nil {
		svc.Cache.Invalidate(ctx, input.Year, input.Month)
	}

	view, err := svc.freshView(ctx, input.Year, input.Month)
	if err != nil {
		// The booking committed; only the follow-up view read failed. Hand
		// back the booking with an empty view rather than failing the call.
		logger.Warn("booked but could not re-derive availability", zap.Error(err))
		view = models.DeriveAvailabilityView(input.Year, input.Month, nil)
	}

	logger.Info("slot booked",
		zap.String("booking_id", booking.ID),
		zap.String("month", models.MonthKey(input.Year, input.Month)),
		zap.Int("day", input.Day), zap.String("slot", input.Slot))

	return booking, view, nil
}
