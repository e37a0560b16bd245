package calendar

import (
	"context"

	"mawid/models"
	"mawid/utils"

	"go.uber.org/zap"
)

// MonthAvailability returns the derived availability view for a month. A
// month with no stored record yields an empty view, not an error. The view
// is served from the cache when present; repository reads repopulate it.
func (svc *DefaultCalendarService) MonthAvailability(ctx context.Context, year, month int) (*models.AvailabilityView, error) {
	if svc.Cache != nil {
		if view, ok := svc.Cache.Get(ctx, year, month); ok {
			return view, nil
		}
	}

	view, err := svc.freshView(ctx, year, month)
	if err != nil {
		return nil, err
	}

	if svc.Cache != nil {
		svc.Cache.Set(ctx, view)
	}
	return view, nil
}

// freshView always reads the month record from the repository.
func (svc *DefaultCalendarService) freshView(ctx context.Context, year, month int) (*models.AvailabilityView, error) {
	rec, err := svc.AvailabilityRepo.GetMonth(ctx, year, month)
	if err != nil {
		utils.GetLogger().Error("failed to load month record",
			zap.String("month", models.MonthKey(year, month)), zap.Error(err))
		return nil, wrap(ErrRepository, err)
	}
	return models.DeriveAvailabilityView(year, month, rec), nil
}

// IsBookable reports whether the day/slot pair is offered by the view. It
// gates client affordances only; a view can be stale the moment it is
// derived, so the reserve transaction re-checks against the store.
func IsBookable(view *models.AvailabilityView, day int, slot string) bool {
	if view == nil {
		return false
	}
	return view.HasDay(day) && view.HasSlot(day, slot)
}
