package calendar

import "mawid/models"

// Month navigation and selection transitions. These are pure functions over
// CalendarSession values so that clients (and tests) can drive the cursor
// deterministically; nothing here touches a repository.

// NewSession starts a session viewing the given month with no selection.
func NewSession(year, month int) models.CalendarSession {
	return models.CalendarSession{Year: year, Month: month}
}

// NextMonth advances the cursor one month, wrapping December into January of
// the next year. Any day selection is cleared.
func NextMonth(s models.CalendarSession) models.CalendarSession {
	if s.Month == 12 {
		s.Month = 1
		s.Year++
	} else {
		s.Month++
	}
	return clearSelection(s)
}

// PrevMonth moves the cursor back one month, wrapping January into December
// of the previous year. Any day selection is cleared.
func PrevMonth(s models.CalendarSession) models.CalendarSession {
	if s.Month == 1 {
		s.Month = 12
		s.Year--
	} else {
		s.Month--
	}
	return clearSelection(s)
}

// SelectDay toggles the day selection. Selecting a day the view does not
// offer is a no-op; re-selecting the current day clears it. Changing the day
// always drops the slot selection.
func SelectDay(s models.CalendarSession, view *models.AvailabilityView, day int) models.CalendarSession {
	if view == nil || !view.HasDay(day) {
		return s
	}
	if s.SelectedDay == day {
		return clearSelection(s)
	}
	s.SelectedDay = day
	s.SelectedSlot = ""
	return s
}

// SelectSlot picks a slot on the currently selected day. The slot must be
// offered by the view for the selected day.
func SelectSlot(s models.CalendarSession, view *models.AvailabilityView, slot string) models.CalendarSession {
	if s.SelectedDay == 0 || view == nil || !view.HasSlot(s.SelectedDay, slot) {
		return s
	}
	s.SelectedSlot = slot
	return s
}

// ClearSelection drops the day and slot selection.
func ClearSelection(s models.CalendarSession) models.CalendarSession {
	return clearSelection(s)
}

// ApplyView reconciles the session against a fresh availability view.
// A selected day that is no longer offered (its last slot was booked) is
// cleared; a selected slot that went away while the day survives is cleared
// on its own. This is the stale-selection cleanup after a lost race.
func ApplyView(s models.CalendarSession, view *models.AvailabilityView) models.CalendarSession {
	if s.SelectedDay == 0 {
		return s
	}
	if view == nil || !view.HasDay(s.SelectedDay) {
		return clearSelection(s)
	}
	if s.SelectedSlot != "" && !view.HasSlot(s.SelectedDay, s.SelectedSlot) {
		s.SelectedSlot = ""
	}
	return s
}

func clearSelection(s models.CalendarSession) models.CalendarSession {
	s.SelectedDay = 0
	s.SelectedSlot = ""
	return s
}
