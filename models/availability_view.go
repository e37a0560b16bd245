package models

import "sort"

// AvailabilityView is the derived, read-only picture of a month: the days
// that still have at least one slot, and the remaining slots per day. It is
// computed from a MonthRecord on every read; there is no stored
// "is available" flag to drift out of sync.
type AvailabilityView struct {
	Year          int              `json:"year"`
	Month         int              `json:"month"`
	AvailableDays []int            `json:"availableDays"`
	SlotsByDay    map[int][]string `json:"slotsByDay"`
}

// DeriveAvailabilityView computes the view for a month record. A nil record
// (month not configured) yields an empty view. Days with an empty slot list
// are skipped, so booking the last slot of a day drops the day from the view.
func DeriveAvailabilityView(year, month int, rec *MonthRecord) *AvailabilityView {
	view := &AvailabilityView{
		Year:          year,
		Month:         month,
		AvailableDays: []int{},
		SlotsByDay:    map[int][]string{},
	}
	if rec == nil {
		return view
	}
	for _, d := range rec.Days {
		if d.Day < 1 || d.Day > 31 || len(d.Slots) == 0 {
			continue
		}
		if _, seen := view.SlotsByDay[d.Day]; seen {
			continue
		}
		slots := make([]string, len(d.Slots))
		copy(slots, d.Slots)
		view.AvailableDays = append(view.AvailableDays, d.Day)
		view.SlotsByDay[d.Day] = slots
	}
	sort.Ints(view.AvailableDays)
	return view
}

// HasDay reports whether the day is currently offered.
func (v *AvailabilityView) HasDay(day int) bool {
	_, ok := v.SlotsByDay[day]
	return ok
}

// HasSlot reports whether the slot is still offered on the given day.
func (v *AvailabilityView) HasSlot(day int, slot string) bool {
	for _, s := range v.SlotsByDay[day] {
		if s == slot {
			return true
		}
	}
	return false
}
