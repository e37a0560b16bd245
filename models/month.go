package models

import "fmt"

// DayAvailability holds the remaining bookable slots for one day of a month.
// Slot labels are unique within a day and keep their offering order.
type DayAvailability struct {
	Day   int      `bson:"day" json:"day"`
	Slots []string `bson:"slots" json:"slots"`
}

// MonthRecord is the stored availability document for one calendar month.
// It is created by an operator and mutated only by the reservation
// transaction, which removes slots one at a time. A day whose slot list has
// been emptied may remain in Days; it is filtered out when the availability
// view is derived.
type MonthRecord struct {
	ID   string            `bson:"_id" json:"id"`
	Days []DayAvailability `bson:"days" json:"days"`
}

// MonthKey builds the document identifier for a month, e.g. "2024-3".
// The month is 1-indexed and not zero padded.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%d-%d", year, month)
}
