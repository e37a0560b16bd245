package models

import "time"

// Booking is one immutable entry in the reservation ledger. Records are only
// ever appended; the core never updates or deletes them.
type Booking struct {
	ID          string    `bson:"id" json:"id"`                   // Unique booking identifier (UUID)
	Year        int       `bson:"year" json:"year"`               // Calendar year booked
	Month       int       `bson:"month" json:"month"`             // Month 1..12
	Day         int       `bson:"day" json:"day"`                 // Day of month 1..31
	Slot        string    `bson:"slot" json:"slot"`               // Slot label, e.g. "10:00"
	Name        string    `bson:"name" json:"name"`               // Customer name
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"` // Customer phone number
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`     // When the booking was created
}
