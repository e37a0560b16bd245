package models

// ContactForm holds the in-progress contact fields of a session.
type ContactForm struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// CalendarSession is the ephemeral per-client interaction state: the month
// being viewed plus the current day/slot selection. It is a plain value
// passed into and returned from navigation operations and is never persisted.
// SelectedDay 0 and SelectedSlot "" mean no selection.
type CalendarSession struct {
	Year         int         `json:"year"`
	Month        int         `json:"month"`
	SelectedDay  int         `json:"selectedDay,omitempty"`
	SelectedSlot string      `json:"selectedSlot,omitempty"`
	Form         ContactForm `json:"form"`
}
