package models

// ReserveInput carries a reservation request from the client.
type ReserveInput struct {
	Year        int    `json:"year" binding:"required"`
	Month       int    `json:"month" binding:"required"`
	Day         int    `json:"day" binding:"required"`
	Slot        string `json:"slot" binding:"required"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}
