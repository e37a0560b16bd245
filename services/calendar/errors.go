package calendar

import "fmt"

// Error is a calendar failure with a machine-readable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Sentinel failures. Callers match with errors.Is; wrapped causes stay
// available through errors.Unwrap.
var (
	// ErrValidation: the contact fields are missing. No store access happened.
	ErrValidation = &Error{Code: "validationFailed", Message: "name and phone number are required"}
	// ErrSlotUnavailable: the slot was never offered or a concurrent
	// reservation claimed it first. Re-fetch availability and reselect.
	ErrSlotUnavailable = &Error{Code: "slotUnavailable", Message: "the selected slot is no longer available"}
	// ErrRepository: the store was unreachable or rejected the write.
	ErrRepository = &Error{Code: "repositoryError", Message: "the booking store is unavailable"}
)

func wrap(sentinel *Error, cause error) error {
	return fmt.Errorf("%w: %v", sentinel, cause)
}
