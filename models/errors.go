package models

import "errors"

// ErrSlotTaken is returned by the reservation store when the requested slot
// is no longer present in the month record, either because it was never
// offered or because a concurrent reservation claimed it first.
var ErrSlotTaken = errors.New("slot no longer available")
