package booking

import "fmt"

// ValidationError reports bad user input. The flow re-prompts with the
// reason and leaves the session where it is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Code implements the error-code contract used by handler logging.
func (e *ValidationError) Code() string { return "VALIDATION" }

// ConflictError reports a slot claimed by another booking between offer
// and confirmation. The flow routes the user back to slot selection.
type ConflictError struct {
	Date Date
	Slot Slot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s on %s is already booked", e.Slot, e.Date)
}

func (e *ConflictError) Code() string { return "CONFLICT" }

// NotFoundError reports an operation on a booking id that is not in the
// store. The caller is informed and no state changes.
type NotFoundError struct {
	BookingID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.BookingID)
}

func (e *NotFoundError) Code() string { return "NOT_FOUND" }
