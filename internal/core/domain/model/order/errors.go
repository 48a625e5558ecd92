package order

import "errors"

// Guard violations of the order state machine. They are expected under
// concurrency and are reported to callers as conflicts, not internal errors.
var (
	ErrOrderStatusInvalid      = errors.New("order status is invalid")
	ErrOrderAlreadyAssigned    = errors.New("order already assigned")
	ErrOrderNotAssignedToRider = errors.New("order not assigned to rider")
	ErrAlreadyCancelled        = errors.New("order already cancelled")
	ErrOrderNotCancellable     = errors.New("order not cancellable")
)
