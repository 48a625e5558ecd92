package order

import (
	"fmt"

	"campusdelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Created ──> Confirmed ──> AssignedRider ──> OutForDelivery ──> Delivered ──> Refunded
//	   │            │               │                 │
//	   └────────────┴───────────────┴─────────────────┴──> Cancelled
//
// Delivered, Cancelled and Refunded accept no further transitions except
// Delivered -> Refunded.
type Status int

const (
	// Unknown is the zero value and never persisted.
	Unknown Status = iota
	Created
	Confirmed
	AssignedRider
	OutForDelivery
	Delivered
	Cancelled
	Refunded
)

// ClaimableStatus is the only status a rider may claim an order from.
// Admins move orders out of Created by confirming them first.
const ClaimableStatus = Confirmed

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Created:        "CREATED",
		Confirmed:      "CONFIRMED",
		AssignedRider:  "ASSIGNED_RIDER",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
		Refunded:       "REFUNDED",
	}
}

// getTransitions lists, per status, the statuses it may move to.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no entry
	return map[Status][]Status{
		Created:        {Confirmed, Cancelled},
		Confirmed:      {AssignedRider, Cancelled},
		AssignedRider:  {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
		Delivered:      {Refunded},
	}
}

// ParseStatus converts the persisted representation back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Refunded {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the order has left the delivery flow.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Refunded
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateTransition wraps ErrOrderStatusInvalid when s may not move to next.
func (s Status) ValidateTransition(next Status) error {
	if !s.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrOrderStatusInvalid, s, next)
	}
	return nil
}

// ValidateCancel distinguishes an order that is already cancelled from one that
// went past the point of cancellation.
func (s Status) ValidateCancel() error {
	switch s {
	case Cancelled:
		return ErrAlreadyCancelled
	case Delivered, Refunded:
		return fmt.Errorf("%w: order is %s", ErrOrderNotCancellable, s)
	case Unknown:
		return s.Validate()
	default:
		return nil
	}
}
