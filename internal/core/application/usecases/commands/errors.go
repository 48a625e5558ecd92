package commands

import (
	"errors"

	"campusdelivery/internal/core/domain/model/rider"
)

// Lookup failures reported by command handlers. State machine and stock
// failures come from the order and inventory packages.
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrAddressNotFound     = errors.New("address not found")
	ErrRiderNotFound       = errors.New("rider not found")
	ErrRiderInactive       = rider.ErrRiderInactive
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrPhoneNotWhitelisted = errors.New("phone not whitelisted")
	ErrOTPInvalid          = errors.New("otp invalid or expired")
	ErrInventoryItemExists = errors.New("inventory item already exists")
)
