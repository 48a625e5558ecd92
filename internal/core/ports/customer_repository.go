package ports

import (
	"context"

	"campusdelivery/internal/core/domain/model/customer"
	"campusdelivery/internal/core/domain/model/kernel"
)

// CustomerRepository reads customer identities, address books and the OTP
// phone whitelist.
type CustomerRepository interface {
	// GetAddress returns an address only if it belongs to the customer.
	// Returns errs.ErrObjectNotFound otherwise.
	GetAddress(ctx context.Context, addressID, customerID kernel.UUID) (customer.Address, error)

	// GetByPhone returns errs.ErrObjectNotFound for an unknown phone.
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)

	IsPhoneWhitelisted(ctx context.Context, phone string) (bool, error)
}
