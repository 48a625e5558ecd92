package ports

import (
	"context"
	"time"
)

// OTPStore keeps one pending sign-in code per phone, shared by every
// instance of the service.
type OTPStore interface {
	// Put replaces any pending code for the phone.
	Put(ctx context.Context, phone, code string, ttl time.Duration) error

	// Verify consumes the pending code if it matches. A code can be verified
	// at most once and is gone after its ttl.
	Verify(ctx context.Context, phone, code string) (bool, error)
}

// OTPSender delivers a sign-in code to the customer's phone.
type OTPSender interface {
	SendOTP(ctx context.Context, phone, code string) error
}
