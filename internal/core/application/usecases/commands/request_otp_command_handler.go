package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"campusdelivery/internal/core/ports"
)

const otpDigits = 6

// RequestOTPCommandHandler issues a sign-in code to a whitelisted phone.
// A new request replaces any code still pending for the phone.
type RequestOTPCommandHandler struct {
	uowFactory CustomerUoWFactory
	store      ports.OTPStore
	sender     ports.OTPSender
	ttl        time.Duration
}

func NewRequestOTPCommandHandler(
	uowFactory CustomerUoWFactory,
	store ports.OTPStore,
	sender ports.OTPSender,
	ttl time.Duration,
) RequestOTPCommandHandler {
	return RequestOTPCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		sender:     sender,
		ttl:        ttl,
	}
}

// Handle returns ErrPhoneNotWhitelisted for unknown phones.
func (h RequestOTPCommandHandler) Handle(ctx context.Context, cmd RequestOTPCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.checkWhitelist(ctx, cmd.Phone()); err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	if err = h.store.Put(ctx, cmd.Phone(), code, h.ttl); err != nil {
		return err
	}

	return h.sender.SendOTP(ctx, cmd.Phone(), code)
}

// checkWhitelist only reads; the deferred rollback closes the transaction.
func (h RequestOTPCommandHandler) checkWhitelist(ctx context.Context, phone string) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ok, err := uow.CustomerRepository().IsPhoneWhitelisted(ctx, phone)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPhoneNotWhitelisted
	}
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
