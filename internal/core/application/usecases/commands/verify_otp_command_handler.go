package commands

import (
	"context"
	"errors"

	"campusdelivery/internal/core/domain/model/customer"
	"campusdelivery/internal/core/ports"
	"campusdelivery/internal/pkg/errs"
)

// VerifyOTPCommandHandler consumes a pending code and returns the customer it
// signs in. A wrong, expired or already used code gives ErrOTPInvalid.
type VerifyOTPCommandHandler struct {
	uowFactory CustomerUoWFactory
	store      ports.OTPStore
}

func NewVerifyOTPCommandHandler(uowFactory CustomerUoWFactory, store ports.OTPStore) VerifyOTPCommandHandler {
	return VerifyOTPCommandHandler{
		uowFactory: uowFactory,
		store:      store,
	}
}

func (h VerifyOTPCommandHandler) Handle(ctx context.Context, cmd VerifyOTPCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ok, err := h.store.Verify(ctx, cmd.Phone(), cmd.Code())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOTPInvalid
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CustomerRepository().GetByPhone(ctx, cmd.Phone())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
