package commands

import (
	"errors"

	"campusdelivery/internal/core/domain/model/customer"
	"campusdelivery/internal/pkg/errs"
	"campusdelivery/internal/pkg/guard"
)

var ErrRequestOTPCommandIsNotConstructed = errors.New(
	"RequestOTPCommand must be created via NewRequestOTPCommand constructor",
)

// RequestOTPCommand asks for a sign-in code to be sent to a phone.
type RequestOTPCommand struct { //nolint:recvcheck //using for validation
	phone string

	guard guard.ConstructorGuard
}

func NewRequestOTPCommand(phone string) (RequestOTPCommand, error) {
	phone = customer.NormalizePhone(phone)
	if phone == "" {
		return RequestOTPCommand{}, errs.NewValueIsRequiredError("phone")
	}

	return RequestOTPCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RequestOTPCommand) Validate() error {
	return c.guard.Validate(ErrRequestOTPCommandIsNotConstructed)
}

func (c RequestOTPCommand) Phone() string {
	return c.phone
}
