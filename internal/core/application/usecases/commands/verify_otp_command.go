package commands

import (
	"errors"
	"strings"

	"campusdelivery/internal/core/domain/model/customer"
	"campusdelivery/internal/pkg/errs"
	"campusdelivery/internal/pkg/guard"
)

var ErrVerifyOTPCommandIsNotConstructed = errors.New(
	"VerifyOTPCommand must be created via NewVerifyOTPCommand constructor",
)

// VerifyOTPCommand exchanges a sign-in code for the customer identity.
type VerifyOTPCommand struct { //nolint:recvcheck //using for validation
	phone string
	code  string

	guard guard.ConstructorGuard
}

func NewVerifyOTPCommand(phone, code string) (VerifyOTPCommand, error) {
	phone = customer.NormalizePhone(phone)
	code = strings.TrimSpace(code)

	var phoneErr, codeErr error
	if phone == "" {
		phoneErr = errs.NewValueIsRequiredError("phone")
	}
	if code == "" {
		codeErr = errs.NewValueIsRequiredError("otp")
	}
	if err := errors.Join(phoneErr, codeErr); err != nil {
		return VerifyOTPCommand{}, err
	}

	return VerifyOTPCommand{
		phone: phone,
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c VerifyOTPCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOTPCommandIsNotConstructed)
}

func (c VerifyOTPCommand) Phone() string { return c.phone }
func (c VerifyOTPCommand) Code() string { return c.code }
