package order

import (
	"errors"
	"strings"

	"campusdelivery/internal/pkg/errs"
	"campusdelivery/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery destination copied onto the order when it is placed.
// Later edits to the customer's address book never reach it.
type Address struct {
	label string
	line1 string
	line2 string
	guard guard.ConstructorGuard
}

func NewAddress(label, line1, line2 string) (Address, error) {
	line1 = strings.TrimSpace(line1)
	if line1 == "" {
		return Address{}, errs.NewValueIsRequiredError("address line1")
	}
	return Address{
		label: strings.TrimSpace(label),
		line1: line1,
		line2: strings.TrimSpace(line2),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (a Address) Label() string { return a.label }
func (a Address) Line1() string { return a.line1 }
func (a Address) Line2() string { return a.line2 }

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
