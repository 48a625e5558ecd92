// Package customer holds the customer identity and address book entries read
// by order placement and OTP sign-in.
package customer

import (
	"errors"
	"strings"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

type Customer struct {
	id    kernel.UUID
	name  string
	phone string
	email string

	isConstructed bool
}

func NewCustomer(id kernel.UUID, name, phone, email string) (*Customer, error) {
	c := &Customer{
		name:          strings.TrimSpace(name),
		email:         strings.TrimSpace(email),
		isConstructed: true,
	}
	phone = NormalizePhone(phone)
	if err := errors.Join(id.Validate(), requirePhone(phone)); err != nil {
		return nil, err
	}
	c.id = id
	c.phone = phone
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID { return c.id }
func (c *Customer) Name() string    { return c.name }
func (c *Customer) Phone() string   { return c.phone }
func (c *Customer) Email() string   { return c.email }

// NormalizePhone trims surrounding whitespace; numbers are otherwise compared
// exactly as the whitelist stores them.
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

func requirePhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	return nil
}

// Address is an entry of the customer's address book.
type Address struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Label      string
	Line1      string
	Line2      string
}

// Snapshot copies the entry into an order address.
func (a Address) Snapshot() (order.Address, error) {
	return order.NewAddress(a.Label, a.Line1, a.Line2)
}
