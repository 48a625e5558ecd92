package commands

import (
	"errors"

	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/pkg/errs"
	"campusdelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer placing an order for delivery.
// The destination is either a saved address of the customer or an inline
// address, never both.
//
// Example:
//
//	line, _ := inventory.NewLine(productID, 2)
//	cmd, err := NewCreateOrderCommand(customerID, []inventory.Line{line}, &addressID, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	lines      []inventory.Line
	addressID  *kernel.UUID
	address    *order.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the cart and the destination.
// Exactly one of addressID and address must be set.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	lines []inventory.Line,
	addressID *kernel.UUID,
	address *order.Address,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
		cmd.setDestination(addressID, address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the cart as submitted, duplicates included.
func (c CreateOrderCommand) Lines() []inventory.Line {
	lines := make([]inventory.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// AddressID returns the saved address to deliver to, or nil.
func (c CreateOrderCommand) AddressID() *kernel.UUID {
	return c.addressID
}

// Address returns the inline destination, or nil.
func (c CreateOrderCommand) Address() *order.Address {
	return c.address
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []inventory.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.ProductID().Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
		if line.Quantity() <= 0 {
			return errs.NewValueIsInvalidError("items")
		}
	}

	c.lines = make([]inventory.Line, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CreateOrderCommand) setDestination(addressID *kernel.UUID, address *order.Address) error {
	switch {
	case addressID == nil && address == nil:
		return errs.NewValueIsRequiredError("address")
	case addressID != nil && address != nil:
		return errs.NewValueIsInvalidErrorWithCause("address", errors.New("give either a saved address or an inline one"))
	case addressID != nil:
		if err := addressID.Validate(); err != nil {
			return err
		}
		id := *addressID
		c.addressID = &id
	default:
		if err := address.Validate(); err != nil {
			return err
		}
		a := *address
		c.address = &a
	}
	return nil
}
