package inventory

import (
	"errors"
	"fmt"

	"campusdelivery/internal/core/domain/model/kernel"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductInactive   = errors.New("product inactive")
	ErrOutOfStock        = errors.New("out of stock")
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInventoryRowMissing means a product referenced by an order lost its
	// inventory row. It is an integrity failure, not a business outcome.
	ErrInventoryRowMissing = errors.New("inventory row missing")
)

// ProductError ties one of the sentinels above to the product that caused it.
type ProductError struct {
	ProductID kernel.UUID
	Kind      error
}

func NewProductError(productID kernel.UUID, kind error) *ProductError {
	return &ProductError{ProductID: productID, Kind: kind}
}

func (e *ProductError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.ProductID)
}

func (e *ProductError) Unwrap() error {
	return e.Kind
}
