package queries

import (
	"errors"

	"campusdelivery/internal/pkg/guard"
)

var ErrGetLowStockQueryIsNotConstructed = errors.New(
	"GetLowStockQuery must be created via NewGetLowStockQuery constructor",
)

// GetLowStockQuery lists stock rows below their reorder threshold, or only
// the rows that are empty when outOfStockOnly is set.
type GetLowStockQuery struct {
	outOfStockOnly bool
	guard          guard.ConstructorGuard
}

func NewGetLowStockQuery(outOfStockOnly bool) GetLowStockQuery {
	return GetLowStockQuery{outOfStockOnly: outOfStockOnly, guard: guard.NewConstructorGuard()}
}

func (q GetLowStockQuery) OutOfStockOnly() bool { return q.outOfStockOnly }

func (q GetLowStockQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockQueryIsNotConstructed)
}
