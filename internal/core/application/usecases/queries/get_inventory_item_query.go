package queries

import (
	"errors"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/guard"
)

var ErrGetInventoryItemQueryIsNotConstructed = errors.New(
	"GetInventoryItemQuery must be created via NewGetInventoryItemQuery constructor",
)

type GetInventoryItemQuery struct {
	productID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetInventoryItemQuery(productID kernel.UUID) (GetInventoryItemQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetInventoryItemQuery{}, err
	}
	return GetInventoryItemQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetInventoryItemQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryItemQueryIsNotConstructed)
}
