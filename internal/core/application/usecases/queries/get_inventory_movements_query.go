package queries

import (
	"errors"
	"time"

	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/guard"
)

var ErrGetInventoryMovementsQueryIsNotConstructed = errors.New(
	"GetInventoryMovementsQuery must be created via NewGetInventoryMovementsQuery constructor",
)

// GetInventoryMovementsQuery reads the stock ledger newest first, optionally
// for one product. At most MaxMovements rows are returned.
type GetInventoryMovementsQuery struct {
	productID *kernel.UUID
	limit     int
	guard     guard.ConstructorGuard
}

// NewGetInventoryMovementsQuery treats a limit outside 1..MaxMovements as
// MaxMovements.
func NewGetInventoryMovementsQuery(productID *kernel.UUID, limit int) (GetInventoryMovementsQuery, error) {
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return GetInventoryMovementsQuery{}, err
		}
	}
	if limit <= 0 || limit > MaxMovements {
		limit = MaxMovements
	}
	return GetInventoryMovementsQuery{
		productID: productID,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetInventoryMovementsQuery) Limit() int { return q.limit }

func (q GetInventoryMovementsQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryMovementsQueryIsNotConstructed)
}

type GetInventoryMovementsQueryResponse struct {
	ID            kernel.UUID
	ProductID     kernel.UUID
	Delta         int
	Reason        inventory.Reason
	ReferenceType inventory.ReferenceType
	ReferenceID   string
	ActorType     kernel.ActorType
	ActorID       *kernel.UUID
	CreatedAt     time.Time
}
