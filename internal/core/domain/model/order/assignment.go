package order

import (
	"time"

	"campusdelivery/internal/core/domain/model/kernel"
)

// Assignment records the single rider who claimed an order.
type Assignment struct {
	orderID    kernel.UUID
	riderID    kernel.UUID
	assignedAt time.Time
}

func NewAssignment(orderID, riderID kernel.UUID) (Assignment, error) {
	return RestoreAssignment(orderID, riderID, time.Now().UTC())
}

func RestoreAssignment(orderID, riderID kernel.UUID, assignedAt time.Time) (Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return Assignment{}, err
	}
	if err := riderID.Validate(); err != nil {
		return Assignment{}, err
	}
	return Assignment{orderID: orderID, riderID: riderID, assignedAt: assignedAt}, nil
}

func (a Assignment) OrderID() kernel.UUID { return a.orderID }
func (a Assignment) RiderID() kernel.UUID { return a.riderID }
func (a Assignment) AssignedAt() time.Time { return a.assignedAt }

// ValidateRider fails unless riderID is the rider on record.
func (a Assignment) ValidateRider(riderID kernel.UUID) error {
	if !a.riderID.IsEqual(riderID) {
		return ErrOrderNotAssignedToRider
	}
	return nil
}
