package order

import (
	"strings"
	"time"

	"campusdelivery/internal/core/domain/model/kernel"
)

// Event is the audit record of one status transition. It is written in the
// same transaction as the guarded status update and never changed afterwards.
type Event struct {
	id         kernel.UUID
	orderID    kernel.UUID
	from       Status
	to         Status
	actor      kernel.Actor
	reason     string
	occurredAt time.Time
}

// NewEvent refuses transitions the state machine does not allow, so an event
// can only ever describe a legal move.
func NewEvent(orderID kernel.UUID, from, to Status, actor kernel.Actor, reason string) (Event, error) {
	if err := orderID.Validate(); err != nil {
		return Event{}, err
	}
	if err := actor.Validate(); err != nil {
		return Event{}, err
	}
	if err := from.ValidateTransition(to); err != nil {
		return Event{}, err
	}

	return Event{
		id:         kernel.NewUUID(),
		orderID:    orderID,
		from:       from,
		to:         to,
		actor:      actor,
		reason:     strings.TrimSpace(reason),
		occurredAt: time.Now().UTC(),
	}, nil
}

func (e Event) ID() kernel.UUID { return e.id }
func (e Event) OrderID() kernel.UUID { return e.orderID }
func (e Event) From() Status { return e.from }
func (e Event) To() Status { return e.to }
func (e Event) Actor() kernel.Actor { return e.actor }
func (e Event) Reason() string { return e.reason }
func (e Event) OccurredAt() time.Time { return e.occurredAt }
