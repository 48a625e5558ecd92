package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"
	"campusdelivery/internal/pkg/guard"
)

// Reason explains why stock changed.
type Reason string

const (
	ReasonInitialStock   Reason = "INITIAL_STOCK"
	ReasonPurchase       Reason = "PURCHASE"
	ReasonAdjustment     Reason = "ADJUSTMENT"
	ReasonOrderPlaced    Reason = "ORDER_PLACED"
	ReasonOrderCancelled Reason = "ORDER_CANCELLED"
)

func ParseReason(s string) (Reason, error) {
	switch r := Reason(s); r {
	case ReasonInitialStock, ReasonPurchase, ReasonAdjustment, ReasonOrderPlaced, ReasonOrderCancelled:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("movement reason", fmt.Errorf("%q is not a valid reason", s))
	}
}

// sign is +1 or -1 for reasons whose direction is fixed, 0 when either works.
func (r Reason) sign() int {
	switch r {
	case ReasonInitialStock, ReasonPurchase, ReasonOrderCancelled:
		return 1
	case ReasonOrderPlaced:
		return -1
	default:
		return 0
	}
}

// ReferenceType names what triggered a movement.
type ReferenceType string

const (
	ReferenceOrder      ReferenceType = "ORDER"
	ReferencePurchase   ReferenceType = "PURCHASE"
	ReferenceAdjustment ReferenceType = "ADJUSTMENT"
)

func ParseReferenceType(s string) (ReferenceType, error) {
	switch r := ReferenceType(s); r {
	case ReferenceOrder, ReferencePurchase, ReferenceAdjustment:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("reference type", fmt.Errorf("%q is not a valid reference type", s))
	}
}

var ErrMovementSourceIsNotConstructed = errors.New("MovementSource must be created via NewMovementSource constructor")

// MovementSource describes the ledger entry to write for each product touched by
// one stock change: why, what triggered it and who did it.
type MovementSource struct {
	reason        Reason
	referenceType ReferenceType
	referenceID   string
	actor         kernel.Actor
	guard         guard.ConstructorGuard
}

func NewMovementSource(reason Reason, referenceType ReferenceType, referenceID string, actor kernel.Actor) (MovementSource, error) {
	if _, err := ParseReason(string(reason)); err != nil {
		return MovementSource{}, err
	}
	if _, err := ParseReferenceType(string(referenceType)); err != nil {
		return MovementSource{}, err
	}
	if err := actor.Validate(); err != nil {
		return MovementSource{}, err
	}
	return MovementSource{
		reason:        reason,
		referenceType: referenceType,
		referenceID:   strings.TrimSpace(referenceID),
		actor:         actor,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// OrderMovementSource is the source used by order placement and cancellation.
func OrderMovementSource(reason Reason, orderID kernel.UUID, actor kernel.Actor) (MovementSource, error) {
	return NewMovementSource(reason, ReferenceOrder, orderID.String(), actor)
}

func (s MovementSource) Reason() Reason { return s.reason }
func (s MovementSource) ReferenceType() ReferenceType { return s.referenceType }
func (s MovementSource) ReferenceID() string { return s.referenceID }
func (s MovementSource) Actor() kernel.Actor { return s.actor }

func (s MovementSource) Validate() error {
	return s.guard.Validate(ErrMovementSourceIsNotConstructed)
}

// Movement is one append-only ledger entry. For every product, the stored
// quantity equals the sum of its movement deltas.
type Movement struct {
	id            kernel.UUID
	productID     kernel.UUID
	delta         int
	reason        Reason
	referenceType ReferenceType
	referenceID   string
	actor         kernel.Actor
	createdAt     time.Time
}

func NewMovement(productID kernel.UUID, delta int, source MovementSource) (*Movement, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if err := source.Validate(); err != nil {
		return nil, err
	}
	if delta == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("delta", errors.New("delta must not be zero"))
	}
	if sign := source.reason.sign(); sign != 0 && (delta > 0) != (sign > 0) {
		return nil, errs.NewValueIsInvalidErrorWithCause("delta",
			fmt.Errorf("%d has the wrong sign for %s", delta, source.reason))
	}

	return &Movement{
		id:            kernel.NewUUID(),
		productID:     productID,
		delta:         delta,
		reason:        source.reason,
		referenceType: source.referenceType,
		referenceID:   source.referenceID,
		actor:         source.actor,
		createdAt:     time.Now().UTC(),
	}, nil
}

func (m *Movement) ID() kernel.UUID { return m.id }
func (m *Movement) ProductID() kernel.UUID { return m.productID }
func (m *Movement) Delta() int { return m.delta }
func (m *Movement) Reason() Reason { return m.reason }
func (m *Movement) ReferenceType() ReferenceType { return m.referenceType }
func (m *Movement) ReferenceID() string { return m.referenceID }
func (m *Movement) Actor() kernel.Actor { return m.actor }
func (m *Movement) CreatedAt() time.Time { return m.createdAt }
