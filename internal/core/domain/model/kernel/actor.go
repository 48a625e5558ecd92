package kernel

import (
	"fmt"

	"campusdelivery/internal/pkg/errs"
	"campusdelivery/internal/pkg/guard"
)

// ActorType names who performed an audited change.
type ActorType string

const (
	ActorAdmin    ActorType = "ADMIN"
	ActorRider    ActorType = "RIDER"
	ActorCustomer ActorType = "CUSTOMER"
	ActorSystem   ActorType = "SYSTEM"
)

func ParseActorType(s string) (ActorType, error) {
	switch t := ActorType(s); t {
	case ActorAdmin, ActorRider, ActorCustomer, ActorSystem:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("actor type", fmt.Errorf("%q is not a known actor type", s))
	}
}

// Actor is the authenticated identity attributed on events and movements.
// System actors have no ID.
type Actor struct {
	typ   ActorType
	id    UUID
	guard guard.ConstructorGuard
}

var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("actor")

func NewActor(typ ActorType, id UUID) (Actor, error) {
	if _, err := ParseActorType(string(typ)); err != nil {
		return Actor{}, err
	}
	if typ == ActorSystem {
		return NewSystemActor(), nil
	}
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{typ: typ, id: id, guard: guard.NewConstructorGuard()}, nil
}

func NewSystemActor() Actor {
	return Actor{typ: ActorSystem, guard: guard.NewConstructorGuard()}
}

func (a Actor) Type() ActorType {
	return a.typ
}

// ID is zero for system actors.
func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Is(typ ActorType) bool {
	return a.typ == typ
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
