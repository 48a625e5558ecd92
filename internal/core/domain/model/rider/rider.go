package rider

import (
	"errors"
	"strings"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"
)

var (
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
	ErrRiderInactive         = errors.New("rider inactive")
)

// Rider is a delivery rider as known to the ordering core. Rider accounts are
// managed elsewhere; the core only reads them to authorize claims.
type Rider struct {
	id       kernel.UUID
	name     string
	phone    string
	isActive bool

	isConstructed bool
}

func NewRider(id kernel.UUID, name, phone string, isActive bool) (*Rider, error) {
	r := &Rider{isActive: isActive, isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
	); err != nil {
		return nil, err
	}
	r.phone = strings.TrimSpace(phone)
	return r, nil
}

func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

func (r *Rider) ID() kernel.UUID { return r.id }
func (r *Rider) Name() string    { return r.name }
func (r *Rider) Phone() string   { return r.phone }
func (r *Rider) IsActive() bool  { return r.isActive }

// ValidateCanClaim fails for deactivated riders.
func (r *Rider) ValidateCanClaim() error {
	if !r.isActive {
		return ErrRiderInactive
	}
	return nil
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}
