package queries

import (
	"campusdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Defaults and bounds for list queries.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	MaxMovements     = 100
)

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // absent value
	}
	v, err := toUUID(*id)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func toMoney(d decimal.Decimal) (kernel.Money, error) {
	return kernel.NewMoney(d)
}
