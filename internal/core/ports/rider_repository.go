package ports

import (
	"context"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/rider"
)

// RiderRepository reads the rider directory.
type RiderRepository interface {
	// Get returns errs.ErrObjectNotFound for an unknown rider.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)
}
