// Package riderrepo reads the rider directory.
package riderrepo

import (
	"context"
	"errors"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/rider"
	"campusdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RiderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Phone    string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	IsActive bool      `gorm:"not null;default:true"`
}

func (RiderDTO) TableName() string {
	return "riders"
}

// GormRiderRepository implements ports.RiderRepository using GORM.
type GormRiderRepository struct {
	db *gorm.DB
}

func NewGormRiderRepository(db *gorm.DB) *GormRiderRepository {
	return &GormRiderRepository{db: db}
}

func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, err
	}

	riderID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return rider.NewRider(riderID, dto.Name, dto.Phone, dto.IsActive)
}

// Models lists every table of this package for migrations.
func Models() []any {
	return []any{&RiderDTO{}}
}
