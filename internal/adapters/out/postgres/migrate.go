package postgres

import (
	"campusdelivery/internal/adapters/out/postgres/customerrepo"
	"campusdelivery/internal/adapters/out/postgres/inventoryrepo"
	"campusdelivery/internal/adapters/out/postgres/orderrepo"
	"campusdelivery/internal/adapters/out/postgres/riderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns or reads.
func Migrate(db *gorm.DB) error {
	models := make([]any, 0, 16)
	models = append(models, inventoryrepo.Models()...)
	models = append(models, orderrepo.Models()...)
	models = append(models, riderrepo.Models()...)
	models = append(models, customerrepo.Models()...)
	return db.AutoMigrate(models...)
}
