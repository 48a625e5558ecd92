package inventoryrepo

import (
	"context"
	"errors"
	"time"

	"campusdelivery/internal/adapters/out/postgres/pgutil"
	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements ports.InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) Add(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormInventoryRepository) Get(ctx context.Context, productID kernel.UUID) (*inventory.Item, error) {
	var dto InventoryDTO
	err := r.db.WithContext(ctx).First(&dto, "product_id = ?", productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productID", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update writes prices and the threshold. The quantity column is left out so
// that a stale item can never overwrite a concurrent reservation.
func (r *GormInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&InventoryDTO{}).
		Where("product_id = ?", dto.ProductID).
		Updates(map[string]any{
			"cost_price":       dto.CostPrice,
			"selling_price":    dto.SellingPrice,
			"discount_percent": dto.DiscountPercent,
			"min_quantity":     dto.MinQuantity,
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productID", item.ProductID().String())
	}
	return nil
}

func (r *GormInventoryRepository) ProductExists(ctx context.Context, productID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", productID.Bytes()).
		Count(&count).Error
	return count > 0, err
}

func (r *GormInventoryRepository) GetSnapshots(
	ctx context.Context,
	productIDs []kernel.UUID,
) (map[kernel.UUID]inventory.Snapshot, error) {
	snapshots := make(map[kernel.UUID]inventory.Snapshot, len(productIDs))
	if len(productIDs) == 0 {
		return snapshots, nil
	}

	var rows []snapshotRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id AS product_id,
			p.name,
			p.is_active,
			i.selling_price,
			i.discount_percent,
			i.quantity
		FROM products p
		JOIN inventory i ON i.product_id = p.id
		WHERE p.id IN ?
	`, pgutil.UUIDs(productIDs)).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		snap, snapErr := row.toDomain()
		if snapErr != nil {
			return nil, snapErr
		}
		snapshots[snap.ProductID] = snap
	}
	return snapshots, nil
}

// DecrementIfSufficient runs
//
//	UPDATE inventory SET quantity = quantity - qty WHERE product_id = ? AND quantity >= qty
//
// A concurrent decrement on the same row makes this statement wait and then
// re-check the guard against the committed quantity.
func (r *GormInventoryRepository) DecrementIfSufficient(
	ctx context.Context,
	productID kernel.UUID,
	qty int,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&InventoryDTO{}).
		Where("product_id = ? AND quantity >= ?", productID.Bytes(), qty).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity - ?", qty),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *GormInventoryRepository) Increment(ctx context.Context, productID kernel.UUID, qty int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&InventoryDTO{}).
		Where("product_id = ?", productID.Bytes()).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity + ?", qty),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *GormInventoryRepository) AppendMovement(ctx context.Context, movement *inventory.Movement) error {
	dto := movementFromDomain(movement)
	return r.db.WithContext(ctx).Create(&dto).Error
}
