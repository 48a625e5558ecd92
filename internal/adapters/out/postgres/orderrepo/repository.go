package orderrepo

import (
	"context"
	"errors"
	"time"

	"campusdelivery/internal/adapters/out/postgres/pgutil"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects what was written so it can be announced after
// commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row with its address and items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetStatus(ctx context.Context, id kernel.UUID) (order.Status, error) {
	if err := id.Validate(); err != nil {
		return order.Unknown, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Select("status").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Unknown, errs.NewObjectNotFoundError("order", id.String())
		}
		return order.Unknown, err
	}

	return order.ParseStatus(dto.Status)
}

// TryTransition is the single conditional write behind every status change:
//
//	UPDATE orders SET status = next WHERE id = ? AND status = expected
//
// Postgres re-evaluates the predicate after waiting on a concurrent writer,
// so of two transactions racing from the same status only one sees a row.
func (r *GormOrderRepository) TryTransition(
	ctx context.Context,
	id kernel.UUID,
	expected, next order.Status,
) (bool, error) {
	if err := expected.ValidateTransition(next); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), expected.String()).
		Updates(map[string]any{
			"status":     next.String(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (r *GormOrderRepository) AppendEvent(ctx context.Context, event order.Event) error {
	dto := eventFromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.OrderID(), event)
	return nil
}

// AddAssignment maps a primary key conflict to order.ErrOrderAlreadyAssigned.
func (r *GormOrderRepository) AddAssignment(ctx context.Context, assignment order.Assignment) error {
	dto := RiderAssignmentDTO{
		OrderID:    assignment.OrderID().Bytes(),
		RiderID:    assignment.RiderID().Bytes(),
		AssignedAt: assignment.AssignedAt(),
	}

	err := r.db.WithContext(ctx).Create(&dto).Error
	if pgutil.IsUniqueViolation(err) {
		return order.ErrOrderAlreadyAssigned
	}
	return err
}

func (r *GormOrderRepository) GetAssignment(ctx context.Context, orderID kernel.UUID) (order.Assignment, error) {
	var dto RiderAssignmentDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Assignment{}, errs.NewObjectNotFoundError("assignment", orderID.String())
		}
		return order.Assignment{}, err
	}

	return assignmentToDomain(dto)
}

func (r *GormOrderRepository) AddPayment(ctx context.Context, payment *order.Payment) error {
	dto := PaymentDTO{
		ID:          payment.ID().Bytes(),
		OrderID:     payment.OrderID().Bytes(),
		Amount:      payment.Amount().Amount(),
		Status:      string(payment.Status()),
		Provider:    payment.Provider(),
		ProviderRef: payment.ProviderRef(),
		CreatedAt:   payment.CreatedAt(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}
