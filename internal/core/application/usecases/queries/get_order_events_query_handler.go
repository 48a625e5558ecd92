package queries

import (
	"context"
	"time"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderEventsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderEventsQueryHandler(db *gorm.DB) GetOrderEventsQueryHandler {
	return GetOrderEventsQueryHandler{db: db}
}

// Handle returns ErrObjectNotFound for an unknown order and an empty slice
// for an order that never changed status.
func (h GetOrderEventsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderEventsQuery,
) ([]GetOrderEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64
	if err := h.db.WithContext(ctx).Table("orders").Where("id = ?", query.orderID.Bytes()).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.orderID.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			from_status,
			to_status,
			actor_type,
			actor_id,
			COALESCE(reason, ''),
			created_at
		FROM order_events
		WHERE order_id = ?
		ORDER BY created_at DESC, id
	`, query.orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]GetOrderEventsQueryResponse, 0)
	for rows.Next() {
		var (
			resp            GetOrderEventsQueryResponse
			id              uuid.UUID
			from, to, actor string
			actorID         *uuid.UUID
			createdAt       time.Time
		)
		if err = rows.Scan(&id, &from, &to, &actor, &actorID, &resp.Reason, &createdAt); err != nil {
			return nil, err
		}

		if resp.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if resp.From, err = order.ParseStatus(from); err != nil {
			return nil, err
		}
		if resp.To, err = order.ParseStatus(to); err != nil {
			return nil, err
		}
		if resp.ActorType, err = kernel.ParseActorType(actor); err != nil {
			return nil, err
		}
		if resp.ActorID, err = toOptionalUUID(actorID); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt
		events = append(events, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
