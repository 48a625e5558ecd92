package queries

import (
	"context"
	"time"

	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetInventoryMovementsQueryHandler struct {
	db *gorm.DB
}

func NewGetInventoryMovementsQueryHandler(db *gorm.DB) GetInventoryMovementsQueryHandler {
	return GetInventoryMovementsQueryHandler{db: db}
}

func (h GetInventoryMovementsQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryMovementsQuery,
) ([]GetInventoryMovementsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).
		Table("inventory_movements").
		Select("id, product_id, delta, reason, reference_type, COALESCE(reference_id, ''), actor_type, actor_id, created_at")
	if query.productID != nil {
		stmt = stmt.Where("product_id = ?", query.productID.Bytes())
	}

	rows, err := stmt.Order("created_at DESC").Order("id").Limit(query.limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]GetInventoryMovementsQueryResponse, 0)
	for rows.Next() {
		var (
			resp                 GetInventoryMovementsQueryResponse
			id, productID        uuid.UUID
			reason, refType, act string
			actorID              *uuid.UUID
			createdAt            time.Time
		)
		err = rows.Scan(&id, &productID, &resp.Delta, &reason, &refType, &resp.ReferenceID, &act, &actorID, &createdAt)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if resp.ProductID, err = toUUID(productID); err != nil {
			return nil, err
		}
		if resp.Reason, err = inventory.ParseReason(reason); err != nil {
			return nil, err
		}
		if resp.ReferenceType, err = inventory.ParseReferenceType(refType); err != nil {
			return nil, err
		}
		if resp.ActorType, err = kernel.ParseActorType(act); err != nil {
			return nil, err
		}
		if resp.ActorID, err = toOptionalUUID(actorID); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt
		movements = append(movements, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return movements, nil
}
