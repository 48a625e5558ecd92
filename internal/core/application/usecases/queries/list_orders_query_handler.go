package queries

import (
	"context"
	"time"

	"campusdelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	f := query.filter

	stmt := h.db.WithContext(ctx).
		Table("orders AS o").
		Select(`
			o.id,
			o.customer_id,
			o.status,
			o.total,
			(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count,
			COALESCE(a.label, '') AS address_label,
			COALESCE(a.line1, '') AS address_line1,
			ra.rider_id,
			o.created_at`).
		Joins("LEFT JOIN order_addresses a ON a.order_id = o.id").
		Joins("LEFT JOIN rider_assignments ra ON ra.order_id = o.id")

	if len(f.Statuses) > 0 {
		names := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			names = append(names, s.String())
		}
		stmt = stmt.Where("o.status IN ?", names)
	}
	if f.CustomerID != nil {
		stmt = stmt.Where("o.customer_id = ?", f.CustomerID.Bytes())
	}
	if f.RiderID != nil {
		stmt = stmt.Where("ra.rider_id = ?", f.RiderID.Bytes())
	}
	if f.UnassignedOnly {
		stmt = stmt.Where("ra.order_id IS NULL")
	}

	rows, err := stmt.Order("o.created_at DESC").Limit(f.Limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp           ListOrdersQueryResponse
			id, customerID uuid.UUID
			status         string
			total          decimal.Decimal
			riderID        *uuid.UUID
			createdAt      time.Time
		)
		err = rows.Scan(&id, &customerID, &status, &total, &resp.ItemCount,
			&resp.AddressLabel, &resp.AddressLine1, &riderID, &createdAt)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = toUUID(customerID); err != nil {
			return nil, err
		}
		if resp.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if resp.Total, err = toMoney(total); err != nil {
			return nil, err
		}
		if resp.RiderID, err = toOptionalUUID(riderID); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
