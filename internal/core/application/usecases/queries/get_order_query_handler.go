package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle reports a foreign order the same way as a missing one.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.readOrder(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Items, err = h.readItems(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	return resp, nil
}

func (h GetOrderQueryHandler) readOrder(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.status,
			o.delivery_fee,
			o.subtotal,
			o.total,
			o.created_at,
			o.updated_at,
			COALESCE(a.label, ''),
			COALESCE(a.line1, ''),
			COALESCE(a.line2, ''),
			ra.rider_id,
			ra.assigned_at,
			p.amount,
			p.status,
			p.provider,
			p.created_at
		FROM orders o
		LEFT JOIN order_addresses a ON a.order_id = o.id
		LEFT JOIN rider_assignments ra ON ra.order_id = o.id
		LEFT JOIN payments p ON p.order_id = o.id
		WHERE o.id = ?
	`, query.orderID.Bytes()).Row()

	var (
		id, customerID       uuid.UUID
		status               string
		fee, subtotal, total decimal.Decimal
		resp                 GetOrderQueryResponse
		riderID              *uuid.UUID
		assignedAt           *time.Time
		paymentAmount        decimal.NullDecimal
		paymentStatus        *string
		paymentProvider      *string
		paidAt               *time.Time
	)
	err := row.Scan(
		&id, &customerID, &status, &fee, &subtotal, &total, &resp.CreatedAt, &resp.UpdatedAt,
		&resp.Address.Label, &resp.Address.Line1, &resp.Address.Line2,
		&riderID, &assignedAt,
		&paymentAmount, &paymentStatus, &paymentProvider, &paidAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.orderID.String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = toUUID(id); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = toUUID(customerID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if query.customerID != nil && !query.customerID.IsEqual(resp.CustomerID) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.orderID.String())
	}
	if resp.Status, err = order.ParseStatus(status); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.DeliveryFee, err = toMoney(fee); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Subtotal, err = toMoney(subtotal); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Total, err = toMoney(total); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.RiderID, err = toOptionalUUID(riderID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.AssignedAt = assignedAt

	if paymentAmount.Valid {
		amount, moneyErr := toMoney(paymentAmount.Decimal)
		if moneyErr != nil {
			return GetOrderQueryResponse{}, moneyErr
		}
		resp.Payment = &PaymentResponse{Amount: amount}
		if paymentStatus != nil {
			resp.Payment.Status = *paymentStatus
		}
		if paymentProvider != nil {
			resp.Payment.Provider = *paymentProvider
		}
		if paidAt != nil {
			resp.Payment.PaidAt = *paidAt
		}
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readItems(ctx context.Context, query GetOrderQuery) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.product_id,
			COALESCE(p.name, ''),
			oi.quantity,
			oi.unit_price,
			oi.discount_percent,
			oi.final_price
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY oi.position
	`, query.orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			item                  OrderItemResponse
			productID             uuid.UUID
			unitPrice, finalPrice decimal.Decimal
		)
		if err = rows.Scan(&productID, &item.ProductName, &item.Quantity, &unitPrice, &item.Discount, &finalPrice); err != nil {
			return nil, err
		}
		if item.ProductID, err = toUUID(productID); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = toMoney(unitPrice); err != nil {
			return nil, err
		}
		if item.FinalPrice, err = toMoney(finalPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
