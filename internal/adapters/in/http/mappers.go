package http

import (
	"campusdelivery/internal/core/application/usecases/queries"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func bindBody(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	return ctx.Validate(body)
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalAPIUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

// percentFromString treats an empty discount as no discount.
func percentFromString(s string) (kernel.Percent, error) {
	value := decimal.Zero
	if s != "" {
		var err error
		if value, err = decimal.NewFromString(s); err != nil {
			return kernel.Percent{}, errs.NewValueIsInvalidErrorWithCause("discount", err)
		}
	}
	return kernel.NewPercent(value)
}

func toPlacedOrder(o *order.Order) PlacedOrder {
	return PlacedOrder{
		ID:          o.ID().Bytes(),
		Status:      o.Status().String(),
		Subtotal:    o.Subtotal().String(),
		DeliveryFee: o.DeliveryFee().String(),
		Total:       o.Total().String(),
	}
}

func toOrderSummaries(rows []queries.ListOrdersQueryResponse) []OrderSummary {
	out := make([]OrderSummary, len(rows))
	for i, row := range rows {
		out[i] = OrderSummary{
			ID:           row.ID.Bytes(),
			CustomerID:   row.CustomerID.Bytes(),
			Status:       row.Status.String(),
			Total:        row.Total.String(),
			ItemCount:    row.ItemCount,
			AddressLabel: row.AddressLabel,
			AddressLine1: row.AddressLine1,
			RiderID:      toOptionalAPIUUID(row.RiderID),
			CreatedAt:    row.CreatedAt,
		}
	}
	return out
}

func toOrderDetails(details queries.GetOrderQueryResponse) OrderDetails {
	items := make([]OrderItem, len(details.Items))
	for i, item := range details.Items {
		items[i] = OrderItem{
			ProductID:   item.ProductID.Bytes(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			Discount:    item.Discount.StringFixed(kernel.MoneyScale),
			FinalPrice:  item.FinalPrice.String(),
		}
	}

	out := OrderDetails{
		ID:         details.ID.Bytes(),
		CustomerID: details.CustomerID.Bytes(),
		Status:     details.Status.String(),
		Address: Address{
			Label: details.Address.Label,
			Line1: details.Address.Line1,
			Line2: details.Address.Line2,
		},
		Items:       items,
		Subtotal:    details.Subtotal.String(),
		DeliveryFee: details.DeliveryFee.String(),
		Total:       details.Total.String(),
		RiderID:     toOptionalAPIUUID(details.RiderID),
		AssignedAt:  details.AssignedAt,
		CreatedAt:   details.CreatedAt,
		UpdatedAt:   details.UpdatedAt,
	}
	if p := details.Payment; p != nil {
		out.Payment = &Payment{
			Amount:   p.Amount.String(),
			Status:   p.Status,
			Provider: p.Provider,
			PaidAt:   p.PaidAt,
		}
	}
	return out
}

func toOrderEvents(rows []queries.GetOrderEventsQueryResponse) []OrderEvent {
	out := make([]OrderEvent, len(rows))
	for i, row := range rows {
		out[i] = OrderEvent{
			ID:        row.ID.Bytes(),
			From:      row.From.String(),
			To:        row.To.String(),
			ActorType: string(row.ActorType),
			ActorID:   toOptionalAPIUUID(row.ActorID),
			Reason:    row.Reason,
			CreatedAt: row.CreatedAt,
		}
	}
	return out
}

func toInventoryItem(row queries.InventoryItemResponse) InventoryItem {
	return InventoryItem{
		ProductID:       row.ProductID.Bytes(),
		ProductName:     row.ProductName,
		ProductIsActive: row.ProductIsActive,
		CostPrice:       row.CostPrice.String(),
		SellingPrice:    row.SellingPrice.String(),
		Discount:        row.Discount.StringFixed(kernel.MoneyScale),
		Quantity:        row.Quantity,
		MinQuantity:     row.MinQuantity,
		LowStock:        row.Quantity < row.MinQuantity,
		UpdatedAt:       row.UpdatedAt,
	}
}

func toInventoryItems(rows []queries.InventoryItemResponse) []InventoryItem {
	out := make([]InventoryItem, len(rows))
	for i, row := range rows {
		out[i] = toInventoryItem(row)
	}
	return out
}

func toInventoryMovements(rows []queries.GetInventoryMovementsQueryResponse) []InventoryMovement {
	out := make([]InventoryMovement, len(rows))
	for i, row := range rows {
		out[i] = InventoryMovement{
			ID:            row.ID.Bytes(),
			ProductID:     row.ProductID.Bytes(),
			Delta:         row.Delta,
			Reason:        string(row.Reason),
			ReferenceType: string(row.ReferenceType),
			ReferenceID:   row.ReferenceID,
			ActorType:     string(row.ActorType),
			ActorID:       toOptionalAPIUUID(row.ActorID),
			CreatedAt:     row.CreatedAt,
		}
	}
	return out
}
