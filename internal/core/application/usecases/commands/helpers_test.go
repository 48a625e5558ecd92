package commands_test

import (
	"testing"
	"time"

	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustPercent(t *testing.T, v int64) kernel.Percent {
	t.Helper()
	p, err := kernel.NewPercent(decimal.NewFromInt(v))
	require.NoError(t, err)
	return p
}

func mustLine(t *testing.T, productID kernel.UUID, qty int) inventory.Line {
	t.Helper()
	l, err := inventory.NewLine(productID, qty)
	require.NoError(t, err)
	return l
}

func mustActor(t *testing.T, typ kernel.ActorType) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(typ, kernel.NewUUID())
	require.NoError(t, err)
	return a
}

func mustAddress(t *testing.T) order.Address {
	t.Helper()
	a, err := order.NewAddress("Hostel", "Block C, Room 12", "")
	require.NoError(t, err)
	return a
}

// sortedIDs returns two product ids in the order stock rows are locked.
func sortedIDs() (kernel.UUID, kernel.UUID) {
	a, b := kernel.NewUUID(), kernel.NewUUID()
	if a.String() > b.String() {
		return b, a
	}
	return a, b
}

type storedLine struct {
	productID kernel.UUID
	qty       int
}

// restoredOrder builds a stored order with 10.00 items and no discount.
func restoredOrder(t *testing.T, id kernel.UUID, status order.Status, lines ...storedLine) *order.Order {
	t.Helper()
	items := make([]order.Item, 0, len(lines))
	for _, s := range lines {
		item, err := order.NewItem(s.productID, s.qty, mustMoney(t, "10.00"), mustPercent(t, 0))
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.NewOrder(id, kernel.NewUUID(), mustAddress(t), items, mustMoney(t, "5.00"))
	require.NoError(t, err)

	restored, err := order.RestoreOrder(
		o.ID(), o.CustomerID(), status, o.Address(), o.Items(),
		o.DeliveryFee(), o.Subtotal(), o.Total(), time.Now().UTC(),
	)
	require.NoError(t, err)
	return restored
}
