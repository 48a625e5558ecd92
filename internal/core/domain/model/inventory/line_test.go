package inventory_test

import (
	"testing"

	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(t *testing.T, id kernel.UUID, q int) inventory.Line {
	t.Helper()
	l, err := inventory.NewLine(id, q)
	require.NoError(t, err)
	return l
}

func TestNewLine(t *testing.T) {
	_, err := inventory.NewLine(kernel.NewUUID(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = inventory.NewLine(kernel.UUID{}, 1)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCoalesce(t *testing.T) {
	a, b, c := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	t.Run("sums duplicates and keeps first-seen order", func(t *testing.T) {
		out := inventory.Coalesce([]inventory.Line{
			line(t, b, 1), line(t, a, 2), line(t, b, 3), line(t, c, 1), line(t, a, 1),
		})

		require.Len(t, out, 3)
		assert.True(t, out[0].ProductID().IsEqual(b))
		assert.Equal(t, 4, out[0].Quantity())
		assert.True(t, out[1].ProductID().IsEqual(a))
		assert.Equal(t, 3, out[1].Quantity())
		assert.True(t, out[2].ProductID().IsEqual(c))
		assert.Equal(t, 1, out[2].Quantity())
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		in := []inventory.Line{line(t, a, 1), line(t, a, 1)}

		inventory.Coalesce(in)

		assert.Equal(t, 1, in[0].Quantity())
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, inventory.Coalesce(nil))
	})
}

func TestLockOrder(t *testing.T) {
	a, b, c := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	forward := inventory.LockOrder([]inventory.Line{line(t, a, 1), line(t, b, 2), line(t, c, 3), line(t, a, 1)})
	backward := inventory.LockOrder([]inventory.Line{line(t, c, 3), line(t, b, 2), line(t, a, 2)})

	require.Len(t, forward, 3)
	require.Len(t, backward, 3)
	for i := range forward {
		assert.True(t, forward[i].ProductID().IsEqual(backward[i].ProductID()), "position %d", i)
		assert.Equal(t, forward[i].Quantity(), backward[i].Quantity())
	}
	for i := 1; i < len(forward); i++ {
		assert.Less(t, forward[i-1].ProductID().String(), forward[i].ProductID().String())
	}
}

func TestProductError(t *testing.T) {
	id := kernel.NewUUID()
	err := inventory.NewProductError(id, inventory.ErrOutOfStock)

	require.ErrorIs(t, err, inventory.ErrOutOfStock)
	assert.Contains(t, err.Error(), id.String())
}
