package kernel_test

import (
	"testing"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("rider actor keeps its id", func(t *testing.T) {
		a, err := kernel.NewActor(kernel.ActorRider, id)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.Is(kernel.ActorRider))
		assert.True(t, a.ID().IsEqual(id))
	})

	t.Run("non-system actors need an id", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.ActorAdmin, kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("system actor has no id", func(t *testing.T) {
		a, err := kernel.NewActor(kernel.ActorSystem, id)

		require.NoError(t, err)
		assert.True(t, a.ID().IsZero())
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := kernel.NewActor("COURIER", id)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var a kernel.Actor

		require.Error(t, a.Validate())
	})
}
