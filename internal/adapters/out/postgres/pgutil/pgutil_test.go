package pgutil_test

import (
	"errors"
	"fmt"
	"testing"

	"campusdelivery/internal/adapters/out/postgres/pgutil"
	"campusdelivery/internal/core/domain/model/kernel"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})

	assert.True(t, pgutil.IsUniqueViolation(wrapped))
	assert.False(t, pgutil.IsUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, pgutil.IsUniqueViolation(errors.New("23505")))
	assert.False(t, pgutil.IsUniqueViolation(nil))
}

func TestActorColumns_RoundTrip(t *testing.T) {
	rider, err := kernel.NewActor(kernel.ActorRider, kernel.NewUUID())
	require.NoError(t, err)

	typ, id := pgutil.ActorColumns(rider)
	require.NotNil(t, id)
	back, err := pgutil.ActorFromColumns(typ, id)
	require.NoError(t, err)
	assert.True(t, back.Is(kernel.ActorRider))
	assert.True(t, back.ID().IsEqual(rider.ID()))

	typ, id = pgutil.ActorColumns(kernel.NewSystemActor())
	assert.Equal(t, "SYSTEM", typ)
	assert.Nil(t, id)
	back, err = pgutil.ActorFromColumns(typ, id)
	require.NoError(t, err)
	assert.True(t, back.Is(kernel.ActorSystem))

	_, err = pgutil.ActorFromColumns("ROBOT", nil)
	require.Error(t, err)
}
