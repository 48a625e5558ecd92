// Package pgutil holds column mappings and error classification shared by the
// gorm repositories.
package pgutil

import (
	"errors"

	"campusdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE Postgres reports for a unique or primary
// key conflict.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err, at any depth, is a Postgres unique
// constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// ActorColumns splits an actor into its stored type and nullable id.
func ActorColumns(actor kernel.Actor) (string, *uuid.UUID) {
	if actor.ID().IsZero() {
		return string(actor.Type()), nil
	}
	id := actor.ID().Bytes()
	return string(actor.Type()), &id
}

// ActorFromColumns is the inverse of ActorColumns.
func ActorFromColumns(typ string, id *uuid.UUID) (kernel.Actor, error) {
	actorType, err := kernel.ParseActorType(typ)
	if err != nil {
		return kernel.Actor{}, err
	}
	if id == nil {
		return kernel.NewActor(actorType, kernel.UUID{})
	}
	actorID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(actorType, actorID)
}

// UUIDs converts domain ids for use in IN (?) clauses.
func UUIDs(ids []kernel.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}
