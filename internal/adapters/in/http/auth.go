package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"campusdelivery/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
	errForbidden    = errors.New("actor is not allowed here")
)

// tokenTypes maps the typ claim to actor types. System actors never hold tokens.
var tokenTypes = map[string]kernel.ActorType{
	"admin":    kernel.ActorAdmin,
	"rider":    kernel.ActorRider,
	"customer": kernel.ActorCustomer,
}

// Claims are the HS256 token claims: sub is the actor id and typ its kind.
type Claims struct {
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

// Tokens issues and checks actor tokens. Admin and rider tokens are issued by
// the back office; this service only issues customer tokens after OTP sign-in.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the actor that expires after the configured ttl.
func (t *Tokens) Issue(actor kernel.Actor) (string, time.Time, error) {
	typ := ""
	for name, actorType := range tokenTypes {
		if actor.Is(actorType) {
			typ = name
		}
	}
	if typ == "" {
		return "", time.Time{}, fmt.Errorf("cannot issue a token for %s actors", actor.Type())
	}

	now := t.now()
	expiresAt := now.Add(t.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates the signature and expiry and returns the actor the token
// was issued to.
func (t *Tokens) Parse(raw string) (kernel.Actor, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", errInvalidToken, err)
	}

	actorType, ok := tokenTypes[claims.Type]
	if !ok {
		return kernel.Actor{}, fmt.Errorf("%w: unknown typ %q", errInvalidToken, claims.Type)
	}
	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", errInvalidToken, err)
	}
	actor, err := kernel.NewActor(actorType, id)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", errInvalidToken, err)
	}
	return actor, nil
}

// Require authenticates the bearer token and rejects actors of any other type.
func (t *Tokens) Require(actorType kernel.ActorType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, errMissingToken.Error())
			}

			actor, err := t.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, errInvalidToken.Error()).SetInternal(err)
			}
			if !actor.Is(actorType) {
				return echo.NewHTTPError(http.StatusForbidden, errForbidden.Error())
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFrom returns the actor stored by Require.
func actorFrom(ctx echo.Context) (kernel.Actor, error) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, errMissingToken.Error())
	}
	return actor, nil
}
