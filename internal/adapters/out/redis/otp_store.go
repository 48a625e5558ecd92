// Package redis keeps one-time sign-in codes with an expiry.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:customer:"

// verifyScript deletes the code only when it matches, so a code can be used
// once and a wrong guess does not consume it.
var verifyScript = redis.NewScript(`
local stored = redis.call("GET", KEYS[1])
if stored and stored == ARGV[1] then
	redis.call("DEL", KEYS[1])
	return 1
end
return 0
`)

// OTPStore implements ports.OTPStore.
type OTPStore struct {
	client redis.UniversalClient
}

func NewOTPStore(client redis.UniversalClient) *OTPStore {
	return &OTPStore{client: client}
}

// NewClient builds a client and checks the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

func key(phone string) string {
	return keyPrefix + phone
}

// Put replaces any code already issued for the phone.
func (s *OTPStore) Put(ctx context.Context, phone, code string, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.New("otp ttl must be positive")
	}
	return s.client.Set(ctx, key(phone), code, ttl).Err()
}

func (s *OTPStore) Verify(ctx context.Context, phone, code string) (bool, error) {
	n, err := verifyScript.Run(ctx, s.client, []string{key(phone)}, code).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
