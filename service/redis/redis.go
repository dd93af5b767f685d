package redis

import (
	"errors"
	"time"

	"github.com/solmart/goapi/base/ctx"
)

// Forever means the key has no expiration
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")

	// ErrNoTTL is returned when the key exists but has no associated expire
	ErrNoTTL = errors.New("redis key has no ttl")
)

// Service provides interface for accessing redis
type Service interface {
	// Get returns the value of key, or ErrNotFound if the key does not exist
	Get(context ctx.Ctx, key string) (val []byte, err error)

	// Set sets key to hold val with the given expiration. Forever means no expiration.
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// SetNX sets key only if it does not exist yet
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// Del removes the given keys and returns the number of keys removed
	Del(context ctx.Ctx, keys ...string) (int, error)

	// Exists returns if the key exists
	Exists(context ctx.Ctx, key string) (bool, error)

	// TTL returns the remaining time to live of a key in seconds
	TTL(context ctx.Ctx, key string) (int, error)

	// Incrby increments the number stored at key by val
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
}
