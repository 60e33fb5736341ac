package redis

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/nftvault/marketapi/base/ctx"
)

const (
	// Forever means the key has no associated expire
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil

	// ErrNoTTL is returned by TTL when the key exists but has no associated expire
	ErrNoTTL = fmt.Errorf("key has no associated expire")

	// ErrExpireNotExistOrTimeout is returned by Expire when the key does not
	// exist or the timeout could not be set
	ErrExpireNotExistOrTimeout = fmt.Errorf("key not exist or timeout cannot be set")

	// ErrGapTime is returned when no pool is available to serve the command
	ErrGapTime = fmt.Errorf("during gap time, command is not allowed")
)

// Service abstract the redis layer
type Service interface {
	// Get gets the value of key
	Get(context ctx.Ctx, key string) (val []byte, err error)

	// Set sets key to hold val with the given expire. Passing Forever keeps
	// the key until deleted.
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// SetNX sets key to hold val only if key does not exist
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// Del removes the given keys and returns the number of keys removed
	Del(context ctx.Ctx, keys ...string) (int, error)

	// Expire sets a timeout on key
	Expire(context ctx.Ctx, key string, ttl time.Duration) error

	// Exists reports whether key exists
	Exists(context ctx.Ctx, key string) (bool, error)

	// TTL returns the remaining time to live of key in seconds.
	// Return ErrNotFound if the key does not exist, ErrNoTTL if the key
	// exists but has no associated expire.
	TTL(context ctx.Ctx, key string) (int, error)

	// Incr increments the number stored at key by one. If the key does not
	// exist, it is set to 0 before performing the operation.
	Incr(context ctx.Ctx, key string) (int64, error)

	// Incrby increments the number stored at key by val
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
}
