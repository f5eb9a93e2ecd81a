package console

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Guard serialises submissions: while a key is held, Acquire on the same key
// fails with ErrBusy.
type Guard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard holds keys in Redis so every console instance sees them. A key
// expires after ttl even if its holder never releases it.
type RedisGuard struct {
	client redis.UniversalClient
	ttl    time.Duration
	onErr  func(error)
}

// NewRedisGuard constructs a RedisGuard. onErr receives release failures and
// may be nil.
func NewRedisGuard(client redis.UniversalClient, ttl time.Duration, onErr func(error)) *RedisGuard {
	return &RedisGuard{client: client, ttl: ttl, onErr: onErr}
}

// Acquire implements Guard.
func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("console: acquire %s: %w", key, err)
	}
	if !ok {
		return nil, ErrBusy
	}
	return func() {
		// Released even when the request context is already done.
		rctx := context.WithoutCancel(ctx)
		if err := releaseScript.Run(rctx, g.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) && g.onErr != nil {
			g.onErr(err)
		}
	}, nil
}

// MemoryGuard is an in-process Guard.
type MemoryGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemoryGuard constructs a MemoryGuard.
func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{held: make(map[string]struct{})}
}

// Acquire implements Guard.
func (g *MemoryGuard) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.held[key]; busy {
		return nil, ErrBusy
	}
	g.held[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}
