package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-jobportal-forms/internal/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "inflight:"

// releaseScript deletes the key only if it still holds the caller's token
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisGuard struct {
	client *goredis.Client
}

// NewInflightGuard creates a Redis-backed guard using SET NX with a TTL, so a
// crashed handler cannot hold a key forever.
func NewInflightGuard(client *goredis.Client) domain.InflightGuard {
	return &redisGuard{client: client}
}

func (g *redisGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, keyPrefix+key, token, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("redis inflight acquire failed: %w", err)
	}
	if !ok {
		return "", domain.ErrSubmissionInFlight
	}
	return token, nil
}

func (g *redisGuard) Release(ctx context.Context, key, token string) error {
	if err := releaseScript.Run(ctx, g.client, []string{keyPrefix + key}, token).Err(); err != nil {
		return fmt.Errorf("redis inflight release failed: %w", err)
	}
	return nil
}

type claim struct {
	token     string
	expiresAt time.Time
}

// memoryGuard is the single-process fallback when Redis is unavailable
type memoryGuard struct {
	mu    sync.Mutex
	held  map[string]claim
	clock func() time.Time
}

func NewMemoryInflightGuard() domain.InflightGuard {
	return &memoryGuard{
		held:  make(map[string]claim),
		clock: time.Now,
	}
}

func (g *memoryGuard) Acquire(_ context.Context, key string, ttl time.Duration) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock()
	if c, ok := g.held[key]; ok && now.Before(c.expiresAt) {
		return "", domain.ErrSubmissionInFlight
	}
	token := uuid.NewString()
	g.held[key] = claim{token: token, expiresAt: now.Add(ttl)}
	return token, nil
}

func (g *memoryGuard) Release(_ context.Context, key, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.held[key]; ok && c.token == token {
		delete(g.held, key)
	}
	return nil
}
