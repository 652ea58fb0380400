package jwt

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "jwt:revoked:"

// RevocationStore remembers access tokens that were logged out before they
// expired. Entries only need to live until the token's own expiry.
type RevocationStore interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type memoryRevocationStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevocationStore() RevocationStore {
	return &memoryRevocationStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (m *memoryRevocationStore) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	now := m.now()
	if !expiresAt.After(now) {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[token] = expiresAt

	// drop whatever already expired so the map does not grow with every logout
	for t, exp := range m.entries {
		if !exp.After(now) {
			delete(m.entries, t)
		}
	}
	return nil
}

func (m *memoryRevocationStore) IsRevoked(_ context.Context, token string) (bool, error) {
	m.mu.RLock()
	exp, ok := m.entries[token]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return exp.After(m.now()), nil
}

type redisRevocationStore struct {
	client *redis.Client
}

func NewRedisRevocationStore(client *redis.Client) RevocationStore {
	return &redisRevocationStore{client: client}
}

func (r *redisRevocationStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedKeyPrefix+token, "1", ttl).Err()
}

func (r *redisRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
