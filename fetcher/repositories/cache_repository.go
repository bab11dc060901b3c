package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lolladder/pkg/redis"
)

// ErrCacheMiss is returned when the account isn't cached.
var ErrCacheMiss = errors.New("cache miss")

// KeyValueStore is the subset of the Redis client used by the cache.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Public Interface.
type AccountCacheRepository interface {
	GetPuuid(ctx context.Context, region string, gameName string, tagLine string) (string, error)
	SetPuuid(ctx context.Context, region string, gameName string, tagLine string, puuid string) error
}

// Account cache repository structure.
type accountCacheRepository struct {
	store KeyValueStore
	ttl   time.Duration
}

// Create a account cache repository.
// Puuids never change for a account, so the ttl can be long.
func NewAccountCacheRepository(store KeyValueStore, ttl time.Duration) AccountCacheRepository {
	return &accountCacheRepository{store: store, ttl: ttl}
}

// Riot IDs are case insensitive.
func accountKey(region string, gameName string, tagLine string) string {
	return fmt.Sprintf("account:%s:%s#%s",
		strings.ToLower(region), strings.ToLower(strings.TrimSpace(gameName)), strings.ToLower(strings.TrimSpace(tagLine)))
}

// GetPuuid returns the cached puuid for a Riot ID.
func (r *accountCacheRepository) GetPuuid(ctx context.Context, region string, gameName string, tagLine string) (string, error) {
	puuid, err := r.store.Get(ctx, accountKey(region, gameName, tagLine))
	if err != nil {
		if redis.IsNil(err) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("couldn't read the account cache: %w", err)
	}

	if puuid == "" {
		return "", ErrCacheMiss
	}
	return puuid, nil
}

// SetPuuid caches the puuid for a Riot ID.
func (r *accountCacheRepository) SetPuuid(ctx context.Context, region string, gameName string, tagLine string, puuid string) error {
	if err := r.store.Set(ctx, accountKey(region, gameName, tagLine), puuid, r.ttl); err != nil {
		return fmt.Errorf("couldn't write the account cache: %w", err)
	}
	return nil
}
