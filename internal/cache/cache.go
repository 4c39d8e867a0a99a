package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fgaudin/file-gateway-go/internal/port"
	"github.com/redis/go-redis/v9"
)

// safetyMargin is how long before a URL's expiry its cache entry dies, so a
// hit never serves a URL about to go stale mid-download.
const safetyMargin = 5 * time.Minute

// entry is the stored value: the URL plus its expiry, so hits can report
// the remaining validity instead of the full signing window.
type entry struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetDownloadURL(ctx context.Context, objectKey string) (string, time.Time, error) {
	log.Printf("getting cached download URL for object %q...", objectKey)

	val, err := c.client.Get(ctx, getCacheKey(objectKey)).Result()
	if errors.Is(err, redis.Nil) {
		return "", time.Time{}, nil // cache miss
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("redis get failed: %w", err)
	}

	var e entry
	if err := json.Unmarshal([]byte(val), &e); err != nil {
		return "", time.Time{}, fmt.Errorf("corrupt cache entry for object %q: %w", objectKey, err)
	}
	return e.URL, e.ExpiresAt, nil
}

func (c *Cache) SetDownloadURL(ctx context.Context, objectKey, url string, expiresAt time.Time) {
	ttl := time.Until(expiresAt) - safetyMargin
	if ttl <= 0 {
		// not worth caching a URL that is already inside the margin
		return
	}

	log.Printf("caching download URL for object %q, valid until %s...", objectKey, expiresAt.Format(time.RFC1123))

	val, err := json.Marshal(entry{URL: url, ExpiresAt: expiresAt})
	if err != nil {
		log.Printf("could not encode cache entry for object %q: %v", objectKey, err)
		return
	}
	if err := c.client.Set(ctx, getCacheKey(objectKey), val, ttl).Err(); err != nil {
		// best effort: a failed write only costs a re-sign on the next read
		log.Printf("redis set failed for object %q: %v", objectKey, err)
	}
}

func (c *Cache) DeleteDownloadURL(ctx context.Context, objectKey string) error {
	log.Printf("evicting cached download URL for object %q...", objectKey)

	if err := c.client.Del(ctx, getCacheKey(objectKey)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(objectKey string) string {
	return "download_url:" + objectKey
}
