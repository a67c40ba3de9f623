package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Dalopezos28/salon-bienestar/internal/models"
)

const (
	servicesKey = "salon:services"
	servicesTTL = 5 * time.Minute
)

// ServicesCache is a redis cache-aside layer for the service catalog. The
// catalog changes rarely but is requested on every page view, so a short TTL
// keeps the store quiet. A nil client disables the cache entirely.
type ServicesCache struct {
	rdb *redis.Client
}

func NewServicesCache(rdb *redis.Client) *ServicesCache {
	return &ServicesCache{rdb: rdb}
}

// Get returns the cached catalog and true on a hit. Misses and redis errors
// both report false; a failing cache must never surface to the caller.
func (c *ServicesCache) Get(ctx context.Context) ([]models.Service, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, servicesKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("services cache read failed: %v", err)
		}
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		log.Printf("services cache decode failed: %v", err)
		return nil, false
	}

	return services, true
}

func (c *ServicesCache) Set(ctx context.Context, services []models.Service) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(services)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, servicesKey, raw, servicesTTL).Err(); err != nil {
		log.Printf("services cache write failed: %v", err)
	}
}

// Invalidate drops the cached catalog, e.g. after re-seeding defaults.
func (c *ServicesCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, servicesKey).Err(); err != nil {
		log.Printf("services cache invalidate failed: %v", err)
	}
}
