// Package redis provides read-through caching decorators for repositories.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/stowr/backend/domain"
	"github.com/stowr/backend/domain/asset"
	"github.com/stowr/backend/domain/location"
)

// cached wraps a repository with a Redis read-through cache. Create writes
// through to the cache, Fetch consults it before the underlying store.
type cached[E any, I comparable] struct {
	next   domain.Repository[E, I]
	client *redislib.Client
	prefix string
	ttl    time.Duration
	keyOf  func(I) string
	idOf   func(E) I
}

// NewCachedAssetRepository decorates an asset repository with Redis caching.
func NewCachedAssetRepository(next asset.AssetRepo, client *redislib.Client, ttl time.Duration) asset.AssetRepo {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &cached[asset.Asset, asset.AssetId]{
		next:   next,
		client: client,
		prefix: "asset:",
		ttl:    ttl,
		keyOf:  asset.AssetId.String,
		idOf:   func(a asset.Asset) asset.AssetId { return a.Id },
	}
}

// NewCachedLocationRepository decorates a location repository with Redis caching.
func NewCachedLocationRepository(next location.LocationRepo, client *redislib.Client, ttl time.Duration) location.LocationRepo {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &cached[location.Location, location.LocationId]{
		next:   next,
		client: client,
		prefix: "location:",
		ttl:    ttl,
		keyOf:  location.LocationId.String,
		idOf:   func(l location.Location) location.LocationId { return l.Id },
	}
}

func (r *cached[E, I]) Create(ctx context.Context, entity E) (E, error) {
	created, err := r.next.Create(ctx, entity)
	if err != nil {
		var zero E
		return zero, err
	}
	// Cache failures never fail the write path.
	r.put(ctx, created)
	return created, nil
}

func (r *cached[E, I]) Fetch(ctx context.Context, id I) (*E, error) {
	result, err := r.client.Get(ctx, r.key(id)).Result()
	if err == nil {
		var entity E
		if err := json.Unmarshal([]byte(result), &entity); err == nil {
			return &entity, nil
		}
	} else if err != redislib.Nil {
		return nil, err
	}

	entity, err := r.next.Fetch(ctx, id)
	if err != nil || entity == nil {
		return entity, err
	}
	r.put(ctx, *entity)
	return entity, nil
}

func (r *cached[E, I]) put(ctx context.Context, entity E) {
	payload, err := json.Marshal(entity)
	if err != nil {
		return
	}
	r.client.Set(ctx, r.key(r.idOf(entity)), payload, r.ttl)
}

func (r *cached[E, I]) key(id I) string {
	return fmt.Sprintf("%s%s", r.prefix, r.keyOf(id))
}
