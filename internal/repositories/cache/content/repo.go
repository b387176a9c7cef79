package cachecontentrepo

import (
	"context"
	cacherepo "mediaportal/internal/repositories/cache"
	"time"
)

// repository caches serialized document/audio records and list responses.
type repository struct {
	cache      cacherepo.Cache
	contentTTL time.Duration
}

func New(cache cacherepo.Cache, contentTTL time.Duration) *repository {
	return &repository{
		cache:      cache,
		contentTTL: contentTTL,
	}
}

func (r *repository) Get(ctx context.Context, key string) (string, error) {
	contentJSON, err := r.cache.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}

	return contentJSON, nil
}

func (r *repository) Set(ctx context.Context, key string, value interface{}) error {
	return r.cache.Set(ctx, key, value, r.contentTTL).Err()
}

func (r *repository) Del(ctx context.Context, keys ...string) error {
	return r.cache.Del(ctx, keys...).Err()
}
