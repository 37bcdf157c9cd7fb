package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/localbiz/marketplace-api/internal/logger"
	"github.com/localbiz/marketplace-api/internal/models"
)

// BusinessCacheRepository provides a Redis read-through cache of business
// DTOs. Misses and marshalling problems are soft failures: callers fall
// back to the database.
type BusinessCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewBusinessCacheRepository creates a cache repository with a TTL.
func NewBusinessCacheRepository(client *redis.Client, expiration time.Duration) *BusinessCacheRepository {
	return &BusinessCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func businessCacheKey(businessID uuid.UUID) string {
	return fmt.Sprintf("business:%s", businessID)
}

// Get returns the cached DTO for a business, (nil, nil) on cache miss.
func (r *BusinessCacheRepository) Get(ctx context.Context, businessID uuid.UUID) (*models.Business, error) {
	key := businessCacheKey(businessID)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	var business models.Business
	if err := json.Unmarshal([]byte(val), &business); err != nil {
		logger.Log.Errorw("corrupt cache entry", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return &business, nil
}

// Set caches the business DTO with the configured TTL.
func (r *BusinessCacheRepository) Set(ctx context.Context, business *models.Business) error {
	key := businessCacheKey(business.BusinessID)

	data, err := json.Marshal(business)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "set",
		"error", err,
	)

	return err
}

// Delete evicts a business from the cache after a mutation.
func (r *BusinessCacheRepository) Delete(ctx context.Context, businessID uuid.UUID) error {
	key := businessCacheKey(businessID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
