package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/marierupasinghe/FreshEats/models"
	"github.com/marierupasinghe/FreshEats/services"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	FoodListCachePrefix = "foods:list:"
	DefaultCacheTTL     = 5 * time.Minute
)

// CacheManager handles the Redis caching of catalog listings. The catalog is
// static reference data, so entries only ever expire; there is no
// invalidation path.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(redis *redis.Client) *CacheManager {
	return &CacheManager{
		redis: redis,
		ttl:   DefaultCacheTTL,
	}
}

// GetFoodList retrieves a cached food listing for the given controls.
func (cm *CacheManager) GetFoodList(ctx context.Context, params services.FoodListParams) ([]models.FoodItem, bool) {
	cachedData, err := cm.redis.Get(ctx, foodListCacheKey(params)).Result()
	if err != nil {
		return nil, false
	}

	var items []models.FoodItem
	if err := json.Unmarshal([]byte(cachedData), &items); err != nil {
		zap.L().Warn("Failed to unmarshal cached food list", zap.Error(err))
		return nil, false
	}
	return items, true
}

// SetFoodListAsync caches a food listing without blocking the request.
func (cm *CacheManager) SetFoodListAsync(params services.FoodListParams, items []models.FoodItem) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		jsonBytes, err := json.Marshal(items)
		if err != nil {
			zap.L().Warn("Failed to marshal food list for cache", zap.Error(err))
			return
		}

		if err := cm.redis.Set(bgCtx, foodListCacheKey(params), jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache food list", zap.Error(err))
		}
	}()
}

// foodListCacheKey hashes the control values so user-supplied text cannot
// collide with the key structure.
func foodListCacheKey(params services.FoodListParams) string {
	sum := sha256.Sum256([]byte(params.Search + "\x00" + params.Category + "\x00" + params.Sort))
	return FoodListCachePrefix + hex.EncodeToString(sum[:])
}
