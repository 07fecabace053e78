package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/structs"
	"github.com/careerbuilder24/e-commerce-project/structs/tables"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

// CacheService provides Redis caching for catalog data, user lookups, the
// session blacklist and rate limit counters.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(cfg),
	}
}

func getRedisClient(cfg *structs.Config) *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			PoolSize:     cfg.Cache.PoolSize,
			MinIdleConns: cfg.Cache.MinIdleConns,

			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,
		})
	})
	return redisClient
}

func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// withRetry executes a Redis operation with bounded retries. Only network
// errors are retried, logical errors like a missing key are not.
func (cs *CacheService) withRetry(operation func() error, maxRetries int) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		if attempt == maxRetries {
			break
		}

		if !isRetryableCacheError(err) {
			return err
		}

		backoff := 100 * (1 << attempt) // ms
		if backoff > 2000 {
			backoff = 2000
		}
		time.Sleep(time.Duration(backoff) * time.Millisecond)
	}

	return fmt.Errorf("redis operation failed after %d retries: %w", maxRetries, lastErr)
}

func isRetryableCacheError(err error) bool {
	if err == nil || err == redis.Nil {
		return false
	}

	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}

// Set sets a key with TTL and automatic retry logic
func (cs *CacheService) Set(key string, value any, ttl time.Duration) error {
	return cs.withRetry(func() error {
		return cs.client.Set(redisCtx, key, value, ttl).Err()
	}, 3)
}

// Get retrieves a key, returning "" without error when the key is absent.
func (cs *CacheService) Get(key string) (string, error) {
	var result string

	err := cs.withRetry(func() error {
		val, err := cs.client.Get(redisCtx, key).Result()
		if err == redis.Nil {
			result = ""
			return nil
		}
		if err != nil {
			return err
		}
		result = val
		return nil
	}, 3)

	if err != nil {
		return "", err
	}

	return result, nil
}

// Delete removes a key with automatic retry logic
func (cs *CacheService) Delete(key string) error {
	return cs.withRetry(func() error {
		return cs.client.Del(redisCtx, key).Err()
	}, 3)
}

// DeleteByPattern removes every key matching the glob pattern.
func (cs *CacheService) DeleteByPattern(pattern string) error {
	return cs.withRetry(func() error {
		iter := cs.client.Scan(redisCtx, 0, pattern, 100).Iterator()
		for iter.Next(redisCtx) {
			if err := cs.client.Del(redisCtx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		return iter.Err()
	}, 3)
}

// getJSON retrieves and unmarshals a cached value, nil on cache miss.
func getJSON[T any](cs *CacheService, key string) (*T, error) {
	val, err := cs.Get(key)
	if err != nil {
		return nil, err
	}
	if val == "" {
		return nil, nil
	}

	var out T
	if err := json.Unmarshal([]byte(val), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func setJSON[T any](cs *CacheService, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cs.Set(key, data, ttl)
}

// ============================================================================
// Session blacklist
// ============================================================================

// BlacklistSession adds a session token's jti to the blacklist until the
// token would have expired anyway.
func (cs *CacheService) BlacklistSession(jti uuid.UUID, exp time.Time) error {
	ttl := cs.config.Auth.SessionExpiry
	if exp.After(time.Now()) {
		ttl = time.Until(exp)
	}

	key := fmt.Sprintf("blacklist:%s", jti)
	return cs.Set(key, "true", ttl)
}

// IsSessionBlacklisted checks if a jti exists in the blacklist
func (cs *CacheService) IsSessionBlacklisted(jti uuid.UUID) (bool, error) {
	key := fmt.Sprintf("blacklist:%s", jti.String())
	val, err := cs.Get(key)
	if err != nil {
		return false, err
	}

	return val == "true", nil
}

// ============================================================================
// User caching
// ============================================================================

func (cs *CacheService) GetUserFromCache(userID uuid.UUID) (*tables.User, error) {
	return getJSON[tables.User](cs, fmt.Sprintf("user:%s", userID.String()))
}

func (cs *CacheService) SetUserInCache(user *tables.User) error {
	if user == nil {
		return nil
	}
	return setJSON(cs, fmt.Sprintf("user:%s", user.ID.String()), user, cs.config.Cache.UserTTL)
}

func (cs *CacheService) DeleteUserFromCache(userID uuid.UUID) error {
	return cs.Delete(fmt.Sprintf("user:%s", userID.String()))
}

// ============================================================================
// Catalog caching
// ============================================================================

func (cs *CacheService) GetCategoriesFromCache() ([]tables.Category, error) {
	categories, err := getJSON[[]tables.Category](cs, "categories:active")
	if err != nil || categories == nil {
		return nil, err
	}
	return *categories, nil
}

func (cs *CacheService) SetCategoriesInCache(categories []tables.Category) error {
	return setJSON(cs, "categories:active", categories, cs.config.Cache.CatalogTTL)
}

func (cs *CacheService) GetProductFromCache(productID uuid.UUID) (*tables.Product, error) {
	return getJSON[tables.Product](cs, fmt.Sprintf("product:%s", productID.String()))
}

func (cs *CacheService) SetProductInCache(product *tables.Product) error {
	if product == nil {
		return nil
	}
	return setJSON(cs, fmt.Sprintf("product:%s", product.ID.String()), product, cs.config.Cache.CatalogTTL)
}

// InvalidateProduct drops the cached product after a write.
func (cs *CacheService) InvalidateProduct(productID uuid.UUID) error {
	return cs.Delete(fmt.Sprintf("product:%s", productID.String()))
}

// InvalidateVendorCatalog drops every cached product read. Cached product
// payloads denormalize the vendor name, so a profile change stales all of
// them at once.
func (cs *CacheService) InvalidateVendorCatalog() error {
	return cs.DeleteByPattern("product:*")
}

// ============================================================================
// Rate limiting
// ============================================================================

// IncrementRateLimit atomically increments a rate limit counter
func (cs *CacheService) IncrementRateLimit(ip, endpoint string, ttl time.Duration) (int, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)

	var result int64
	err := cs.withRetry(func() error {
		val, err := cs.client.Incr(redisCtx, key).Result()
		if err != nil {
			return err
		}
		result = val

		// Set expiration only on first increment
		if val == 1 {
			return cs.client.Expire(redisCtx, key, ttl).Err()
		}

		return nil
	}, 3)

	return int(result), err
}

// Ping tests the Redis connection
func (cs *CacheService) Ping() error {
	return cs.withRetry(func() error {
		return cs.client.Ping(redisCtx).Err()
	}, 3)
}

// GetConnectionStats returns Redis connection pool statistics
func (cs *CacheService) GetConnectionStats() map[string]any {
	stats := cs.client.PoolStats()

	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}
