package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arim/yt-utility-go/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Service is a small JSON-over-Redis cache. When caching is disabled in the
// configuration the service still constructs and every call becomes a no-op,
// so callers never branch on the flag themselves.
type Service struct {
	client     *redis.Client
	defaultTTL time.Duration
	logger     *zap.Logger
}

// New connects to Redis when caching is enabled. A connection failure is an
// error only in that case; disabled caching never touches the network.
func New(cfg config.CacheConfig, logger *zap.Logger) (*Service, error) {
	if !cfg.Enabled {
		logger.Info("Response cache disabled")
		return &Service{defaultTTL: cfg.TTL, logger: logger}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return &Service{client: client, defaultTTL: cfg.TTL, logger: logger}, nil
}

// Enabled reports whether a Redis backend is attached.
func (s *Service) Enabled() bool {
	return s != nil && s.client != nil
}

// Get unmarshals the cached value into dest and reports whether the key was
// present. Cache failures degrade to a miss.
func (s *Service) Get(ctx context.Context, key string, dest any) bool {
	if !s.Enabled() {
		return false
	}

	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		s.logger.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		return false
	}

	if err := json.Unmarshal([]byte(value), dest); err != nil {
		s.logger.Warn("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
		return false
	}

	return true
}

// Set stores value as JSON. A zero ttl uses the configured default.
func (s *Service) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if !s.Enabled() {
		return
	}

	jsonData, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	if err := s.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		s.logger.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Close releases the Redis connection pool.
func (s *Service) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.client.Close()
}
