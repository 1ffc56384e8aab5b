package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/utils"
)

// CacheService fronts Redis for read-heavy dashboard and roster
// responses. All methods are best-effort: cache failures degrade to a
// miss, never to a request failure.
type CacheService interface {
	GetJSON(ctx context.Context, key string, dest any) bool
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

type cacheService struct {
	client *redis.Client
	log    *logger.Logger
}

func NewCacheService(log *logger.Logger) (CacheService, error) {
	serviceLog := log.With("service", "CacheService")
	addr := utils.GetEnv("REDIS_ADDR", "localhost:6379", log)
	password := utils.GetEnv("REDIS_PASSWORD", "", log)
	db := utils.GetEnvAsInt("REDIS_DB", 0, log)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		serviceLog.Warn("Redis unreachable, caching disabled", "addr", addr, "error", err)
		return &cacheService{client: nil, log: serviceLog}, nil
	}
	return &cacheService{client: client, log: serviceLog}, nil
}

func (s *cacheService) GetJSON(ctx context.Context, key string, dest any) bool {
	if s.client == nil {
		return false
	}
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warn("Cache entry is not valid JSON, dropping", "key", key, "error", err)
		s.client.Del(ctx, key)
		return false
	}
	return true
}

func (s *cacheService) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if s.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("Failed to marshal cache value", "key", key, "error", err)
		return
	}
	if err := s.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		s.log.Warn("Failed to set cache value", "key", key, "error", err)
	}
}

func (s *cacheService) Delete(ctx context.Context, keys ...string) {
	if s.client == nil || len(keys) == 0 {
		return
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn("Failed to delete cache keys", "keys", keys, "error", err)
	}
}
