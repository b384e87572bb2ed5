// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"wayfare/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// DialogueCtxCacheClient holds per-conversation dialogue contexts.
	DialogueCtxCacheClient *redis.Client
)

// InitRedis initializes all Redis clients up front so a bad address fails fast.
func InitRedis() {
	InitCache()
	InitDialogueCtxCache()
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// InitDialogueCtxCache initializes the Redis client for dialogue session contexts.
func InitDialogueCtxCache() {
	DialogueCtxCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDialogueCtxDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := DialogueCtxCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Dialogue Context Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// GetDialogueCtxCacheClient returns the Redis client for dialogue session contexts.
func GetDialogueCtxCacheClient() *redis.Client {
	if DialogueCtxCacheClient == nil {
		InitDialogueCtxCache()
	}
	return DialogueCtxCacheClient
}
