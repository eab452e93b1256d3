package database

import (
	"context"
	"fmt"
	"log"
	"mindwell_backend/internal/config"
	"time"

	"github.com/go-redis/redis/v8"
)

// InitRedis 建立连接并确认可达，摘要缓存依赖它，起不来就直接失败
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	log.Printf("Redis connected at %s", addr)
	return rdb, nil
}
