package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

// NewClient creates a Redis client and verifies connectivity
func NewClient(ctx context.Context, cfg config.RedisConfig, logger coreport.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	logger.Info("Redis connection established", map[string]any{
		"addr": cfg.Addr,
		"db":   cfg.DB,
	})

	return client, nil
}
