package store

import (
	"context"
	"fmt"

	"github.com/ndanilenko/authgate/internal/config"
	"github.com/ndanilenko/authgate/internal/logger"
	"github.com/redis/go-redis/v9"
)

// NewConnectRedis opens and pings the Redis connection used for session
// references.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting session cache (ping)")
		return nil, fmt.Errorf("error occured during session cache connection: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to session cache successfully")

	return client, nil
}
