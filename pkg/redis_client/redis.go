package redis_client

import (
	"context"

	"github.com/linkalls/norikae/pkg/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Client stays nil when no redis address is configured
var Client *redis.Client

func Connect(ctx context.Context, cfg config.RedisConfig) error {
	if cfg.Address == "" {
		log.Info().Msg("Skipping Redis setup, caching in process")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return err
	}

	Client = client

	log.Info().Str("address", cfg.Address).Int("database", cfg.Database).Msg("Redis client setup")

	return nil
}

func Close() error {
	if Client == nil {
		return nil
	}

	err := Client.Close()
	Client = nil

	return err
}
