package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/config"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/events"
	infralogger "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
	infraredis "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/redis"
)

// SetupEventPublisher creates an optional event publisher if Redis is configured.
// Returns nils if Redis is disabled or unavailable.
func SetupEventPublisher(ctx context.Context, cfg *config.Config, log infralogger.Logger) (*redis.Client, *events.Publisher) {
	if !cfg.Redis.Enabled() {
		return nil, nil
	}

	client, err := infraredis.NewClient(ctx, infraredis.Config{
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis not available, events disabled",
			infralogger.Error(err),
		)
		return nil, nil
	}

	log.Info("Event publisher initialized",
		infralogger.String("redis_address", cfg.Redis.Address),
	)
	return client, events.NewPublisher(client, log)
}
