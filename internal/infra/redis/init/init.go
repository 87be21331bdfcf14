package infra_redis_init

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-redis/redis"
	"github.com/meulencv/wenomadus/internal/config"
)

func Addr(cfg config.RedisCache) string {
	return fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
}

// EstablishConn returns a client that answered a PING.
func EstablishConn(cfg config.RedisCache) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     Addr(cfg),
		Password: cfg.Password,
		DB:       0,
	})

	if err := client.Ping().Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", Addr(cfg), err)
	}
	return client, nil
}

func MustEstablishConn(cfg config.RedisCache) *redis.Client {
	client, err := EstablishConn(cfg)
	if err != nil {
		slog.Error("redis unavailable", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("redis connected", slog.String("addr", Addr(cfg)))
	return client
}
