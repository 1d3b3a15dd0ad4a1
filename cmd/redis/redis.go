package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/stockland/cmd/config"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// client backs the session repository; nil until Connect succeeds.
var client *redis.Client

// Connect dials Redis and only exposes the client once it answers a ping.
func Connect(ctx context.Context, cfg config.RedisConfig) error {
	c := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr(),
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: pingTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("ping redis at %s: %w", cfg.Addr(), err)
	}

	client = c
	return nil
}

func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
