package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/stockland/cmd/config"
	"github.com/muhammadheryan/stockland/thirdparty/rabbitmq"
	"github.com/muhammadheryan/stockland/utils/logger"
	"go.uber.org/zap"
)

// Consumer of property-deleted events. Each event is forwarded to the API's
// internal purge endpoint, which removes favorites of the deleted property.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required by the consumer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.APIURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Consumer running", zap.String("api_url", cfg.Internal.APIURL))
	<-ctx.Done()
	logger.Info("Shutting down consumer")
}
