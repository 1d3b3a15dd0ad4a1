package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	favoriteapp "github.com/muhammadheryan/stockland/application/favorite"
	propertyapp "github.com/muhammadheryan/stockland/application/property"
	userapp "github.com/muhammadheryan/stockland/application/user"
	"github.com/muhammadheryan/stockland/cmd/config"
	redisclient "github.com/muhammadheryan/stockland/cmd/redis"
	_ "github.com/muhammadheryan/stockland/docs"
	favoriteRepo "github.com/muhammadheryan/stockland/repository/favorite"
	propertyRepo "github.com/muhammadheryan/stockland/repository/property"
	redisRepo "github.com/muhammadheryan/stockland/repository/redis"
	txRepo "github.com/muhammadheryan/stockland/repository/tx"
	userRepo "github.com/muhammadheryan/stockland/repository/user"
	"github.com/muhammadheryan/stockland/thirdparty/rabbitmq"
	"github.com/muhammadheryan/stockland/transport"
	"github.com/muhammadheryan/stockland/utils/logger"
	"go.uber.org/zap"
)

// @title STOCKLAND API
// @version 1.0
// @description Property listing and search API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.Connect(ctx, cfg.Redis); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Deleting a property still works without a broker; favorites are then
	// only removed by the foreign key cascade.
	var publisher rabbitmq.EventPublisher
	rmq, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, property events disabled", zap.Error(err))
	} else {
		publisher = rmq
		defer rmq.Close()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	PropertyRepo := propertyRepo.NewPropertyRepository(db)
	FavoriteRepo := favoriteRepo.NewFavoriteRepository(db)
	TxRepo := txRepo.NewTxRepository(db, sql.LevelReadCommitted)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	PropertyApp := propertyapp.NewPropertyApp(cfg, PropertyRepo, UserRepo, publisher)
	FavoriteApp := favoriteapp.NewFavoriteApp(TxRepo, FavoriteRepo, PropertyRepo)

	httpTransport := transport.NewTransport(UserApp, PropertyApp, FavoriteApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
