// @title        Blood Donation Coordination API
// @version      1.0
// @description  Donor directory, blood request board, and admin access endpoints.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/bloodconnect/donation-system/internal/api"
	"github.com/bloodconnect/donation-system/internal/core/service"
	"github.com/bloodconnect/donation-system/internal/infrastructure/config"
	mongodb "github.com/bloodconnect/donation-system/internal/infrastructure/db/mongo"
	redisdb "github.com/bloodconnect/donation-system/internal/infrastructure/db/redis"
	"github.com/bloodconnect/donation-system/pkg/logger"
)

const (
	mongoRetryAttempts = 10
	mongoRetryInterval = 3 * time.Second
	shutdownTimeout    = 5 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	// --- MongoDB (retried: the database may come up after the service) ---
	client, db, err := mongodb.ConnectWithRetry(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	}, mongoRetryAttempts, mongoRetryInterval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	// --- Redis (optional: contact dedup degrades gracefully without it) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, contact dedup disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// --- Bootstrap admin (one-time, only when the admins collection is empty) ---
	if cfg.Admin.Password != "" {
		authService := service.NewAuthService(mongodb.NewAdminRepository(db), cfg.JWTSecret, 24*time.Hour, log)
		if err := authService.EnsureDefaultAdmin(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("failed to bootstrap admin account")
		}
	}

	e := api.NewRouter(api.Deps{
		DB:     db,
		Redis:  rdb,
		Config: cfg,
		Logger: log,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: e,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting blood donation server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		log.Info().Msg("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("application terminated with error")
	}
}

// ensureIndexes creates the uniqueness and search indexes each collection
// relies on. Safe to run on every startup; index creation is idempotent.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewDonorRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("donor indexes: %w", err)
	}
	if err := mongodb.NewRequestRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("request indexes: %w", err)
	}
	if err := mongodb.NewAdminRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("admin indexes: %w", err)
	}
	return nil
}
