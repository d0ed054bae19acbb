package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-entities/internal/config"
	"github.com/sbilibin2017/gw-entities/internal/handlers"
	"github.com/sbilibin2017/gw-entities/internal/jwt"
	"github.com/sbilibin2017/gw-entities/internal/logger"
	"github.com/sbilibin2017/gw-entities/internal/middlewares"
	"github.com/sbilibin2017/gw-entities/internal/repositories"
	"github.com/sbilibin2017/gw-entities/internal/schema"
	"github.com/sbilibin2017/gw-entities/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-entities API
// @version 1.0.0
// @description Owner scoped CRUD over chat history, protocol recommendations, subscriptions and user profiles
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, optional Redis cache and Kafka writer,
// mounts the entity routes and serves HTTP until ctx is done or a signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.App.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	logger.Log.Infow("connected to postgres", "host", cfg.Postgres.Host, "db", cfg.Postgres.DB)

	registry := schema.DefaultRegistry()
	if cfg.App.InitSchema {
		for _, entity := range registry.All() {
			if _, err := db.ExecContext(ctx, entity.DDL()); err != nil {
				return fmt.Errorf("failed to create table %s: %w", entity.Table, err)
			}
		}
		logger.Log.Infow("schema initialized", "entities", len(registry.All()))
	}

	// Optional record cache
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		logger.Log.Infow("record cache enabled", "addr", cfg.Redis.Addr(), "ttl", cfg.Redis.TTL)
	}

	// Optional change events
	var kafkaWriter services.KafkaWriter
	if cfg.Kafka.Enabled() {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.Kafka.Brokers...),
			Topic:        cfg.Kafka.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.Kafka.BatchTimeout,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("change events enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	tokens := jwt.New(jwt.WithSecretKey(cfg.JWT.SecretKey))

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	handlers.RegisterHealthHandler(r, handlers.NewHealthHandler(db))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		auth := middlewares.AuthMiddleware(tokens)

		for _, entity := range registry.All() {
			repo := repositories.NewRecordRepository(db, middlewares.GetTxFromContext, entity)

			var cache services.RecordCache
			if rdb != nil {
				cache = repositories.NewRecordCacheRepository(rdb, cfg.Redis.TTL, entity)
			}

			svc := services.NewRecordService(entity, repo, repo, cache, kafkaWriter, middlewares.AfterCommit)
			handlers.RegisterRecordRoutes(r, entity, svc, auth)
		}
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.App.Addr())),
	))

	srv := &http.Server{
		Addr:         cfg.App.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infow("HTTP server listening", "addr", cfg.App.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
