package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/api"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/auth"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/config"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/database"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/news"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/repository"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/service"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/session"
	"github.com/PMerupula/Homework-3--Developing-Backend/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting campus news backend...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.News.APIKey == "" {
		log.Warn().Msg("NYT_API_KEY is not set; /api/articles will return errors")
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize session store; sessions live in Redis, so a dead Redis is
	// fatal
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		cancel()
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
	}
	cancel()
	sessions := session.NewRedisStore(rdb)

	// Initialize identity mapping and OIDC
	roles := auth.NewRoles(auth.ParseRoleMap(cfg.Auth.RoleMap))

	oidcCtx, cancelOIDC := context.WithTimeout(context.Background(), 10*time.Second)
	authn, err := auth.NewAuthenticator(oidcCtx, cfg.OIDC.Issuer, cfg.OIDC.ClientID, cfg.OIDC.ClientSecret, cfg.OIDC.RedirectURL)
	cancelOIDC()
	if err != nil {
		log.Fatal().Err(err).Str("issuer", cfg.OIDC.Issuer).Msg("Failed to reach identity provider")
	}

	// Initialize repositories and services
	repos := repository.New(db)
	searcher := news.NewClient(log)
	aggregator := news.NewAggregator(searcher, cfg.News.APIKey, nil)
	services := service.NewServices(repos, roles, aggregator, log)

	// Initialize router
	router := api.NewRouter(services, sessions, authn, roles, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
