package main

import (
	"context"
	stdlog "log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lucasvieira94/nola-god-level/internal/auth"
	"github.com/lucasvieira94/nola-god-level/internal/config"
	"github.com/lucasvieira94/nola-god-level/internal/db"
	"github.com/lucasvieira94/nola-god-level/internal/http/handlers"
	rl "github.com/lucasvieira94/nola-god-level/internal/http/rate_limiter"
	"github.com/lucasvieira94/nola-god-level/internal/logger"
	"github.com/lucasvieira94/nola-god-level/internal/redissvc"
	"github.com/lucasvieira94/nola-god-level/internal/repo"
	"github.com/lucasvieira94/nola-god-level/internal/summarizer"

	api "github.com/lucasvieira94/nola-god-level/internal/http"
)

// @title Nola Sales Analytics API
// @version 1.0
// @description REST API exposing sales aggregates, dashboard persistence and an AI question summarizer.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("invalid configuration: %v", err)
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("could not initialize logger: %v", err)
	}
	defer log.Sync()

	auth.SetSecret(cfg.JWTSecret)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("could not connect to database", zap.Error(err))
	}
	defer database.Close()

	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("could not connect to Redis", zap.Error(err))
	}
	defer rdb.Close()

	gemini, err := summarizer.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal("could not create completion client", zap.Error(err))
	}
	defer gemini.Close()

	go rl.StartVisitorCleanupLoop()

	handlers.SetAnalyticsRepo(repo.NewPostgresAnalyticsRepository(database))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))
	handlers.SetDashboardRepo(repo.NewPostgresDashboardRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetSummaryService(summarizer.New(gemini, cfg.SummaryTimeout))
	handlers.SetLogger(log)

	api.SetLogger(log)
	api.SetRedisService(redissvc.NewRedisService(rdb))
	api.SetSummaryQuota(cfg.SummaryDailyQuota)

	r := api.NewRouter()
	log.Info("server running", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
