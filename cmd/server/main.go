package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Skufu/climatehealth/internal/analysis"
	"github.com/Skufu/climatehealth/internal/api"
	"github.com/Skufu/climatehealth/internal/logger"
	"github.com/Skufu/climatehealth/internal/session"
	"github.com/Skufu/climatehealth/internal/validation"
)

type Config struct {
	Port         string
	ModelDir     string
	LogLevel     string
	LogFormat    string
	DatabaseURL  string
	EnableDB     bool
	CORSOrigins  []string
	MaxBodyBytes int64
}

func main() {
	gin.SetMode(getEnv("GIN_MODE", "release"))

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	var db api.HealthChecker
	if cfg.EnableDB {
		pool, err := connectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("database connection failed", zap.Error(err))
		}
		defer pool.Close()
		db = pool
	}

	models, err := analysis.LoadModels(cfg.ModelDir)
	if err != nil {
		log.Fatal("model load failed", zap.String("dir", cfg.ModelDir), zap.Error(err))
	}
	for _, info := range models.Info {
		log.Info("model loaded",
			zap.String("name", info.Name),
			zap.String("kind", info.Kind),
			zap.Int("features", len(info.Features)),
		)
	}

	validator, err := validation.New()
	if err != nil {
		log.Fatal("schema compile failed", zap.Error(err))
	}

	svc := analysis.NewService(models, session.NewMemoryStore[analysis.Result](), log)
	router := api.NewRouter(api.NewHandler(svc, validator, log), api.Options{
		DB:           db,
		Logger:       log,
		AllowOrigins: cfg.CORSOrigins,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	log.Info("server listening", zap.String("port", cfg.Port))
	waitForShutdown(server, log)
}

func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be a positive integer")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		ModelDir:     getEnv("MODEL_DIR", "models"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		EnableDB:     strings.EqualFold(getEnv("ENABLE_DB", "false"), "true"),
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "*")),
		MaxBodyBytes: maxBody,
	}

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}

	return cfg, nil
}

func connectDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return pool, nil
}

func waitForShutdown(server *http.Server, log *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
