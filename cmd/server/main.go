package main

import (
	"context"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/sdko-org/flag-proxy/internal/cache"
	"github.com/sdko-org/flag-proxy/internal/cdn"
	"github.com/sdko-org/flag-proxy/internal/config"
	"github.com/sdko-org/flag-proxy/internal/countries"
	"github.com/sdko-org/flag-proxy/internal/database"
	"github.com/sdko-org/flag-proxy/internal/flagurl"
	"github.com/sdko-org/flag-proxy/internal/handlers"
	"github.com/sdko-org/flag-proxy/internal/httpserver"
	"github.com/sdko-org/flag-proxy/internal/kv"
	"github.com/sdko-org/flag-proxy/internal/ratelimit"
	"github.com/sdko-org/flag-proxy/internal/storage"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	logger := logrus.New()
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(level)
	}

	cfg := config.Load()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.WithError(err).Fatal("Redis connection failed")
	}
	cancel()
	store := kv.NewRedisStore(rdb)

	var db *gorm.DB
	if cfg.AccessLogEnabled() {
		var err error
		db, err = database.NewPostgresDB(logger, database.PostgresConfig{
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPassword,
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			DBName:   cfg.PostgresDatabase,
			SSLMode:  cfg.PostgresSSLMode,
		})
		if err != nil {
			logger.WithError(err).Fatal("Database initialization failed")
		}
	}

	var byteCache storage.Storage
	if cfg.ByteCacheEnabled() {
		s3Store := storage.NewS3Storage(logger, cfg, db)
		byteCache = s3Store

		purger := cache.NewPurger(logger, db, s3Store)
		go purger.Start(context.Background())
	}

	limiter := ratelimit.New(logger, store, cfg.RateLimit, cfg.RateLimitWindow)
	resolver := countries.NewResolver(logger, cfg.LookupBaseURL)
	builder := flagurl.NewBuilder(logger, store, cfg.CDNBaseURL, cfg.CloudinaryCloudName, flagurl.DefaultAssets(), cfg.URLCacheTTL)
	cdnClient := cdn.NewClient(logger)

	handler := handlers.NewHandler(logger, cfg, resolver, builder, cdnClient, byteCache)

	r := mux.NewRouter()
	r.Use(handlers.LoggingMiddleware(logger, db), handlers.RateLimitMiddleware(logger, limiter))
	handlers.RegisterRoutes(r, handler)

	if err := httpserver.Run(logger, cfg.ListenAddr, r); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}
}
