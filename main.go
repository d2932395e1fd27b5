package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/monitoring-dashboard/api/v1"
	"github.com/monitoring-dashboard/cache"
	"github.com/monitoring-dashboard/config"
	"github.com/monitoring-dashboard/database"
	"github.com/monitoring-dashboard/logger"
	"github.com/monitoring-dashboard/middleware"
	"github.com/monitoring-dashboard/repositories"
	"github.com/monitoring-dashboard/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load(config.GetEnv("CONFIG_FILE", config.DefaultConfigFile))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Open(cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("Failed to migrate database", zap.Error(err))
	}
	if cfg.Database.SeedSampleData {
		if _, err := database.SeedIfEmpty(db, zlog); err != nil {
			zlog.Fatal("Failed to seed sample data", zap.Error(err))
		}
	}

	svc := services.New(repositories.New(db), summaryCache(cfg.Redis, zlog), zlog)

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS configuration
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RequestID(), middleware.RequestLogger(zlog), middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register API routes
	api := router.Group("/api")
	v1.RegisterRoutes(api, svc, db, zlog)

	zlog.Info("Monitoring dashboard starting", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}

// summaryCache uses Redis when configured and reachable, otherwise nothing is cached
func summaryCache(cfg config.RedisConfig, zlog *zap.Logger) services.SummaryCache {
	if cfg.Addr == "" {
		zlog.Info("Summary cache disabled (REDIS_ADDR not set)")
		return cache.Noop{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rdb, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		zlog.Warn("Redis unavailable, summary cache disabled", zap.String("addr", cfg.Addr), zap.Error(err))
		return cache.Noop{}
	}
	zlog.Info("Summary cache enabled", zap.String("addr", cfg.Addr), zap.Duration("ttl", cfg.SummaryTTL))
	return cache.NewRedisSummary(rdb, cfg.SummaryTTL)
}
