package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"io.winapps.wellness/internal/config"
	"io.winapps.wellness/internal/db"
	"io.winapps.wellness/internal/handlers"
	"io.winapps.wellness/internal/logging"
	"io.winapps.wellness/internal/middleware"
	"io.winapps.wellness/internal/store"
)

func middlewareStack(logger *zap.SugaredLogger) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.RequestIDMiddleware(),
		middleware.RequestLoggingMiddleware(logger),
		middleware.RecoveryMiddleware(logger),
		middleware.CORSMiddleware(),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Initialize storage: Postgres when DATABASE_URL points at a server,
	// SQLite file otherwise.
	var checkinStore store.Store
	if cfg.IsPostgres() {
		pool, err := db.InitPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatalw("failed to initialize PostgreSQL", "error", err)
		}
		defer pool.Close()

		checkinStore, err = store.NewPostgresStore(ctx, pool)
		if err != nil {
			logger.Fatalw("failed to initialize store", "error", err)
		}
	} else {
		database, err := db.InitSQLite(cfg.DatabaseURL)
		if err != nil {
			logger.Fatalw("failed to initialize SQLite", "error", err)
		}
		defer database.Close()

		checkinStore, err = store.NewSQLiteStore(ctx, database)
		if err != nil {
			logger.Fatalw("failed to initialize store", "error", err)
		}
	}

	// Optional Redis summary cache.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = db.InitRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatalw("failed to initialize Redis", "error", err)
		}
		defer redisClient.Close()
	} else {
		logger.Infow("summary caching disabled, REDIS_ADDR not set")
	}

	router := gin.New()
	router.Use(middlewareStack(logger)...)

	checkinHandler := handlers.NewCheckinHandler(checkinStore, redisClient, logger, cfg.SummaryCacheTTL)

	router.GET("/", checkinHandler.Home)

	v1 := router.Group("/api/v1")
	{
		checkins := v1.Group("/checkins")
		{
			checkins.POST("/submit", checkinHandler.SubmitCheckin)
			checkins.GET("/series", checkinHandler.GetSeries)
			checkins.GET("/summary", checkinHandler.GetSummary)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Daily digest job.
	digest, err := handlers.NewDigestScheduler(checkinStore, logger, cfg.DigestSchedule)
	if err != nil {
		logger.Fatalw("failed to initialize digest scheduler", "error", err)
	}
	digest.Start()
	defer digest.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Infow("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infow("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalw("server forced to shutdown", "error", err)
	}

	logger.Infow("server exited")
}
