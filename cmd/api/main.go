package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	v1 "github.com/tdimitr/UTH-Social-Media-App/cmd/api/router/v1"
	cacheAdapter "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/cache/adapter"
	"github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/config"
	"github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/database"
	mediaAdapter "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/media/adapter"
	queueAdapter "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/queue/adapter"
	"github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/realtime"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/task"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	bootLogger := zerolog.New(os.Stderr)
	if err := godotenv.Load(); err != nil {
		bootLogger.Warn().Msg(".env file not found")
	}

	cfg, err := config.Parse()
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("load config")
	}

	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := database.Connect(connectCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()

	cache, err := cacheAdapter.NewRedisCache(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to redis")
	}
	defer cache.Close()

	queueClient, err := queueAdapter.NewAsynqClient(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("create queue client")
	}
	defer queueClient.Close()

	worker, err := queueAdapter.NewAsynqServer(cfg.RedisURL, cfg.AsynqConcurrency, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("create queue worker")
	}

	uploader := mediaAdapter.NewHTTPUploader(cfg.MediaUploadURL)
	hub := realtime.NewHub(logger)
	defer hub.Close()

	task.RegisterSendMessageTask(worker, pool, uploader, cache, hub, logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	v1.RegisterRoutes(r, v1.Dependencies{
		Pool:      pool,
		Cache:     cache,
		Queue:     queueClient,
		Uploader:  uploader,
		Hub:       hub,
		JWTSecret: cfg.JWTSecret,
		Logger:    logger,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		if err := worker.Run(ctx); err != nil {
			logger.Error().Err(err).Msg("queue worker stopped")
		}
	}()

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
