package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/resolvia/dispute-portal/internal/api"
	"github.com/resolvia/dispute-portal/internal/core/ports"
	"github.com/resolvia/dispute-portal/internal/infrastructure/config"
	mongodb "github.com/resolvia/dispute-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/resolvia/dispute-portal/internal/infrastructure/db/redis"
	"github.com/resolvia/dispute-portal/internal/infrastructure/session"
	"github.com/resolvia/dispute-portal/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "dispute-portal",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	var sessions ports.SessionStore
	switch cfg.Session.Strategy {
	case "jwt":
		sessions = session.NewJWTStore(cfg.Session.Secret, cfg.Session.MaxAge)
	default:
		sessions = redisdb.NewSessionStore(rdb, cfg.Session.MaxAge, cfg.Session.RefreshAge)
	}
	log.Info().Str("strategy", cfg.Session.Strategy).Msg("session store configured")

	e := api.NewRouter(cfg, db, rdb, sessions, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
