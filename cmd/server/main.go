package main

import (
	"context"

	"github.com/rishtahub/rishtahub/internal/app"
	"github.com/rishtahub/rishtahub/internal/cache"
	"github.com/rishtahub/rishtahub/internal/config"
	"github.com/rishtahub/rishtahub/internal/db"
	"github.com/rishtahub/rishtahub/internal/logger"
	"github.com/rishtahub/rishtahub/internal/server"
	"github.com/rishtahub/rishtahub/internal/service/auth"
	"github.com/rishtahub/rishtahub/internal/service/interest"
	"github.com/rishtahub/rishtahub/internal/service/search"
	"github.com/rishtahub/rishtahub/internal/service/user"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	appCtx := app.New(database, redisCache, log)

	registrars := []server.Registrar{
		auth.NewRegistrar(appCtx, cfg),
		interest.NewRegistrar(appCtx),
		search.NewRegistrar(appCtx),
		user.NewRegistrar(appCtx),
	}

	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.Info("starting HTTP server", "addr", addr, "env", cfg.App.ENV)

	if err := server.StartHTTPServer(cfg, appCtx, registrars...); err != nil {
		log.Error("failed to start HTTP server", "err", err)
	}
}
