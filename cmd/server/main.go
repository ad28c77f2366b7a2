package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/oggyb/matchbot/internal/app"
	"github.com/oggyb/matchbot/internal/cache"
	"github.com/oggyb/matchbot/internal/config"
	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/logger"
	"github.com/oggyb/matchbot/internal/server"
	"github.com/oggyb/matchbot/internal/service/matchmaker"
	"github.com/oggyb/matchbot/internal/transport/telegram"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return err
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(ctx); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return err
	}
	defer redisCache.Close()

	// Init bot; it is the transport the coordinator delivers notices through
	bot, err := telegram.NewBot(cfg, logger.Component("telegram"))
	if err != nil {
		log.Error("failed to init telegram bot", "err", err)
		return err
	}

	appCtx := app.New(cfg, database, redisCache, log, bot)
	dispatcher := telegram.NewDispatcher(appCtx, bot)

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	registrars := []server.Registrar{
		matchmaker.NewRegistrar(appCtx),
	}
	grpcServer := server.NewGRPCServer(cfg, logger.Component("grpc"), matchmaker.AdminMethods, registrars...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting gRPC server", "addr", grpcServer.Addr())
		return grpcServer.ListenAndServe(gctx)
	})
	g.Go(func() error {
		log.Info("starting telegram bot", "dry_run", bot.DryRun())
		return bot.Listen(gctx, dispatcher.Handle)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "err", err)
		return err
	}
	log.Info("server stopped")
	return nil
}
