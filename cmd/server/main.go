package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/stowr/backend/api/handler"
	"github.com/stowr/backend/internal/config"
	"github.com/stowr/backend/internal/infrastructure/journal"
	"github.com/stowr/backend/internal/infrastructure/monitor"
	pgInfra "github.com/stowr/backend/internal/infrastructure/postgres"
	redisInfra "github.com/stowr/backend/internal/infrastructure/redis"
	"github.com/stowr/backend/internal/middleware"
	"github.com/stowr/backend/internal/router"
	"github.com/stowr/backend/internal/services"
	"github.com/stowr/backend/internal/services/lifecycle"
	"github.com/stowr/backend/pkg/httpcontext"
	"github.com/stowr/backend/pkg/logger"
	"github.com/stowr/backend/repository/postgres"
	redisRepo "github.com/stowr/backend/repository/redis"
	assetUC "github.com/stowr/backend/usecase/asset"
	locationUC "github.com/stowr/backend/usecase/location"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	journalStore, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		zapLogger.Fatal("failed to open event journal", zap.Error(err))
	}
	manager.Register("journal", func(ctx context.Context) error {
		return journalStore.Close()
	})

	mon := monitor.New(pool, redisClient, journalStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	assetRepo := redisRepo.NewCachedAssetRepository(postgres.NewAssetRepository(pool), redisClient, cfg.Cache.TTL)
	locationRepo := redisRepo.NewCachedLocationRepository(postgres.NewLocationRepository(pool), redisClient, cfg.Cache.TTL)

	journalBridge := services.NewJournalBridge(journalStore)

	assetUseCase := assetUC.New(assetRepo, locationRepo, journalBridge, zapLogger)
	locationUseCase := locationUC.New(locationRepo, journalBridge, zapLogger)

	projector := services.NewProjector(
		journalStore,
		mon,
		assetUseCase,
		locationUseCase,
		zapLogger,
		services.ProjectorConfig{Interval: cfg.Projector.Interval},
	)
	projector.Start()
	manager.Register("projector", func(ctx context.Context) error {
		projector.Stop(ctx)
		return nil
	})

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Asset:    apiHandler.NewAssetHandler(assetUseCase, ctxAdapter, zapLogger),
		Location: apiHandler.NewLocationHandler(locationUseCase, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	accessLog := middleware.AccessLog(zapLogger)
	r := router.New(handlers, accessLog)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
