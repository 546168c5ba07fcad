package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"reciclame-api/internal/cache"
	"reciclame-api/internal/config"
	"reciclame-api/internal/controller"
	"reciclame-api/internal/repo"
	"reciclame-api/internal/service"
	"reciclame-api/pkg/http_server"
	"reciclame-api/pkg/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// newCacheStore picks the cache backend. The returned closer is nil for in-process stores.
func newCacheStore(cfg *config.Config) (cache.Store, io.Closer) {
	switch cfg.CacheBackend {
	case config.CacheLRU:
		return cache.NewLRUStore(cfg.CacheCapacity, cfg.CacheTTL), nil
	case config.CacheSturdyc:
		return cache.NewSturdycStore(cfg.CacheCapacity, cfg.CacheTTL), nil
	default:
		s := cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		return s, s
	}
}

// newHandler builds the echo instance with every route attached.
func newHandler(pg *postgres.Postgres, store cache.Store, cfg *config.Config, logger *log.Logger) *echo.Echo {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(pg.Database, cfg.PostgresDatabase),
	)

	repositories := repo.NewRepositories(pg)
	services := service.NewServices(repositories, cache.New(store, cfg.CacheTTL, registry))

	handler := echo.New()
	handler.HideBanner = true
	handler.Logger = logger
	controller.SetupRoutesHandlers(handler, services, registry)

	return handler
}

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	logger := config.SetupLogger(cfg)

	logger.Info("Connecting database...")
	postgresDB, err := postgres.NewDB(cfg.PostgresDriver, cfg.PostgresConn, postgres.WithMaxConns(cfg.PostgresMaxConns))
	if err != nil {
		logger.Fatalf("Error occurred while connecting to db: %v", err)
	}
	defer postgresDB.Close()

	if err := postgresDB.Ping(context.Background()); err != nil {
		logger.Fatalf("Database is unreachable: %v", err)
	}

	logger.Info("Running migrations...")
	if err := runMigrations(postgresDB.Database, cfg.PostgresDatabase, logger); err != nil {
		logger.Fatal(err)
	}

	logger.Infof("Using %s cache backend", cfg.CacheBackend)
	store, closer := newCacheStore(cfg)
	if closer != nil {
		defer closer.Close()
	}
	if err := store.Ping(context.Background()); err != nil {
		logger.Warnf("Cache is unreachable, reads will go to the database: %v", err)
	}

	logger.Info("Setup routes...")
	handler := newHandler(postgresDB, store, cfg, logger)

	logger.Info("Starting server...")
	httpServer := http_server.New(handler, cfg.ServerAddress,
		http_server.ReadTimeout(cfg.HTTPReadTimeout),
		http_server.WriteTimeout(cfg.HTTPWriteTimeout),
		http_server.ShutdownTimeout(cfg.ShutdownTimeout),
	)

	logger.Infof("Ready to process requests on %s", cfg.ServerAddress)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		logger.Info("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		logger.Errorf("Notify error: %v", err)
	}

	logger.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		logger.Errorf("Shutdown error: %v", err)
		return
	}
	logger.Info("Successful shutdown")
}
