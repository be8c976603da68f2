package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"infinite-experiment/skyline/internal/api"
	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/config"
	"infinite-experiment/skyline/internal/db"
	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/metrics"
	"infinite-experiment/skyline/internal/routes"
	"infinite-experiment/skyline/internal/services"
	"infinite-experiment/skyline/internal/workers"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv, cfg.LogFile); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Skyline starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	gormDB, err := db.InitORM(cfg.DBDriver, cfg.DBDsn)
	if err != nil {
		logging.Fatal("Failed to connect to database (GORM)", "driver", cfg.DBDriver, "error", err.Error())
	}
	reportDB, err := db.InitSQLX(cfg.DBDriver, cfg.DBDsn)
	if err != nil {
		logging.Fatal("Failed to connect to database (sqlx)", "driver", cfg.DBDriver, "error", err.Error())
	}
	defer reportDB.Close()

	var cache common.CacheInterface
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			logging.Fatal("Failed to connect to Redis", "error", err.Error())
		}
		cache = redisCache
	} else {
		cache = common.NewCacheService(24*3600, 600)
	}
	defer cache.Close()

	sim := services.NewSimulation(services.SimulationOptions{
		CompanyName:  cfg.CompanyName,
		StartingCash: cfg.StartingCash,
		Cache:        cache,
		Metrics:      metricsReg,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	airports, models, err := services.NewCatalogLoader(gormDB).Load(ctx)
	if err != nil {
		logging.Fatal("Failed to load catalogs", "error", err.Error())
	}
	sim.LoadCatalogs(airports, models)

	w := workers.InitWorkers(sim, gormDB, metricsReg, cfg.TickInterval(), cfg.ArchiveInterval())

	upSince := time.Now()
	deps := api.InitDependencies(ctx, sim, w.Clock, reportDB, metricsReg, cfg.SavePath)
	router := routes.RegisterRoutes(deps, reportDB, prometheus.DefaultGatherer, upSince)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	w.Run(gctx, g)

	g.Go(func() error {
		logging.Info("Server starting",
			"addr", cfg.Addr(),
			"company", sim.Company().Name,
			"cash", common.FormatCurrency(sim.Company().Cash),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server exited with error", "error", err.Error())
		os.Exit(1)
	}
	logging.Info("Server stopped")
}
