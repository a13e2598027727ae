// @title NoriFarm API
// @version 1.0
// @description Crop lifecycle, crop-to-product matching, carts and image uploads.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/NoriFarm_Go/docs"
	"github.com/osse101/NoriFarm_Go/internal/bootstrap"
	"github.com/osse101/NoriFarm_Go/internal/cart"
	"github.com/osse101/NoriFarm_Go/internal/catalog"
	"github.com/osse101/NoriFarm_Go/internal/clock"
	"github.com/osse101/NoriFarm_Go/internal/concurrency"
	"github.com/osse101/NoriFarm_Go/internal/config"
	"github.com/osse101/NoriFarm_Go/internal/crop"
	"github.com/osse101/NoriFarm_Go/internal/handler"
	"github.com/osse101/NoriFarm_Go/internal/images"
	"github.com/osse101/NoriFarm_Go/internal/matcher"
	"github.com/osse101/NoriFarm_Go/internal/server"
	"github.com/osse101/NoriFarm_Go/internal/sse"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		// outside production the defaults are enough to run locally
		if cfg.IsProduction() {
			slog.Error("Environment validation failed", "error", err)
			os.Exit(1)
		}
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("NoriFarm exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.NewRealClock()

	cropStorage, err := bootstrap.InitializeCropStorage(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		cropStorage.Close()
		return err
	}

	feed := sse.NewHub(clk)
	feed.Start()
	bootstrap.RegisterEventHandlers(bus, feed)

	productCatalog := catalog.NewFileCatalog(cfg.CatalogPath, cfg.CatalogTTL)
	catalogSvc := catalog.NewService(productCatalog)
	cropSvc := crop.NewService(cropStorage.Store, publisher, clk, crop.DefaultRandom())
	matchSvc := matcher.NewService(cropSvc, productCatalog, publisher, clk)
	cartSvc := cart.NewService(catalogSvc, concurrency.NewLockManager(), clk)

	imageStore, err := images.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL, int(cfg.MaxUploadBytes), clk)
	if err != nil {
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{
			Feed: feed, ResilientPublisher: publisher, Storage: cropStorage,
		})
		return err
	}

	readyChecks := map[string]handler.HealthChecker{}
	if cropStorage.Pool != nil {
		readyChecks["database"] = handler.PoolChecker(cropStorage.Pool)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		UploadDir:      cfg.UploadDir,
		UploadBaseURL:  cfg.UploadBaseURL,
		MaxUploadBytes: cfg.MaxUploadBytes,
		ReadyChecks:    readyChecks,
		Feed:           feed,
	}, server.Services{
		Crops:   cropSvc,
		Matcher: matchSvc,
		Catalog: catalogSvc,
		Cart:    cartSvc,
		Images:  imageStore,
	})

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Feed:               feed,
		ResilientPublisher: publisher,
		Storage:            cropStorage,
	})
	return err
}
