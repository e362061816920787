package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/NFTEarth/exchange-2024/internal/app/provider"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/configloader"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/envloader"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/httpclient"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/reservoir"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/restapi"
	"github.com/NFTEarth/exchange-2024/internal/pkg/logger"
	"github.com/NFTEarth/exchange-2024/internal/pkg/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := os.Getenv(envloader.ConfigPath)
	if configPath == "" {
		configPath = configloader.DefaultPath
	}
	cfg, err := configloader.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	zapLogger, err := logger.NewZap(cfg.Logging.Level, cfg.Logging.Level == "debug")
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zapLogger.Sync() }()

	appLogger := logger.NewSlogAdapter()
	appLogger.Info("Marketplace chain service starting", "config", configPath)

	env, err := envloader.Load(cfg.Env.Files...)
	if err != nil {
		logger.Fatal("Failed to load environment", "error", err)
	}
	if _, ok := env.Lookup(envloader.ReservoirAPIKey); !ok {
		appLogger.Warn("RESERVOIR_API_KEY is not set, proxied requests go out unauthenticated")
	}

	tables, err := provider.LoadTables(env)
	if err != nil {
		logger.Fatal("Failed to build chain tables", "error", err)
	}
	chains, err := provider.NewChainProvider(tables, appLogger)
	if err != nil {
		logger.Fatal("Failed to initialize chain provider", "error", err)
	}

	m := metrics.New()

	prices := httpclient.NewCoinGeckoClient(httpclient.CoinGeckoOptions{
		BaseURL:         cfg.CoinGecko.BaseURL,
		APIKey:          cfg.CoinGecko.APIKey,
		VsCurrency:      cfg.CoinGecko.VsCurrency,
		Timeout:         cfg.CoinGecko.RequestTimeout(),
		CacheTTL:        cfg.CoinGecko.CacheTTL(),
		CleanupInterval: cfg.CoinGecko.CleanupInterval(),
	}, zapLogger, m)

	proxy := reservoir.NewProxy(chains, reservoir.Options{
		Timeout:            cfg.Proxy.RequestTimeout(),
		RateLimitPerSecond: cfg.Proxy.RateLimitPerSecond,
		Burst:              cfg.Proxy.Burst,
	}, zapLogger, m)

	router := restapi.SetupRouter(
		restapi.NewChainHandler(chains, prices, appLogger),
		restapi.NewProxyHandler(proxy, appLogger),
		restapi.RouterOptions{
			CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
			MetricsHandler:     m.Handler(),
			SwaggerEnabled:     cfg.Swagger.Enabled,
			SwaggerSpecPath:    cfg.Swagger.Path,
		},
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
		IdleTimeout:  cfg.Server.IdleTimeout(),
	}

	go func() {
		zapLogger.Info("Starting HTTP server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start HTTP server", "error", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutdown signal received, stopping HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Graceful shutdown failed", "error", err)
		return
	}
	appLogger.Info("HTTP server stopped")
}
