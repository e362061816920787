package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/NFTEarth/exchange-2024/internal/infrastructure/configloader"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/envloader"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/network/client"
	"github.com/NFTEarth/exchange-2024/internal/infrastructure/network/marketplace"
	"github.com/NFTEarth/exchange-2024/internal/pkg/logger"
)

const connectionTimeout = 10 * time.Second

var errVerificationFailed = errors.New("rpc verification failed")

func main() {
	var (
		configPath string
		all        bool
		asJSON     bool
	)

	root := &cobra.Command{
		Use:          "verifier",
		Short:        "Check that every marketplace chain's RPC endpoints serve the expected chain id",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath, all, asJSON)
		},
	}

	defaultConfig := os.Getenv(envloader.ConfigPath)
	if defaultConfig == "" {
		defaultConfig = configloader.DefaultPath
	}
	root.Flags().StringVar(&configPath, "config", defaultConfig, "Path to the YAML config file")
	root.Flags().BoolVar(&all, "all", false, "Also verify chains that are disabled in the marketplace table")
	root.Flags().BoolVar(&asJSON, "json", false, "Print the reports as JSON on stdout")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, all, asJSON bool) error {
	cfg, err := configloader.Load(configPath)
	if err != nil {
		return err
	}

	zapLogger, err := logger.NewZap(cfg.Logging.Level, cfg.Logging.Level == "debug")
	if err != nil {
		return err
	}
	defer func() { _ = zapLogger.Sync() }()
	appLogger := logger.NewSlogAdapter()

	env, err := envloader.Load(cfg.Env.Files...)
	if err != nil {
		return err
	}

	entries := marketplace.Entries()
	if all {
		for i := range entries {
			entries[i].Enabled = true
		}
	}
	chains, err := marketplace.BuildEntries(entries, env)
	if err != nil {
		return err
	}

	alchemyKey, _ := env.Lookup(envloader.AlchemyAPIKey)
	verifier := client.NewVerifier(
		client.NewEVMDialer(connectionTimeout, cfg.Verifier.RPCCallTimeout()),
		appLogger,
		client.VerifierOptions{
			AlchemyAPIKey: alchemyKey,
			MaxConcurrent: cfg.Verifier.MaxConcurrentRoutines,
			Attempts:      cfg.Verifier.Attempts,
			RetryDelay:    cfg.Verifier.RetryDelay(),
		},
	)

	appLogger.Info("Verifying chain RPC endpoints", "chains", len(chains), "alchemy", alchemyKey != "")
	reports, err := verifier.Verify(ctx, chains)
	if err != nil {
		return err
	}

	if asJSON {
		out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode reports: %w", err)
		}
		fmt.Println(string(out))
	}

	failed := 0
	for _, report := range reports {
		if !report.Healthy() {
			failed++
		}
	}
	if failed > 0 {
		appLogger.Error("Some chains failed verification", "failed", failed, "total", len(reports))
		return fmt.Errorf("%w: %d of %d chains", errVerificationFailed, failed, len(reports))
	}
	appLogger.Info("All chains verified", "total", len(reports))
	return nil
}
