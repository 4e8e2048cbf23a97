package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/storefront/internal/client/cli"
	"github.com/iudanet/storefront/internal/client/iocli"
	"github.com/iudanet/storefront/internal/config"
	"github.com/iudanet/storefront/internal/telemetry"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Логи идут в stderr, чтобы не смешиваться с выводом команд
	level := &slog.LevelVar{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if lvl, err := config.ParseLogLevel(cfg.LogLevel); err == nil {
		level.Set(lvl)
	}

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName:    "storefront-client",
		ServiceVersion: Version,
		Endpoint:       cfg.OTLPEndpoint,
		Insecure:       cfg.OTLPInsecure,
	}, logger)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Error("failed to flush traces", "error", err)
		}
	}()

	app := cli.NewApp(cfg, iocli.NewStdio(), logger, level, cli.Bootstrap, cli.VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	})

	execErr := app.NewRootCommand().ExecuteContext(ctx)
	if err := app.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
	}

	if execErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Describe(execErr))
		return 1
	}
	return 0
}
