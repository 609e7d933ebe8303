package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asastats/datamart/internal/app"
	"github.com/asastats/datamart/internal/config"
	"github.com/asastats/datamart/internal/observability"
	"github.com/asastats/datamart/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdownUptrace(ctx); err != nil {
			logger.Error("shutdown uptrace", "error", err)
		}
	}()

	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := stopPyroscope(); err != nil {
			logger.Error("stop pyroscope", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := app.NewDatasetService(cfg, logger)

	started := time.Now()
	logger.InfoContext(ctx, "datamart build starting", "competition", cfg.Competition)

	dataset := svc.Build(ctx, cfg.Competition)

	for name, tbl := range dataset.Tables() {
		logger.InfoContext(ctx, "table built", "table", name, "summary", tbl.Summary())
	}
	for _, issue := range dataset.Issues {
		logger.WarnContext(ctx, "build issue", "table", issue.Table, "stage", issue.Stage, "error", issue.Err)
	}

	logger.InfoContext(ctx, "datamart build finished",
		"competition", cfg.Competition,
		"complete", dataset.Complete(),
		"issues", len(dataset.Issues),
		"elapsed", time.Since(started).String(),
	)
}
