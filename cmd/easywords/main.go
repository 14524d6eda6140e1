package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"easywords/internal/api"
	"easywords/internal/cli"
	"easywords/internal/config"
	"easywords/internal/repository/file"

	"go.uber.org/zap"
)

func main() {
	// Warnings and errors only, the command output goes to stdout
	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := logCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	store, err := file.NewStateRepo(cfg.StateDir)
	if err != nil {
		logger.Fatal("Failed to open state directory", zap.String("dir", cfg.StateDir), zap.Error(err))
	}

	client := api.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(cli.Options{
		Client: client,
		Store:  store,
		Logger: logger,
	})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		logger.Sync()
		os.Exit(1)
	}
}
