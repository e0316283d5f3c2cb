package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	navapp "github.com/ytget/adaptive-nav/internal/app"
	"github.com/ytget/adaptive-nav/internal/config"
	"github.com/ytget/adaptive-nav/internal/logging"
	"github.com/ytget/adaptive-nav/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	cfg := config.Defaults()

	base, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, _ := logging.WithSession(base)
	defer func() { _ = logger.Sync() }()

	core, err := navapp.NewCore(cfg, logger)
	if err != nil {
		logger.Fatal("failed to start", zap.Error(err))
	}
	defer core.Dispose()

	ui.Run(core, cfg, version)
}
