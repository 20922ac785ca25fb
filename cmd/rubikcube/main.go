// Package main is the entry point for the Rubik's Cube client.
package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/rubikcube/internal/config"
	"github.com/Faultbox/rubikcube/internal/game"
	"github.com/Faultbox/rubikcube/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Rubik's Cube ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		fatalBox(err)
		logger.Sync()
		os.Exit(1)
	}

	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		g.Close()
		logger.Sync()
		os.Exit(1)
	}
	g.Close()

	logger.Info("game closed normally")
}

// fatalBox shows a startup failure to users who launched the client
// without a terminal.
func fatalBox(err error) {
	dialog.Message("The cube could not start:\n\n%v", err).Title(game.Title).Error()
}
