package main

import (
	"context"
	"os"

	"github.com/anoop23822/Autoresponder-Telegram/internal/autoresponder"
	"github.com/anoop23822/Autoresponder-Telegram/internal/config"
	"github.com/anoop23822/Autoresponder-Telegram/internal/logger"
)

func main() {
	log := logger.GetLogger()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Errorw("invalid configuration",
			"error", err)
		os.Exit(1)
	}

	if _, err := autoresponder.Run(context.Background(), cfg); err != nil {
		log.Errorw("birthday run failed",
			"error", err)
		os.Exit(1)
	}
}
