package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/anoop23822/Autoresponder-Telegram/internal/autoresponder"
	"github.com/anoop23822/Autoresponder-Telegram/internal/config"
	"github.com/anoop23822/Autoresponder-Telegram/internal/logger"
)

var GitCommit string

// HandleRequest is wired to a daily EventBridge timer.
func HandleRequest(ctx context.Context) error {
	log := logger.GetLogger()
	defer log.Sync()

	log.Infow("starting birthday run",
		"commit", GitCommit)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	report, err := autoresponder.Run(ctx, cfg)
	if err != nil {
		return err
	}

	sent, partial, skipped := report.Counts()
	log.Infow("birthday run done",
		"sent", sent,
		"partial", partial,
		"skipped", skipped,
	)

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
