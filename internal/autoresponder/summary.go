package autoresponder

import (
	"fmt"

	"github.com/anoop23822/Autoresponder-Telegram/internal/autoresponder/types"
	"github.com/anoop23822/Autoresponder-Telegram/internal/config"
	"github.com/anoop23822/Autoresponder-Telegram/internal/logger"
	"github.com/anoop23822/Autoresponder-Telegram/internal/twilio"
)

// SendSummary texts the run outcome to the operator over SMS when
// Twilio is configured and at least one contact was processed. Failures
// here are logged and never fatal.
func SendSummary(cfg config.Config, report *types.Report) {
	if cfg.TwilioAccountSid == "" || len(report.Rows) == 0 {
		return
	}

	log := logger.GetLogger()

	client, err := twilio.NewClient(cfg.TwilioAccountSid, cfg.TwilioAuthToken)
	if err != nil {
		log.Errorw("could not instantiate twilio client",
			"error", err)
		return
	}

	sent, partial, skipped := report.Counts()
	msg := fmt.Sprintf("Birthday run %s: %d sent, %d partial, %d skipped",
		report.Date.Format("2006-01-02"), sent, partial, skipped)

	_, err = client.SendSms(cfg.TwilioFromNumber, cfg.TwilioToNumber, msg)
	if err != nil {
		log.Errorw("an error ocurred when sending summary sms",
			"error", err)
		return
	}
}
