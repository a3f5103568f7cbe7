package autoresponder

import (
	"context"
	"time"

	"github.com/anoop23822/Autoresponder-Telegram/internal/autoresponder/types"
	"github.com/anoop23822/Autoresponder-Telegram/internal/config"
	"github.com/anoop23822/Autoresponder-Telegram/internal/logger"
	"github.com/anoop23822/Autoresponder-Telegram/internal/registry"
	"github.com/anoop23822/Autoresponder-Telegram/internal/spreadsheet"
	"github.com/anoop23822/Autoresponder-Telegram/internal/telegram"
)

// session is what the run loop needs from an open connection.
type session interface {
	telegram.API
	Close()
}

type dependencies struct {
	now          func() time.Time
	loadContacts func(path string) ([]types.Contact, error)
	openSession  func(ctx context.Context) (session, error)
	registry     registry.Registry
}

// Run executes one full pass: authenticate, load the sheet, filter for
// today and greet every match. Only configuration, data load and
// session failures are returned; everything per row or per message is
// logged and recorded in the report instead.
func Run(ctx context.Context, cfg config.Config) (*types.Report, error) {
	deps := dependencies{
		now:          time.Now,
		loadContacts: spreadsheet.LoadContacts,
		openSession: func(ctx context.Context) (session, error) {
			return telegram.Open(ctx, cfg)
		},
		registry: registry.NewRegistry(ctx, cfg.SentTable, cfg.AWSRegion),
	}

	return run(ctx, cfg, deps)
}

func run(ctx context.Context, cfg config.Config, deps dependencies) (*types.Report, error) {
	log := logger.GetLogger()
	defer log.Sync()

	resolver, err := telegram.NewResolver(cfg.ResolveStrategy)
	if err != nil {
		return nil, err
	}

	sess, err := deps.openSession(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	contacts, err := deps.loadContacts(cfg.SheetPath)
	if err != nil {
		return nil, err
	}

	// Captured once, so a run crossing midnight still uses one "today".
	today := deps.now()
	report := &types.Report{Date: today}

	matched := FilterToday(contacts, today)
	if cfg.DedupePhones {
		matched = DedupeByPhone(matched)
	}

	if len(matched) == 0 {
		log.Info("no birthdays today")
		return report, nil
	}

	for _, contact := range matched {
		report.Rows = append(report.Rows, processContact(ctx, sess, resolver, deps.registry, contact, today))
	}

	sent, partial, skipped := report.Counts()
	log.Infow("birthday run finished",
		"date", today.Format("2006-01-02"),
		"sent", sent,
		"partial", partial,
		"skipped", skipped,
	)

	SendSummary(cfg, report)

	return report, nil
}

func processContact(ctx context.Context, api telegram.API, resolver telegram.Resolver, reg registry.Registry, contact types.Contact, today time.Time) types.RowResult {
	log := logger.GetLogger()

	log.Infow("processing contact",
		"phone", contact.Phone,
		"first_name", contact.FirstName,
		"other_name", contact.OtherName,
	)

	if reg.WasSent(ctx, contact.Phone, today) {
		log.Infow("already greeted today, skipping",
			"phone", contact.Phone)
		return types.RowResult{Contact: contact, Outcome: types.OutcomeAlreadySent}
	}

	peer, err := resolver.Resolve(ctx, api, contact)
	if err != nil {
		log.Errorw("skipping contact",
			"phone", contact.Phone,
			"error", err,
		)
		return types.RowResult{Contact: contact, Outcome: types.OutcomeSkipped, Reason: err.Error()}
	}

	sends := telegram.Notify(ctx, api, peer, contact)

	delivered := 0
	for _, s := range sends {
		if s.Ok {
			delivered++
		}
	}

	outcome := types.OutcomeSent
	if delivered < len(sends) {
		outcome = types.OutcomePartialFailed
	}
	if delivered > 0 {
		reg.MarkSent(ctx, contact.Phone, today)
	}

	return types.RowResult{Contact: contact, Outcome: outcome, Sends: sends}
}
