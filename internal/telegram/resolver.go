package telegram

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"

	"github.com/anoop23822/Autoresponder-Telegram/internal/autoresponder/types"
	"github.com/anoop23822/Autoresponder-Telegram/internal/config"
)

// Resolver maps a contact row to a sendable peer. Two strategies exist:
// a direct lookup against the account's existing contacts, and an
// import that first adds the number to the contact list. The import
// variant mutates the account's contact list, the lookup does not.
type Resolver interface {
	Resolve(ctx context.Context, api API, contact types.Contact) (tg.InputPeerClass, error)
}

func NewResolver(strategy string) (Resolver, error) {
	switch strategy {
	case config.StrategyLookup:
		return LookupResolver{}, nil
	case config.StrategyImport:
		return ImportResolver{}, nil
	}
	return nil, fmt.Errorf("unknown resolve strategy %q", strategy)
}

type LookupResolver struct{}

func (LookupResolver) Resolve(ctx context.Context, api API, contact types.Contact) (tg.InputPeerClass, error) {
	peer, err := api.ResolvePhone(ctx, contact.Phone)
	if err != nil {
		return nil, &ResolveError{Phone: contact.Phone, Err: err}
	}
	return peer, nil
}

type ImportResolver struct{}

func (ImportResolver) Resolve(ctx context.Context, api API, contact types.Contact) (tg.InputPeerClass, error) {
	peer, err := api.ImportContact(ctx, contact.Phone, contact.FirstName, contact.OtherName)
	if err != nil {
		return nil, &ImportError{Phone: contact.Phone, Err: err}
	}
	return peer, nil
}
