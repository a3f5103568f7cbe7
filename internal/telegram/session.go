package telegram

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/telegram/message"
	"github.com/gotd/td/tg"

	"github.com/anoop23822/Autoresponder-Telegram/internal/config"
	"github.com/anoop23822/Autoresponder-Telegram/internal/logger"
)

// API is the slice of the platform the resolvers and the notifier need.
// Session implements it; tests substitute a fake.
type API interface {
	ResolvePhone(ctx context.Context, phone string) (tg.InputPeerClass, error)
	ImportContact(ctx context.Context, phone, firstName, lastName string) (tg.InputPeerClass, error)
	SendText(ctx context.Context, peer tg.InputPeerClass, text string) error
}

// Session is one authenticated connection. Open it once per run and
// close it exactly once, on every exit path.
type Session struct {
	api    *tg.Client
	sender *message.Sender

	cancel    context.CancelFunc
	done      chan struct{}
	runErr    error
	closeOnce sync.Once
}

// Open connects and authenticates. The session token is persisted at
// cfg.SessionFile, so only the very first run prompts for a login code.
func Open(ctx context.Context, cfg config.Config) (*Session, error) {
	client := telegram.NewClient(cfg.AppID, cfg.AppHash, telegram.Options{
		SessionStorage: &session.FileStorage{Path: cfg.SessionFile},
	})

	runCtx, cancel := context.WithCancel(ctx)
	s := &Session{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	ready := make(chan error, 1)
	go func() {
		defer close(s.done)
		s.runErr = client.Run(runCtx, func(ctx context.Context) error {
			flow := auth.NewFlow(promptAuth{phone: cfg.Phone}, auth.SendCodeOptions{})
			if err := client.Auth().IfNecessary(ctx, flow); err != nil {
				ready <- fmt.Errorf("authenticate: %w", err)
				return err
			}

			s.api = client.API()
			s.sender = message.NewSender(s.api)
			ready <- nil

			// Hold the connection until Close cancels the context.
			<-ctx.Done()
			return nil
		})

		// Connection failed before the callback ran.
		select {
		case ready <- s.runErr:
		default:
		}
	}()

	if err := <-ready; err != nil {
		cancel()
		<-s.done
		return nil, err
	}

	return s, nil
}

// Close releases the connection. Safe to call more than once; only the
// first call does anything.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
		if s.runErr != nil && !errors.Is(s.runErr, context.Canceled) {
			logger.GetLogger().Errorw("session shutdown",
				"error", s.runErr)
		}
	})
}

func (s *Session) ResolvePhone(ctx context.Context, phone string) (tg.InputPeerClass, error) {
	resolved, err := s.api.ContactsResolvePhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	return peerFromUsers(resolved.Users)
}

func (s *Session) ImportContact(ctx context.Context, phone, firstName, lastName string) (tg.InputPeerClass, error) {
	imported, err := s.api.ContactsImportContacts(ctx, []tg.InputPhoneContact{{
		ClientID:  1,
		Phone:     phone,
		FirstName: firstName,
		LastName:  lastName,
	}})
	if err != nil {
		return nil, err
	}
	if len(imported.Users) == 0 {
		return nil, fmt.Errorf("%s is not registered on Telegram", phone)
	}
	return peerFromUsers(imported.Users)
}

func (s *Session) SendText(ctx context.Context, peer tg.InputPeerClass, text string) error {
	_, err := s.sender.To(peer).Text(ctx, text)
	return err
}

func peerFromUsers(users []tg.UserClass) (tg.InputPeerClass, error) {
	for _, u := range users {
		if user, ok := u.(*tg.User); ok {
			return &tg.InputPeerUser{
				UserID:     user.ID,
				AccessHash: user.AccessHash,
			}, nil
		}
	}
	return nil, fmt.Errorf("no user in response")
}
