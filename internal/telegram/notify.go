package telegram

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"

	"github.com/anoop23822/Autoresponder-Telegram/internal/autoresponder/types"
	"github.com/anoop23822/Autoresponder-Telegram/internal/logger"
)

func Greetings(contact types.Contact) []string {
	return []string{
		fmt.Sprintf("Happy Birthday, %s!", contact.FirstName),
		fmt.Sprintf("Congratulations, %s!", contact.OtherName),
	}
}

// Notify sends the two greeting messages to peer. Each send is attempted
// independently: a failure of the first never suppresses the second.
// Failures are captured in the results, never returned.
func Notify(ctx context.Context, api API, peer tg.InputPeerClass, contact types.Contact) []types.SendResult {
	log := logger.GetLogger()

	var results []types.SendResult
	for _, text := range Greetings(contact) {
		if err := api.SendText(ctx, peer, text); err != nil {
			sendErr := &SendError{Text: text, Err: err}
			log.Errorw("failed to send message",
				"phone", contact.Phone,
				"text", text,
				"error", err,
			)
			results = append(results, types.SendResult{Text: text, Error: sendErr.Error()})
			continue
		}

		log.Infow("sent message",
			"phone", contact.Phone,
			"text", text,
		)
		results = append(results, types.SendResult{Text: text, Ok: true})
	}

	return results
}
