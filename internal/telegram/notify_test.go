package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/gotd/td/tg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anoop23822/Autoresponder-Telegram/internal/autoresponder/types"
)

type fakeAPI struct {
	resolveErr error
	importErr  error
	sendErr    map[string]error

	imported []string
	sent     []string
}

func (f *fakeAPI) ResolvePhone(_ context.Context, phone string) (tg.InputPeerClass, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return &tg.InputPeerUser{UserID: 1}, nil
}

func (f *fakeAPI) ImportContact(_ context.Context, phone, _, _ string) (tg.InputPeerClass, error) {
	f.imported = append(f.imported, phone)
	if f.importErr != nil {
		return nil, f.importErr
	}
	return &tg.InputPeerUser{UserID: 2}, nil
}

func (f *fakeAPI) SendText(_ context.Context, _ tg.InputPeerClass, text string) error {
	if err := f.sendErr[text]; err != nil {
		return err
	}
	f.sent = append(f.sent, text)
	return nil
}

var asha = types.Contact{Phone: "+919999999999", FirstName: "Asha", OtherName: "Rao"}

func TestGreetings(t *testing.T) {
	assert.Equal(t, []string{
		"Happy Birthday, Asha!",
		"Congratulations, Rao!",
	}, Greetings(asha))
}

func TestNotifySendsBoth(t *testing.T) {
	api := &fakeAPI{}

	results := Notify(context.Background(), api, &tg.InputPeerUser{UserID: 1}, asha)

	require.Len(t, results, 2)
	assert.True(t, results[0].Ok)
	assert.True(t, results[1].Ok)
	assert.Equal(t, Greetings(asha), api.sent)
}

func TestNotifyFirstFailureDoesNotSuppressSecond(t *testing.T) {
	api := &fakeAPI{
		sendErr: map[string]error{"Happy Birthday, Asha!": errors.New("peer flood")},
	}

	results := Notify(context.Background(), api, &tg.InputPeerUser{UserID: 1}, asha)

	require.Len(t, results, 2)
	assert.False(t, results[0].Ok)
	assert.Contains(t, results[0].Error, "peer flood")
	assert.True(t, results[1].Ok)
	assert.Equal(t, []string{"Congratulations, Rao!"}, api.sent)
}

func TestNotifyAllFailuresAreCaptured(t *testing.T) {
	api := &fakeAPI{
		sendErr: map[string]error{
			"Happy Birthday, Asha!": errors.New("down"),
			"Congratulations, Rao!": errors.New("down"),
		},
	}

	results := Notify(context.Background(), api, &tg.InputPeerUser{UserID: 1}, asha)

	require.Len(t, results, 2)
	assert.False(t, results[0].Ok)
	assert.False(t, results[1].Ok)
	assert.Empty(t, api.sent)
}
