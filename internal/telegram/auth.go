package telegram

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
)

// promptAuth asks for the login code (and 2FA password, if enabled) on
// stdin. It only ever runs on the first login; afterwards the stored
// session is reused silently.
type promptAuth struct {
	phone string
}

func (a promptAuth) Phone(_ context.Context) (string, error) {
	if a.phone != "" {
		return a.phone, nil
	}
	return prompt("Phone number (international format): ")
}

func (a promptAuth) Code(_ context.Context, _ *tg.AuthSentCode) (string, error) {
	return prompt("Login code: ")
}

func (a promptAuth) Password(_ context.Context) (string, error) {
	return prompt("2FA password: ")
}

func (a promptAuth) AcceptTermsOfService(_ context.Context, _ tg.HelpTermsOfService) error {
	return nil
}

func (a promptAuth) SignUp(_ context.Context) (auth.UserInfo, error) {
	return auth.UserInfo{}, errors.New("account sign up is not supported")
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	value, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
