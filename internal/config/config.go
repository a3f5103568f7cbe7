package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StrategyLookup = "lookup"
	StrategyImport = "import"
)

// Error reports missing or malformed configuration. It aborts the run
// before any file or network activity.
type Error struct {
	Field string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type Config struct {
	AppID   int
	AppHash string

	// Phone of the account, only needed for the first interactive login
	Phone string

	SheetPath   string
	SessionFile string

	ResolveStrategy string
	DedupePhones    bool

	// Optional sent registry
	SentTable string
	AWSRegion string

	// Optional run summary over SMS
	TwilioAccountSid string
	TwilioAuthToken  string
	TwilioFromNumber string
	TwilioToNumber   string
}

// Load merges a local .env file into the environment if one exists and
// reads the configuration from it. TELEGRAM_API_ID and TELEGRAM_API_HASH
// are required, everything else has a default or is optional.
func Load() (Config, error) {
	_ = godotenv.Load()

	rawID, ok := os.LookupEnv("TELEGRAM_API_ID")
	if !ok || rawID == "" {
		return Config{}, &Error{Field: "TELEGRAM_API_ID", Err: fmt.Errorf("not set")}
	}

	appID, err := strconv.Atoi(rawID)
	if err != nil {
		return Config{}, &Error{Field: "TELEGRAM_API_ID", Err: fmt.Errorf("not an integer: %q", rawID)}
	}

	appHash, ok := os.LookupEnv("TELEGRAM_API_HASH")
	if !ok || appHash == "" {
		return Config{}, &Error{Field: "TELEGRAM_API_HASH", Err: fmt.Errorf("not set")}
	}

	strategy := getEnv("RESOLVE_STRATEGY", StrategyLookup)
	if strategy != StrategyLookup && strategy != StrategyImport {
		return Config{}, &Error{Field: "RESOLVE_STRATEGY", Err: fmt.Errorf("must be %q or %q, got %q", StrategyLookup, StrategyImport, strategy)}
	}

	return Config{
		AppID:            appID,
		AppHash:          appHash,
		Phone:            getEnv("PHONE", ""),
		SheetPath:        getEnv("BIRTHDAYS_FILE", "birthdays.xlsx"),
		SessionFile:      getEnv("SESSION_FILE", "autoresponder_session.json"),
		ResolveStrategy:  strategy,
		DedupePhones:     getEnv("DEDUPE_PHONES", "true") != "false",
		SentTable:        getEnv("SENT_TABLE", ""),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		TwilioAccountSid: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
		TwilioToNumber:   getEnv("TWILIO_TO_NUMBER", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
