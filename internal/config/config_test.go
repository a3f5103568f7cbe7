package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("TELEGRAM_API_ID", "12345")
	t.Setenv("TELEGRAM_API_HASH", "0123456789abcdef")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12345, cfg.AppID)
	assert.Equal(t, "0123456789abcdef", cfg.AppHash)
	assert.Equal(t, "birthdays.xlsx", cfg.SheetPath)
	assert.Equal(t, "autoresponder_session.json", cfg.SessionFile)
	assert.Equal(t, StrategyLookup, cfg.ResolveStrategy)
	assert.True(t, cfg.DedupePhones)
	assert.Empty(t, cfg.SentTable)
}

func TestLoadMissingAppID(t *testing.T) {
	t.Setenv("TELEGRAM_API_ID", "")
	t.Setenv("TELEGRAM_API_HASH", "0123456789abcdef")

	_, err := Load()
	require.Error(t, err)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "TELEGRAM_API_ID", cfgErr.Field)
}

func TestLoadNonNumericAppID(t *testing.T) {
	t.Setenv("TELEGRAM_API_ID", "not-a-number")
	t.Setenv("TELEGRAM_API_HASH", "0123456789abcdef")

	_, err := Load()

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "TELEGRAM_API_ID", cfgErr.Field)
}

func TestLoadMissingAppHash(t *testing.T) {
	t.Setenv("TELEGRAM_API_ID", "12345")
	t.Setenv("TELEGRAM_API_HASH", "")

	_, err := Load()

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "TELEGRAM_API_HASH", cfgErr.Field)
}

func TestLoadStrategy(t *testing.T) {
	setRequired(t)

	t.Setenv("RESOLVE_STRATEGY", "import")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StrategyImport, cfg.ResolveStrategy)

	t.Setenv("RESOLVE_STRATEGY", "bogus")
	_, err = Load()
	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "RESOLVE_STRATEGY", cfgErr.Field)
}

func TestLoadDedupeDisabled(t *testing.T) {
	setRequired(t)
	t.Setenv("DEDUPE_PHONES", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.DedupePhones)
}
