package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesTaggedFields(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("AUTH_TOKEN_ISSUER", "go-bookmark-keeper")
	t.Setenv("AUTH_TOKEN_DURATION", "6h")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite3")
	t.Setenv("STORAGE_DB_DATABASE_URI", "bookmarks.db")
	t.Setenv("SERVER_ADDRESS", "localhost:4444")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "15s")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "env-sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "go-bookmark-keeper", cfg.Auth.TokenIssuer)
	assert.Equal(t, 6*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "bookmarks.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:4444", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Empty(t, cfg.Auth.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_BadDurationValue(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "whenever")

	var cfg StructuredConfig
	require.Error(t, parseEnv(&cfg))
}
