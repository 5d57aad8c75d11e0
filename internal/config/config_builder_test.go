package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig is a minimal configuration that passes validation.
func validTestConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "go-bookmark-keeper",
			TokenDuration: time.Hour,
		},
		Storage: Storage{
			DB: DB{Driver: "sqlite3", DSN: "bookmarks.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:3333",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourcesWin verifies the merge precedence: a field set by
// an earlier source is not overwritten by a later one.
func TestBuild_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9999"}},
		validTestConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)

	// fields the first source left empty come from the second
	assert.Equal(t, "go-bookmark-keeper", cfg.Auth.TokenIssuer)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
}

// TestBuild_ValidatesMergedResult verifies that build rejects a merged config
// missing required fields.
func TestBuild_ValidatesMergedResult(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:3333"},
	})

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsOnlyMissingFields verifies that defaults never
// override values from earlier sources.
func TestWithDefaults_FillsOnlyMissingFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  "test-sign-key",
			TokenDuration: time.Minute,
		},
		Storage: Storage{DB: DB{Driver: "sqlite3", DSN: "bookmarks.db"}},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	// explicitly set values survive
	assert.Equal(t, time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)

	// gaps are filled by defaults
	assert.Equal(t, "go-bookmark-keeper", cfg.Auth.TokenIssuer)
	assert.Equal(t, "localhost:3333", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// TestWithDefaults_AloneFailsValidation verifies that defaults alone are not
// a runnable configuration: the sign key and DSN have no safe default.
func TestWithDefaults_AloneFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().withDefaults().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenSignKey = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing issuer",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenIssuer = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenDuration = 0 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
