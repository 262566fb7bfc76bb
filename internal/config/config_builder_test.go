package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergesSourcesEarlierWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Auth:    Auth{TokenSignKey: "env-key"},
			Storage: Storage{DB: DB{DSN: "postgres://env"}},
		},
		&StructuredConfig{
			Auth:    Auth{TokenSignKey: "flag-key", TokenIssuer: "flag-issuer"},
			Storage: Storage{DB: DB{DSN: "postgres://flag"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// non-zero fields of the earlier source are preserved
	assert.Equal(t, "env-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	// gaps are filled from the later source
	assert.Equal(t, "flag-issuer", cfg.Auth.TokenIssuer)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Auth:    Auth{TokenSignKey: "key"},
		Storage: Storage{DB: DB{DSN: "postgres://db"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 30*time.Minute, cfg.Auth.ResetTokenDuration)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		cfg  *StructuredConfig
		want error
	}{
		{
			name: "missing sign key",
			cfg:  &StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://db"}}},
			want: ErrInvalidAuthConfigs,
		},
		{
			name: "missing dsn",
			cfg:  &StructuredConfig{Auth: Auth{TokenSignKey: "key"}},
			want: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
