package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "sprint-roi",
			TokenDuration: time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/agile"}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validConfig().validate())
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing DSN",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing sign key",
			mutate:  func(c *StructuredConfig) { c.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(c *StructuredConfig) { c.App.TokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestBuilder_MergePriority(t *testing.T) {
	// First collected source wins for non-zero fields: values present in the
	// first config must not be overwritten by later configs.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{TokenSignKey: "from-env", TokenIssuer: "sprint-roi", TokenDuration: time.Hour},
			Server:  Server{HTTPAddress: "localhost:8080"},
			Storage: Storage{DB: DB{DSN: ""}},
		},
		&StructuredConfig{
			App:     App{TokenSignKey: "from-flags"},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/agile"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.TokenSignKey, "earlier source wins")
	assert.Equal(t, "postgres://localhost/agile", cfg.Storage.DB.DSN, "gaps filled by later sources")
}

func TestParseJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
		"app": {"token_sign_key": "secret", "token_issuer": "sprint-roi", "token_duration": "2h"},
		"storage": {"db": {"dsn": "postgres://localhost/agile"}},
		"server": {"http_address": "localhost:9090", "request_timeout": "15s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
