package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "https://tma.astrum.app", cfg.LinkBase)
	require.Equal(t, "info", cfg.LogConfig.Level)
	require.False(t, cfg.Production())
	require.False(t, cfg.Database.Configured())
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"env": "staging",
		"port": 9090,
		"database": {"host": "db.internal", "port": 5432, "user": "app", "db_name": "tzbrief"}
	}`), 0o644))

	t.Setenv("APP_ENV", "production")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Env, "environment wins over file")
	require.True(t, cfg.Production())
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "123:abc", cfg.Telegram.BotToken)
	require.True(t, cfg.Database.Configured())
	require.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	require.Error(t, err)
}

func TestValidateFileStore(t *testing.T) {
	tests := []struct {
		name    string
		store   FileStoreConfig
		wantErr bool
	}{
		{name: "unconfigured", store: FileStoreConfig{}},
		{name: "local with dir", store: FileStoreConfig{Type: "local", Dir: "/var/blobs"}},
		{name: "local without dir", store: FileStoreConfig{Type: "local"}, wantErr: true},
		{
			name: "s3 complete",
			store: FileStoreConfig{Type: "s3", S3: S3Config{
				Endpoint: "s3.example", Bucket: "tzbrief", SecretID: "id", SecretKey: "key",
			}},
		},
		{
			name:    "s3 missing bucket",
			store:   FileStoreConfig{Type: "s3", S3: S3Config{Endpoint: "s3.example", SecretID: "id", SecretKey: "key"}},
			wantErr: true,
		},
		{name: "unknown type", store: FileStoreConfig{Type: "gcs"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{FileStore: tt.store}
			cfg.applyDefaults()
			err := cfg.validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
