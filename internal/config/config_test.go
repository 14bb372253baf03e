package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(databaseDSNEnv, "")
	t.Setenv(telegramTokenEnv, "")
	t.Setenv(telegramChatIDEnv, "")

	cfg := Load()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "csv", cfg.Source.Kind)
	assert.True(t, cfg.Output.CSV.Enabled)
	assert.False(t, cfg.Mapping.Strict)
	assert.Equal(t, "checklist-butterflies-europe", cfg.Mapping.Namespace)
	assert.Equal(t, "en", cfg.Dataset.Language)
	assert.NotEmpty(t, cfg.Dataset.License)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
logging:
  level: debug
source:
  kind: html
mapping:
  strict: true
  namespace: my-checklist
output:
  sqlite:
    enabled: true
    path: /tmp/checklist.db
dataset:
  datasetName: Regional Checklist
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
	t.Setenv(configPathEnv, path)
	t.Setenv(databaseDSNEnv, "")

	cfg := Load()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "html", cfg.Source.Kind)
	assert.True(t, cfg.Mapping.Strict)
	assert.Equal(t, "my-checklist", cfg.Mapping.Namespace)
	assert.True(t, cfg.Output.SQLite.Enabled)
	assert.Equal(t, "/tmp/checklist.db", cfg.Output.SQLite.Path)
	assert.Equal(t, "Regional Checklist", cfg.Dataset.DatasetName)
	// untouched defaults survive the merge
	assert.Equal(t, "en", cfg.Dataset.Language)
	assert.True(t, cfg.Output.CSV.Enabled)
}

func TestLoadEnvOverridesWin(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(databaseDSNEnv, "postgres://runtime/dsn")
	t.Setenv(telegramTokenEnv, "token-from-env")
	t.Setenv(telegramChatIDEnv, "42")

	cfg := Load()

	assert.Equal(t, "postgres://runtime/dsn", cfg.Output.Postgres.DSN)
	assert.Equal(t, "token-from-env", cfg.Notifications.Telegram.BotToken)
	assert.Equal(t, "42", cfg.Notifications.Telegram.ChatID)
}

func TestLoadUnreadableFileFallsBack(t *testing.T) {
	t.Setenv(configPathEnv, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv(databaseDSNEnv, "")

	cfg := Load()
	assert.Equal(t, "csv", cfg.Source.Kind)
}
