package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViniZap4/quickmemo/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"QUICKMEMO_DATA_DIR",
		"QUICKMEMO_AUTOSAVE_INTERVAL",
		"QUICKMEMO_DEFAULT_TITLE",
		"QUICKMEMO_LOG_LEVEL",
		"QUICKMEMO_ADDR",
		"QUICKMEMO_PASSWORD",
		"DATABASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("QUICKMEMO_DATA_DIR", dir)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, 2*time.Second, cfg.AutoSaveInterval)
	assert.Equal(t, domain.DefaultTitle, cfg.DefaultTitle)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, filepath.Join(dir, "memos"), cfg.MemoDir())
	assert.Equal(t, filepath.Join(dir, "autosave.txt"), cfg.AutoSavePath())
	assert.Equal(t, filepath.Join(dir, "logs", "quickmemo.log"), cfg.LogPath())
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `data_dir: ` + dir + `
autosave_interval: 5s
default_title: untitled
log_level: debug
server:
  addr: ":9000"
  password: secret
database_url: postgres://localhost/memos
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, 5*time.Second, cfg.AutoSaveInterval)
	assert.Equal(t, "untitled", cfg.DefaultTitle)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "secret", cfg.Server.Password)
	assert.Equal(t, "postgres://localhost/memos", cfg.DatabaseURL)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("autosave_interval: 5s\nlog_level: debug\n"), 0644))
	t.Setenv("QUICKMEMO_DATA_DIR", dir)
	t.Setenv("QUICKMEMO_AUTOSAVE_INTERVAL", "750ms")
	t.Setenv("QUICKMEMO_ADDR", ":7000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 750*time.Millisecond, cfg.AutoSaveInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":7000", cfg.Server.Addr)
}

func TestLoadRejectsBadInterval(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "unparsable", value: "soon"},
		{name: "zero", value: "0s"},
		{name: "negative", value: "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("QUICKMEMO_DATA_DIR", t.TempDir())
			t.Setenv("QUICKMEMO_AUTOSAVE_INTERVAL", tt.value)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
