package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
graph:
  dir: ./triage
  root: begin
store:
  backend: redis
  redis:
    addr: redis:6380
    db: 2
    ttl: 90m
log:
  level: debug
metrics:
  file: /var/lib/node_exporter/failtrace.prom
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./triage", cfg.Graph.Dir)
	assert.Equal(t, "begin", cfg.Graph.Root)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis:6380", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	assert.Equal(t, 90*time.Minute, cfg.Store.Redis.TTL)
	assert.Equal(t, "failtrace:", cfg.Store.Redis.Prefix, "unset keys keep their default")
	assert.Equal(t, ".failtrace/store", cfg.Store.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/lib/node_exporter/failtrace.prom", cfg.Metrics.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: file\n")
	t.Setenv(EnvStore, "redis")
	t.Setenv(EnvRedisAddr, "cache:6379")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvStoreKey, "c2VjcmV0")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "cache:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Store.Encryption.Enabled())
}

func TestEncryptionConfig_Decode(t *testing.T) {
	enc := EncryptionConfig{Key: "c2VjcmV0", FallbackKeys: []string{"b2xk"}}
	active, fallback, err := enc.Decode()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), active)
	assert.Equal(t, [][]byte{[]byte("old")}, fallback)

	assert.False(t, EncryptionConfig{}.Enabled())

	_, _, err = EncryptionConfig{Key: "c2VjcmV0", FallbackKeys: []string{"!!"}}.Decode()
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "Backend", content: "store:\n  backend: sqlite\n", want: "store.backend"},
		{name: "Level", content: "log:\n  level: chatty\n", want: "log.level"},
		{name: "TTL", content: "store:\n  redis:\n    ttl: -1s\n", want: "store.redis.ttl"},
		{name: "Key", content: "store:\n  encryption:\n    key: '%%%'\n", want: "store.encryption"},
		{name: "Syntax", content: "graph: [", want: "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
