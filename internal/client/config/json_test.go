package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"server_base_url":         "https://auth.example:8443",
		"store_kind":              "file",
		"web_read_header_timeout": "10s",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://auth.example:8443", cfg.ServerBaseURL)
		assert.Equal(t, StoreFile, cfg.StoreKind)
		assert.Equal(t, 10*time.Second, cfg.WebReadHeaderTimeout)
		assert.Equal(t, "info", cfg.LogLevel, "keys absent from the file keep their value")
	})

	t.Run("no flags, no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			ServerBaseURL:        "http://defaults:1234",
			WebReadHeaderTimeout: 42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.ServerBaseURL)
		assert.Equal(t, 42*time.Second, cfg.WebReadHeaderTimeout)
	})

	t.Run("invalid JSON, panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-c", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file, panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "absent.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

func Test_parseJson_YAML(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := filepath.Join(dir, "gophauth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_base_url: https://auth.example
store_kind: memory
log_format: json
web_read_header_timeout: 2s
`), 0o600))

	os.Args = []string{"testbin", "-c", path}
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "https://auth.example", cfg.ServerBaseURL)
	assert.Equal(t, StoreMemory, cfg.StoreKind)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 2*time.Second, cfg.WebReadHeaderTimeout)
	assert.Equal(t, "127.0.0.1:3000", cfg.WebListenAddr)

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("web_read_header_timeout: soon\n"), 0o600))
	os.Args = []string{"testbin", "-c", bad}
	require.Panics(t, func() { parseJson(&Config{}) })
}
