package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempConfig(t, dir, "client.json", `{
		// staging service
		"api_origin": "https://staging.har.example",
		"languages": ["vi-VN", "fr"],
		"request_timeout": "15s",
		"online_check_interval": "10s",
	}`)

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://staging.har.example", cfg.APIOrigin)
		assert.Equal(t, []string{"vi-VN", "fr"}, cfg.Languages)
		assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
		assert.Equal(t, "dev-api-key", cfg.APIKey, "absent fields keep defaults")
		assert.Equal(t, 10, cfg.PageSize)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIOrigin: "https://defaults", OnlineCheckInterval: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "https://defaults", cfg.APIOrigin)
		assert.Equal(t, 42*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := writeTempConfig(t, dir, "bad.json", `{ this is not valid json`)
		os.Args = []string{"testbin", "-c", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "absent.json")}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
