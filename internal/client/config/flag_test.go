package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "https://har.example", "-k", "secret", "-d", "/tmp/h.db",
				"-l", "fr-FR, en-US", "-p", "5", "-t", "20", "-i", "10"},
			expected: &Config{
				APIOrigin:           "https://har.example",
				APIKey:              "secret",
				DatabasePath:        "/tmp/h.db",
				Languages:           []string{"fr-FR", "en-US"},
				PageSize:            5,
				RequestTimeout:      20 * time.Second,
				OnlineCheckInterval: 10 * time.Second,
			},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"cmd", "-c", "cfg.json", "-x", "-a", "https://har.example"},
			expected: &Config{
				APIOrigin: "https://har.example",
			},
		},
		{name: "incorrect check interval", args: []string{"cmd", "-i", "abc"}, expectPanic: true},
		{name: "incorrect page size", args: []string{"cmd", "-p", "ten"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"fr", "it"}, splitList(" fr ,, it,"))
	assert.Nil(t, splitList(""))
}
