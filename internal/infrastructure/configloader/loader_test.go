package configloader

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
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{".env.local", ".env"}, cfg.Env.Files)
	assert.Equal(t, "https://api.coingecko.com/api/v3", cfg.CoinGecko.BaseURL)
	assert.Equal(t, "usd", cfg.CoinGecko.VsCurrency)
	assert.Equal(t, 5*time.Minute, cfg.CoinGecko.CacheTTL())
	assert.Equal(t, 20*time.Second, cfg.Proxy.RequestTimeout())
	assert.InDelta(t, 10.0, cfg.Proxy.RateLimitPerSecond, 0.0001)
	assert.Equal(t, 4, cfg.Verifier.MaxConcurrentRoutines)
	assert.Equal(t, 10*time.Second, cfg.Verifier.RPCCallTimeout())
	assert.Equal(t, uint(3), cfg.Verifier.Attempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Verifier.RetryDelay())
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout())
	assert.False(t, cfg.Swagger.Enabled)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  port: "9090"
  corsAllowedOrigins: ["https://exchange.example"]
logging:
  level: debug
env:
  files: [".env.test"]
proxy:
  rateLimitPerSecond: 2.5
  burst: 3
coinGecko:
  apiKey: cg-key
  vsCurrency: eur
verifier:
  maxConcurrentRoutines: 8
swagger:
  enabled: true
`))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://exchange.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{".env.test"}, cfg.Env.Files)
	assert.InDelta(t, 2.5, cfg.Proxy.RateLimitPerSecond, 0.0001)
	assert.Equal(t, 3, cfg.Proxy.Burst)
	assert.Equal(t, "cg-key", cfg.CoinGecko.APIKey)
	assert.Equal(t, "eur", cfg.CoinGecko.VsCurrency)
	assert.Equal(t, 8, cfg.Verifier.MaxConcurrentRoutines)
	assert.True(t, cfg.Swagger.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "server: [unclosed\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "logging:\n  level: verbose\n"))
	assert.ErrorContains(t, err, "unknown logging level")
}

func TestLoad_LevelCaseInsensitive(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"INFO", "info"},
		{"Debug", "debug"},
		{"WARNING", "warn"},
		{" error ", "error"},
	}
	for _, tt := range tests {
		cfg, err := Load(writeConfig(t, "logging:\n  level: \""+tt.in+"\"\n"))
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, cfg.Logging.Level, tt.in)
	}
}
