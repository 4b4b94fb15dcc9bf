package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TRYON_TEST_SET", "from-env")

	tests := []struct {
		in   string
		want string
	}{
		{in: "${TRYON_TEST_SET}", want: "from-env"},
		{in: "${TRYON_TEST_SET:fallback}", want: "from-env"},
		{in: "${TRYON_TEST_UNSET:fallback}", want: "fallback"},
		{in: "${TRYON_TEST_UNSET:}", want: ""},
		{in: "${TRYON_TEST_UNSET}", want: "${TRYON_TEST_UNSET}"},
		{in: "url: ${TRYON_TEST_UNSET:https://host:443}", want: "url: https://host:443"},
		{in: "plain", want: "plain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, expandEnv(tt.in), tt.in)
	}
}

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTP.Port)
	assert.Equal(t, 90*time.Second, cfg.Server.HTTP.WriteTimeout)
	assert.Equal(t, int64(20<<20), cfg.Server.HTTP.MaxBodyBytes)

	assert.Equal(t, "https://www.needware.dev", cfg.LLM.BaseURL)
	assert.Equal(t, "/v1/chat/completions", cfg.LLM.ChatPath)
	assert.Equal(t, "google/gemini-3-pro-image-preview", cfg.LLM.Model)
	assert.Equal(t, 8192, cfg.LLM.MaxTokens)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)

	assert.False(t, cfg.Observability.Tracing.Enabled)
	assert.True(t, cfg.Observability.Metrics.Enabled)
	assert.Equal(t, []string{"*"}, cfg.Security.CORS.AllowedOrigins)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
llm:
  base_url: ${TRYON_TEST_BASE_URL:https://fallback.example}
  model: file-model
  timeout: 10s
server:
  http:
    port: 9090
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("APP_ENV", "staging")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.staging.yaml"), []byte("llm:\n  max_tokens: 1024\n"), 0o600))
	t.Setenv("LLM_MODEL", "env-model")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://fallback.example", cfg.LLM.BaseURL)
	assert.Equal(t, "env-model", cfg.LLM.Model)
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 1024, cfg.LLM.MaxTokens)
	assert.Equal(t, 9090, cfg.Server.HTTP.Port)
}

func TestLoadFromInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("llm: [unterminated"), 0o600))

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}
