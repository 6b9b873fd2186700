package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, 8000, cfg.OrchestratorPort)
	assert.Equal(t, 8006, cfg.ProductAgentPort)
	assert.Equal(t, "http://localhost:8090", cfg.ToolBackendURL)
	assert.Equal(t, 100, cfg.MaxIterations)
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LLM_PROVIDER=anthropic\nORDER_AGENT_PORT=9005\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("LLM_PROVIDER")
		os.Unsetenv("ORDER_AGENT_PORT")
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.LLMProvider)
	assert.Equal(t, 9005, cfg.OrderAgentPort)
}

func TestProcessEnvWinsOverEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))

	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestAPIKeyFollowsProvider(t *testing.T) {
	cfg := &Config{
		LLMProvider:     "anthropic",
		OpenAIAPIKey:    "sk-openai",
		AnthropicAPIKey: "sk-anthropic",
	}
	assert.Equal(t, "sk-anthropic", cfg.APIKey())

	cfg.LLMProvider = "openai"
	assert.Equal(t, "sk-openai", cfg.APIKey())
}

func TestAgentURLs(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	urls := cfg.AgentURLs()
	assert.Equal(t, "http://localhost:8006", urls["product_agent"])
	assert.Equal(t, "http://localhost:8005", urls["order_agent"])
	assert.Equal(t, "http://localhost:8004", urls["search_agent"])
}
