package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// Config holds every runtime setting for the assistant services. Values come
// from the environment, optionally seeded from a .env file.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`

	LLMProvider   string  `envconfig:"LLM_PROVIDER" default:"openai"`
	LLMModel      string  `envconfig:"LLM_MODEL" default:"gpt-4o-mini"`
	Temperature   float64 `envconfig:"LLM_TEMPERATURE" default:"0.3"`
	MaxTokens     int     `envconfig:"LLM_MAX_TOKENS" default:"2048"`
	MaxIterations int     `envconfig:"MAX_ITERATIONS" default:"100"`

	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
	TavilyAPIKey    string `envconfig:"TAVILY_API_KEY"`

	Host             string `envconfig:"HOST" default:"0.0.0.0"`
	OrchestratorPort int    `envconfig:"ORCHESTRATOR_PORT" default:"8000"`
	SearchAgentPort  int    `envconfig:"SEARCH_AGENT_PORT" default:"8004"`
	OrderAgentPort   int    `envconfig:"ORDER_AGENT_PORT" default:"8005"`
	ProductAgentPort int    `envconfig:"PRODUCT_AGENT_PORT" default:"8006"`
	ToolBackendPort  int    `envconfig:"TOOL_BACKEND_PORT" default:"8090"`

	SearchAgentURL  string `envconfig:"SEARCH_AGENT_URL" default:"http://localhost:8004"`
	OrderAgentURL   string `envconfig:"ORDER_AGENT_URL" default:"http://localhost:8005"`
	ProductAgentURL string `envconfig:"PRODUCT_AGENT_URL" default:"http://localhost:8006"`
	ToolBackendURL  string `envconfig:"TOOL_BACKEND_URL" default:"http://localhost:8090"`
}

// Load reads the optional env file, exports its settings into the process
// environment and then resolves the Config from it. An empty path falls back
// to a .env in the working directory when one exists.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := exportEnvironment(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else if err := exportEnvironmentIfExists(".env"); err != nil {
		return nil, fmt.Errorf("failed to load default env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad is Load that panics on error, for main wiring.
func MustLoad(envFile string) *Config {
	cfg, err := Load(envFile)
	if err != nil {
		panic(err)
	}
	return cfg
}

// APIKey returns the credential matching the configured provider.
func (c *Config) APIKey() string {
	if strings.EqualFold(c.LLMProvider, "anthropic") {
		return c.AnthropicAPIKey
	}
	return c.OpenAIAPIKey
}

// AgentURLs maps the specialist agent names to their base URLs.
func (c *Config) AgentURLs() map[string]string {
	return map[string]string{
		"product_agent": c.ProductAgentURL,
		"order_agent":   c.OrderAgentURL,
		"search_agent":  c.SearchAgentURL,
	}
}

func exportEnvironmentIfExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	return exportEnvironment(path)
}

func exportEnvironment(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	for k, val := range v.AllSettings() {
		key := strings.ToUpper(k)
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, fmt.Sprint(val)); err != nil {
			return err
		}
	}

	return nil
}
