// Package shopmesh provides a high-level façade over the multi-agent
// shopping assistant. It assembles the shared product and order store, the
// domain tool registry, the web search and delegation clients and the
// language model, and hands out ready-to-run servers for each service:
//  1. Create an Assistant via New() with a loaded config
//  2. Pick the server for the service being started (orchestrator,
//     product, order, search or the tool backend)
//  3. Start it and shut it down on process exit
//
// All defaults are safe for local development; the binaries in cmd/shopmesh
// are thin wrappers around this package.
package shopmesh

import (
	"fmt"

	"github.com/shopmesh/shopmesh/a2a"
	"github.com/shopmesh/shopmesh/assistant"
	"github.com/shopmesh/shopmesh/config"
	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/logging"
	"github.com/shopmesh/shopmesh/model"
	anthropicmodel "github.com/shopmesh/shopmesh/model/anthropic"
	openaimodel "github.com/shopmesh/shopmesh/model/openai"
	"github.com/shopmesh/shopmesh/runner"
	"github.com/shopmesh/shopmesh/store"
	"github.com/shopmesh/shopmesh/tool"
	"github.com/shopmesh/shopmesh/toolserver"
	"github.com/shopmesh/shopmesh/websearch"
)

// Options configures the Assistant instance.
type Options struct {
	// Logger used by every component built through the façade. Defaults to
	// a structured logger honoring the config's level and format.
	Logger logging.Logger

	// Model overrides provider selection, mainly for tests.
	Model model.Model
}

// Assistant aggregates the shared services behind the agent binaries.
type Assistant struct {
	cfg      *config.Config
	logger   logging.Logger
	store    *store.Store
	registry *tool.Registry
	search   *websearch.Client
	tools    *toolserver.Client
	llm      model.Model
}

// New creates an Assistant from the config. Any unset service is initialized
// with its default implementation.
func New(cfg *config.Config, optFns ...func(o *Options)) *Assistant {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.New(logging.Options{
			Level:  logging.ParseLevel(cfg.LogLevel),
			Format: cfg.LogFormat,
		})
	}

	st := store.NewStore()
	registry := assistant.NewDomainRegistry(st)

	search := websearch.NewClient(cfg.TavilyAPIKey, func(o *websearch.ClientOptions) {
		o.Logger = opts.Logger
	})

	tools := toolserver.NewClient(cfg.ToolBackendURL, registry, toolserver.ClientOptions{
		Logger: opts.Logger,
	})

	llm := opts.Model
	if llm == nil {
		llm = buildModel(cfg)
	}

	return &Assistant{
		cfg:      cfg,
		logger:   opts.Logger,
		store:    st,
		registry: registry,
		search:   search,
		tools:    tools,
		llm:      llm,
	}
}

// Logger returns the façade's logger for use by callers.
func (a *Assistant) Logger() logging.Logger { return a.logger }

// Store returns the shared product and order repository.
func (a *Assistant) Store() *store.Store { return a.store }

// ToolServer builds the shared tool backend service.
func (a *Assistant) ToolServer() *toolserver.Server {
	return toolserver.NewServer(toolserver.ServerConfig{
		Host:     a.cfg.Host,
		Port:     a.cfg.ToolBackendPort,
		Registry: a.registry,
		Logger:   a.logger,
	})
}

// OrchestratorServer builds the public entry point: the routing agent served
// over the wire plus the REST chat gateway.
func (a *Assistant) OrchestratorServer() *a2a.Server {
	delegationClient := a2a.NewClient(func(o *a2a.ClientOptions) {
		o.Logger = a.logger
	})
	delegator := assistant.NewDelegator(
		delegationClient,
		a.cfg.ProductAgentURL,
		a.cfg.OrderAgentURL,
		a.cfg.SearchAgentURL,
	)

	r := a.newRunner(assistant.NewOrchestratorAgent(a.llm, delegator))

	return a2a.NewServer(a2a.ServerConfig{
		Host: a.cfg.Host,
		Port: a.cfg.OrchestratorPort,
		Card: assistant.OrchestratorCard(a.serviceURL(a.cfg.OrchestratorPort)),
		Executor: assistant.NewAgentExecutor(r,
			"Shopping Assistant Response",
			"Analyzing your request and routing it to the right specialist...",
			a.logger,
		),
		Logger:      a.logger,
		ExtraRoutes: assistant.GatewayRoutes(r, delegator, a.logger),
	})
}

// ProductServer builds the product specialist service.
func (a *Assistant) ProductServer() *a2a.Server {
	r := a.newRunner(assistant.NewProductAgent(a.llm, a.tools, a.registry, a.search))

	return a2a.NewServer(a2a.ServerConfig{
		Host: a.cfg.Host,
		Port: a.cfg.ProductAgentPort,
		Card: assistant.ProductAgentCard(a.serviceURL(a.cfg.ProductAgentPort)),
		Executor: assistant.NewAgentExecutor(r,
			"Product Agent Response",
			"Searching the product catalog...",
			a.logger,
		),
		Logger: a.logger,
	})
}

// OrderServer builds the order specialist service.
func (a *Assistant) OrderServer() *a2a.Server {
	r := a.newRunner(assistant.NewOrderAgent(a.llm, a.tools, a.registry, a.search))

	return a2a.NewServer(a2a.ServerConfig{
		Host: a.cfg.Host,
		Port: a.cfg.OrderAgentPort,
		Card: assistant.OrderAgentCard(a.serviceURL(a.cfg.OrderAgentPort)),
		Executor: assistant.NewAgentExecutor(r,
			"Order Agent Response",
			"Checking your order details...",
			a.logger,
		),
		Logger: a.logger,
	})
}

// SearchServer builds the web research specialist service.
func (a *Assistant) SearchServer() *a2a.Server {
	r := a.newRunner(assistant.NewSearchAgent(a.llm, a.search))

	return a2a.NewServer(a2a.ServerConfig{
		Host: a.cfg.Host,
		Port: a.cfg.SearchAgentPort,
		Card: assistant.SearchAgentCard(a.serviceURL(a.cfg.SearchAgentPort)),
		Executor: assistant.NewAgentExecutor(r,
			"Search Agent Response",
			"Searching the web...",
			a.logger,
		),
		Logger: a.logger,
	})
}

func (a *Assistant) newRunner(ag core.Agent) *runner.Runner {
	return runner.New(ag, func(o *runner.Options) {
		o.MaxModelCalls = a.cfg.MaxIterations
		o.Logger = a.logger
	})
}

func (a *Assistant) serviceURL(port int) string {
	return fmt.Sprintf("http://%s:%d/", a.cfg.Host, port)
}

// buildModel selects the provider from config. OpenAI credentials are read
// by the SDK from the environment, which the config loader populates.
func buildModel(cfg *config.Config) model.Model {
	if cfg.LLMProvider == "anthropic" {
		return anthropicmodel.NewModel(func(o *anthropicmodel.Options) {
			o.APIKey = cfg.AnthropicAPIKey
			o.Temperature = cfg.Temperature
			o.MaxTokens = int64(cfg.MaxTokens)
		})
	}

	return openaimodel.NewModel(func(o *openaimodel.Options) {
		o.Model = cfg.LLMModel
		o.Temperature = cfg.Temperature
		o.MaxCompletionTokens = int64(cfg.MaxTokens)
	})
}
