// Package assistant assembles the multi-agent shopping assistant: the
// domain tool registry over the product and order store, web search tools,
// the four agents (orchestrator, product, order, search), the task executor
// serving them over the wire and the orchestrator's REST gateway.
package assistant
