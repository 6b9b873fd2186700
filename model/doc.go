// Package model defines the provider-agnostic abstractions for interacting
// with language models.
//
// Core goals:
//   - A single blocking Generate call per assistant turn
//   - A normalized tool / function call representation (ToolDefinition, ToolCall)
//   - Request/response shapes that stay minimal and transport independent
//   - Lightweight mocking for tests (MockModel)
//
// Providers (OpenAI, Anthropic) implement the Model interface from this
// package so higher layers (agents, flows) remain decoupled from vendor SDKs.
package model
