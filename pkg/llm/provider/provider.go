// Package provider defines the interface between the generation engine and
// upstream LLM APIs, plus a factory over the supported implementations.
package provider

import (
	"github.com/studyforgeco/studyforge/pkg/llm"
)

// Provider adapts the internal chat representation to one upstream API.
type Provider interface {
	// Name returns the canonical provider name ("openai", "anthropic", "ollama").
	Name() string

	// ChatPath returns the URL path of the streaming chat endpoint, appended
	// to the configured upstream base URL.
	ChatPath() string

	// StreamFormat returns how the streaming response body is framed.
	StreamFormat() llm.StreamFormat

	// Headers returns provider-specific request headers. The apiKey may be
	// empty for providers that need none (Ollama).
	Headers(apiKey string) map[string]string

	// BuildChatRequest serializes a streaming chat request into the
	// provider's wire format.
	BuildChatRequest(req *llm.ChatRequest) ([]byte, error)

	// ParseStreamChunk converts a single streaming payload (one SSE data
	// field or one NDJSON line) into the internal format. Returns (nil, nil)
	// for payloads that should be skipped (keep-alives, sentinels).
	ParseStreamChunk(payload []byte) (*llm.StreamChunk, error)
}
