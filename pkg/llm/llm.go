// Package llm holds the provider-agnostic chat types used by the generation
// and grading engine. Provider-specific wire formats live under
// pkg/llm/provider.
package llm

// StreamFormat identifies how a provider frames its streaming response body.
type StreamFormat int

const (
	// FormatSSE is blank-line-delimited Server-Sent Events (OpenAI, Anthropic).
	FormatSSE StreamFormat = iota

	// FormatNDJSON is newline-delimited JSON (Ollama).
	FormatNDJSON
)

// Message is a single text message in a chat exchange.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// ChatRequest is the internal representation of a streaming chat completion
// request. Providers serialize it into their own wire format.
type ChatRequest struct {
	Model       string    `json:"model"`
	System      string    `json:"system,omitempty"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
}

// StreamChunk is one parsed unit of a provider's streaming response.
type StreamChunk struct {
	// Content is the incremental text carried by this chunk, possibly empty
	// (metadata-only chunks).
	Content string

	// Done marks the provider's final chunk.
	Done bool

	// StopReason is set on the final chunk when the provider reports one.
	StopReason string

	// Usage is set when the chunk carries token accounting. Providers split
	// usage across chunks differently; callers accumulate non-zero fields.
	Usage *Usage
}

// Usage contains token counts reported by the upstream provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// Accumulate folds non-zero fields of other into u.
func (u *Usage) Accumulate(other *Usage) {
	if other == nil {
		return
	}
	if other.PromptTokens > 0 {
		u.PromptTokens = other.PromptTokens
	}
	if other.CompletionTokens > 0 {
		u.CompletionTokens = other.CompletionTokens
	}
	u.TotalTokens = u.PromptTokens + u.CompletionTokens
}

// ErrorResponse is the JSON error body returned by studyforge HTTP handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}
