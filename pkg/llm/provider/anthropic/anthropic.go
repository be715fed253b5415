// Package anthropic implements the provider interface for Anthropic's
// messages API, which streams typed SSE events (message_start,
// content_block_delta, message_delta, message_stop).
package anthropic

import (
	"encoding/json"

	"github.com/studyforgeco/studyforge/pkg/llm"
)

const apiVersion = "2023-06-01"

// defaultMaxTokens is applied when the caller sets none; the messages API
// requires the field.
const defaultMaxTokens = 4096

type provider struct{}

func New() *provider { return &provider{} }

func (p *provider) Name() string {
	return "anthropic"
}

func (p *provider) ChatPath() string {
	return "/v1/messages"
}

func (p *provider) StreamFormat() llm.StreamFormat {
	return llm.FormatSSE
}

func (p *provider) Headers(apiKey string) map[string]string {
	headers := map[string]string{
		"Content-Type":      "application/json",
		"anthropic-version": apiVersion,
	}
	if apiKey != "" {
		headers["x-api-key"] = apiKey
	}
	return headers
}

func (p *provider) BuildChatRequest(req *llm.ChatRequest) ([]byte, error) {
	messages := make([]anthropicMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, anthropicMessage{Role: msg.Role, Content: msg.Content})
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	out := anthropicRequest{
		Model:       req.Model,
		System:      req.System,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Stream:      true,
		Temperature: req.Temperature,
	}

	return json.Marshal(out)
}

// ParseStreamChunk dispatches on the event's "type" field. Anthropic splits
// a response across several event kinds: content_block_delta events carry
// text, message_start carries input token usage, message_delta carries output
// token usage and the stop reason, message_stop ends the stream.
func (p *provider) ParseStreamChunk(payload []byte) (*llm.StreamChunk, error) {
	var ev anthropicStreamEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, err
	}

	switch ev.Type {
	case "content_block_delta":
		return &llm.StreamChunk{Content: ev.Delta.Text}, nil

	case "message_start":
		chunk := &llm.StreamChunk{}
		if ev.Message != nil && ev.Message.Usage != nil {
			chunk.Usage = &llm.Usage{
				PromptTokens: ev.Message.Usage.InputTokens +
					ev.Message.Usage.CacheCreationInputTokens +
					ev.Message.Usage.CacheReadInputTokens,
			}
		}
		return chunk, nil

	case "message_delta":
		chunk := &llm.StreamChunk{StopReason: ev.Delta.StopReason}
		if ev.Usage != nil {
			chunk.Usage = &llm.Usage{CompletionTokens: ev.Usage.OutputTokens}
		}
		return chunk, nil

	case "message_stop":
		return &llm.StreamChunk{Done: true}, nil

	case "ping", "content_block_start", "content_block_stop":
		return nil, nil

	case "error":
		return nil, &StreamError{Message: ev.Error.Message}

	default:
		// Unknown event types are skipped so new upstream events don't break
		// the engine.
		return nil, nil
	}
}

// StreamError is a server-reported error event in an Anthropic stream.
type StreamError struct {
	Message string
}

func (e *StreamError) Error() string {
	return "anthropic stream error: " + e.Message
}
