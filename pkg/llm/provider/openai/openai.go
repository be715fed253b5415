// Package openai implements the provider interface for OpenAI's chat
// completions API, which streams SSE frames with a "[DONE]" sentinel.
package openai

import (
	"bytes"
	"encoding/json"

	"github.com/studyforgeco/studyforge/pkg/llm"
)

// doneSentinel is the literal data payload OpenAI sends after the last chunk.
var doneSentinel = []byte("[DONE]")

type provider struct{}

func New() *provider { return &provider{} }

func (p *provider) Name() string {
	return "openai"
}

func (p *provider) ChatPath() string {
	return "/v1/chat/completions"
}

func (p *provider) StreamFormat() llm.StreamFormat {
	return llm.FormatSSE
}

func (p *provider) Headers(apiKey string) map[string]string {
	headers := map[string]string{"Content-Type": "application/json"}
	if apiKey != "" {
		headers["Authorization"] = "Bearer " + apiKey
	}
	return headers
}

func (p *provider) BuildChatRequest(req *llm.ChatRequest) ([]byte, error) {
	messages := make([]openaiMessage, 0, len(req.Messages)+1)

	if req.System != "" {
		messages = append(messages, openaiMessage{Role: "system", Content: req.System})
	}
	for _, msg := range req.Messages {
		messages = append(messages, openaiMessage{Role: msg.Role, Content: msg.Content})
	}

	out := openaiRequest{
		Model:       req.Model,
		Messages:    messages,
		Stream:      true,
		Temperature: req.Temperature,
		// Ask for usage on the final chunk; older deployments ignore this.
		StreamOptions: &openaiStreamOptions{IncludeUsage: true},
	}
	if req.MaxTokens > 0 {
		out.MaxTokens = &req.MaxTokens
	}

	return json.Marshal(out)
}

func (p *provider) ParseStreamChunk(payload []byte) (*llm.StreamChunk, error) {
	if bytes.Equal(bytes.TrimSpace(payload), doneSentinel) {
		// Sentinel, not JSON. The actual final chunk arrived before it.
		return nil, nil
	}

	var chunk openaiStreamChunk
	if err := json.Unmarshal(payload, &chunk); err != nil {
		return nil, err
	}

	out := &llm.StreamChunk{}
	if len(chunk.Choices) > 0 {
		choice := chunk.Choices[0]
		out.Content = choice.Delta.Content
		if choice.FinishReason != "" {
			out.Done = true
			out.StopReason = choice.FinishReason
		}
	}
	if chunk.Usage != nil {
		out.Usage = &llm.Usage{
			PromptTokens:     chunk.Usage.PromptTokens,
			CompletionTokens: chunk.Usage.CompletionTokens,
			TotalTokens:      chunk.Usage.TotalTokens,
		}
	}

	return out, nil
}
