// Package ollama implements the provider interface for Ollama's native chat
// API, which streams newline-delimited JSON.
package ollama

import (
	"encoding/json"

	"github.com/studyforgeco/studyforge/pkg/llm"
)

type provider struct{}

func New() *provider { return &provider{} }

func (p *provider) Name() string {
	return "ollama"
}

func (p *provider) ChatPath() string {
	return "/api/chat"
}

func (p *provider) StreamFormat() llm.StreamFormat {
	return llm.FormatNDJSON
}

func (p *provider) Headers(string) map[string]string {
	// Ollama is unauthenticated; only the content type matters.
	return map[string]string{"Content-Type": "application/json"}
}

func (p *provider) BuildChatRequest(req *llm.ChatRequest) ([]byte, error) {
	messages := make([]ollamaMessage, 0, len(req.Messages)+1)

	// Ollama has no separate system field; the system prompt rides as the
	// first message.
	if req.System != "" {
		messages = append(messages, ollamaMessage{Role: "system", Content: req.System})
	}
	for _, msg := range req.Messages {
		messages = append(messages, ollamaMessage{Role: msg.Role, Content: msg.Content})
	}

	out := ollamaRequest{
		Model:    req.Model,
		Messages: messages,
		Stream:   true,
	}
	if req.Temperature != nil {
		out.Options = &ollamaOptions{Temperature: req.Temperature}
	}

	return json.Marshal(out)
}

func (p *provider) ParseStreamChunk(payload []byte) (*llm.StreamChunk, error) {
	var chunk ollamaStreamChunk
	if err := json.Unmarshal(payload, &chunk); err != nil {
		return nil, err
	}

	out := &llm.StreamChunk{
		Content: chunk.Message.Content,
		Done:    chunk.Done,
	}

	// Ollama reports usage only on the final line (done=true).
	if chunk.Done {
		out.StopReason = chunk.DoneReason
		if chunk.PromptEvalCount > 0 || chunk.EvalCount > 0 {
			out.Usage = &llm.Usage{
				PromptTokens:     chunk.PromptEvalCount,
				CompletionTokens: chunk.EvalCount,
			}
		}
	}

	return out, nil
}
