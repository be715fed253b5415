package server

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/studyforgeco/studyforge/pkg/llm"
	"github.com/studyforgeco/studyforge/pkg/sse"
)

// startUpstream serializes the chat request in the provider's wire format and
// issues it against the configured upstream. The caller owns the response body.
//
// Uses context.Background() instead of the fiber request context because
// fasthttp recycles its RequestCtx after the handler returns, while the
// streaming goroutine needs the upstream connection to remain open.
func (s *Server) startUpstream(chatReq *llm.ChatRequest) (*http.Response, error) {
	body, err := s.provider.BuildChatRequest(chatReq)
	if err != nil {
		return nil, fmt.Errorf("building upstream request body: %w", err)
	}

	url := s.config.UpstreamURL + s.provider.ChatPath()
	httpReq, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating upstream request: %w", err)
	}

	for k, v := range s.provider.Headers(s.config.APIKey) {
		httpReq.Header.Set(k, v)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}

	return resp, nil
}

// readStream reads the upstream streaming body and invokes onChunk for each
// parsed chunk, dispatching on the provider's stream format. Reading stops at
// end of stream, on a read error, or when onChunk returns an error.
func (s *Server) readStream(body io.Reader, onChunk func(*llm.StreamChunk) error) error {
	switch s.provider.StreamFormat() {
	case llm.FormatNDJSON:
		return s.readNDJSONStream(body, onChunk)
	default:
		return s.readSSEStream(body, onChunk)
	}
}

// readSSEStream consumes an SSE-formatted upstream body (OpenAI, Anthropic).
func (s *Server) readSSEStream(body io.Reader, onChunk func(*llm.StreamChunk) error) error {
	reader := sse.NewReader(body)

	for {
		ev, err := reader.Next()
		if err != nil {
			return fmt.Errorf("reading SSE stream: %w", err)
		}
		if ev == nil {
			return nil
		}

		// Skip non-data sentinels like OpenAI's "[DONE]"
		if ev.Data == "[DONE]" {
			continue
		}

		chunk, err := s.provider.ParseStreamChunk([]byte(ev.Data))
		if err != nil {
			return fmt.Errorf("parsing stream chunk: %w", err)
		}
		if chunk == nil {
			continue
		}

		if err := onChunk(chunk); err != nil {
			return err
		}
	}
}

// readNDJSONStream consumes a newline-delimited JSON upstream body (Ollama).
func (s *Server) readNDJSONStream(body io.Reader, onChunk func(*llm.StreamChunk) error) error {
	scanner := bufio.NewScanner(body)
	// Increase buffer size for large chunks
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		chunk, err := s.provider.ParseStreamChunk(line)
		if err != nil {
			return fmt.Errorf("parsing stream chunk: %w", err)
		}
		if chunk == nil {
			continue
		}

		if err := onChunk(chunk); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading NDJSON stream: %w", err)
	}

	return nil
}
