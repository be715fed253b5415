package anthropic

import (
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/studyforgeco/studyforge/pkg/llm"
)

var _ = Describe("Anthropic Provider", func() {
	p := New()

	Describe("BuildChatRequest", func() {
		It("keeps the system prompt out of the messages array", func() {
			payload, err := p.BuildChatRequest(&llm.ChatRequest{
				Model:  "claude-sonnet-4-5",
				System: "You write study guides.",
				Messages: []llm.Message{
					{Role: "user", Content: "Cell biology, college level."},
				},
			})
			Expect(err).NotTo(HaveOccurred())

			var req map[string]any
			Expect(json.Unmarshal(payload, &req)).To(Succeed())
			Expect(req["system"]).To(Equal("You write study guides."))
			Expect(req["messages"].([]any)).To(HaveLen(1))
			Expect(req["stream"]).To(BeTrue())
		})

		It("always sets max_tokens", func() {
			payload, err := p.BuildChatRequest(&llm.ChatRequest{Model: "claude-sonnet-4-5"})
			Expect(err).NotTo(HaveOccurred())

			var req map[string]any
			Expect(json.Unmarshal(payload, &req)).To(Succeed())
			Expect(req["max_tokens"]).To(BeNumerically(">", 0))
		})
	})

	Describe("ParseStreamChunk", func() {
		It("extracts text from content_block_delta events", func() {
			chunk, err := p.ParseStreamChunk([]byte(
				`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"The Krebs cycle"}}`,
			))
			Expect(err).NotTo(HaveOccurred())
			Expect(chunk.Content).To(Equal("The Krebs cycle"))
		})

		It("extracts input token usage from message_start", func() {
			chunk, err := p.ParseStreamChunk([]byte(
				`{"type":"message_start","message":{"model":"claude-sonnet-4-5","usage":{"input_tokens":100,"cache_read_input_tokens":20}}}`,
			))
			Expect(err).NotTo(HaveOccurred())
			Expect(chunk.Usage.PromptTokens).To(Equal(120))
		})

		It("extracts output token usage and stop reason from message_delta", func() {
			chunk, err := p.ParseStreamChunk([]byte(
				`{"type":"message_delta","delta":{"stop_reason":"end_turn"},"usage":{"output_tokens":256}}`,
			))
			Expect(err).NotTo(HaveOccurred())
			Expect(chunk.StopReason).To(Equal("end_turn"))
			Expect(chunk.Usage.CompletionTokens).To(Equal(256))
		})

		It("finishes on message_stop", func() {
			chunk, err := p.ParseStreamChunk([]byte(`{"type":"message_stop"}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(chunk.Done).To(BeTrue())
		})

		It("skips ping and content_block framing events", func() {
			for _, payload := range []string{
				`{"type":"ping"}`,
				`{"type":"content_block_start","index":0}`,
				`{"type":"content_block_stop","index":0}`,
			} {
				chunk, err := p.ParseStreamChunk([]byte(payload))
				Expect(err).NotTo(HaveOccurred())
				Expect(chunk).To(BeNil())
			}
		})

		It("surfaces error events as StreamError", func() {
			_, err := p.ParseStreamChunk([]byte(
				`{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`,
			))

			var streamErr *StreamError
			Expect(errors.As(err, &streamErr)).To(BeTrue())
			Expect(streamErr.Message).To(Equal("Overloaded"))
		})
	})

	Describe("Headers", func() {
		It("sets the api key and version headers", func() {
			headers := p.Headers("sk-ant-123")
			Expect(headers).To(HaveKeyWithValue("x-api-key", "sk-ant-123"))
			Expect(headers).To(HaveKeyWithValue("anthropic-version", apiVersion))
		})
	})
})
