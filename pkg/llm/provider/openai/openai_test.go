package openai

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/studyforgeco/studyforge/pkg/llm"
)

var _ = Describe("OpenAI Provider", func() {
	p := New()

	Describe("BuildChatRequest", func() {
		It("serializes the system prompt as the first message", func() {
			payload, err := p.BuildChatRequest(&llm.ChatRequest{
				Model:  "gpt-4o-mini",
				System: "You are a strict grader.",
				Messages: []llm.Message{
					{Role: "user", Content: "Grade this exam."},
				},
			})
			Expect(err).NotTo(HaveOccurred())

			var req map[string]any
			Expect(json.Unmarshal(payload, &req)).To(Succeed())
			Expect(req["model"]).To(Equal("gpt-4o-mini"))
			Expect(req["stream"]).To(BeTrue())

			messages := req["messages"].([]any)
			Expect(messages).To(HaveLen(2))
			first := messages[0].(map[string]any)
			Expect(first["role"]).To(Equal("system"))
			Expect(first["content"]).To(Equal("You are a strict grader."))
		})

		It("requests usage on the final chunk", func() {
			payload, err := p.BuildChatRequest(&llm.ChatRequest{Model: "gpt-4o-mini"})
			Expect(err).NotTo(HaveOccurred())
			Expect(string(payload)).To(ContainSubstring(`"include_usage":true`))
		})
	})

	Describe("ParseStreamChunk", func() {
		It("extracts delta content", func() {
			chunk, err := p.ParseStreamChunk([]byte(
				`{"choices":[{"index":0,"delta":{"content":"Photosynthesis"}}]}`,
			))
			Expect(err).NotTo(HaveOccurred())
			Expect(chunk.Content).To(Equal("Photosynthesis"))
			Expect(chunk.Done).To(BeFalse())
		})

		It("marks the chunk done on a finish reason", func() {
			chunk, err := p.ParseStreamChunk([]byte(
				`{"choices":[{"index":0,"delta":{},"finish_reason":"stop"}]}`,
			))
			Expect(err).NotTo(HaveOccurred())
			Expect(chunk.Done).To(BeTrue())
			Expect(chunk.StopReason).To(Equal("stop"))
		})

		It("extracts usage from the final chunk", func() {
			chunk, err := p.ParseStreamChunk([]byte(
				`{"choices":[],"usage":{"prompt_tokens":12,"completion_tokens":34,"total_tokens":46}}`,
			))
			Expect(err).NotTo(HaveOccurred())
			Expect(chunk.Usage.PromptTokens).To(Equal(12))
			Expect(chunk.Usage.CompletionTokens).To(Equal(34))
		})

		It("skips the [DONE] sentinel", func() {
			chunk, err := p.ParseStreamChunk([]byte("[DONE]"))
			Expect(err).NotTo(HaveOccurred())
			Expect(chunk).To(BeNil())
		})

		It("errors on malformed JSON", func() {
			_, err := p.ParseStreamChunk([]byte("{nope"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Headers", func() {
		It("sets a bearer token when a key is given", func() {
			Expect(p.Headers("sk-123")).To(HaveKeyWithValue("Authorization", "Bearer sk-123"))
		})

		It("omits authorization without a key", func() {
			Expect(p.Headers("")).NotTo(HaveKey("Authorization"))
		})
	})
})
