package ollama

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/studyforgeco/studyforge/pkg/llm"
)

var _ = Describe("Ollama Provider", func() {
	p := New()

	Describe("BuildChatRequest", func() {
		It("folds the system prompt into the message list", func() {
			payload, err := p.BuildChatRequest(&llm.ChatRequest{
				Model:  "llama3.2",
				System: "You write study guides.",
				Messages: []llm.Message{
					{Role: "user", Content: "Photosynthesis, high school level."},
				},
			})
			Expect(err).NotTo(HaveOccurred())

			var req ollamaRequest
			Expect(json.Unmarshal(payload, &req)).To(Succeed())
			Expect(req.Stream).To(BeTrue())
			Expect(req.Messages).To(HaveLen(2))
			Expect(req.Messages[0].Role).To(Equal("system"))
		})
	})

	Describe("ParseStreamChunk", func() {
		It("extracts incremental message content", func() {
			chunk, err := p.ParseStreamChunk([]byte(
				`{"model":"llama3.2","message":{"role":"assistant","content":"Chlorophyll"},"done":false}`,
			))
			Expect(err).NotTo(HaveOccurred())
			Expect(chunk.Content).To(Equal("Chlorophyll"))
			Expect(chunk.Done).To(BeFalse())
		})

		It("extracts usage from the final line", func() {
			chunk, err := p.ParseStreamChunk([]byte(
				`{"model":"llama3.2","message":{"role":"assistant","content":""},"done":true,` +
					`"done_reason":"stop","prompt_eval_count":26,"eval_count":298}`,
			))
			Expect(err).NotTo(HaveOccurred())
			Expect(chunk.Done).To(BeTrue())
			Expect(chunk.StopReason).To(Equal("stop"))
			Expect(chunk.Usage.PromptTokens).To(Equal(26))
			Expect(chunk.Usage.CompletionTokens).To(Equal(298))
		})

		It("errors on malformed JSON", func() {
			_, err := p.ParseStreamChunk([]byte("not json"))
			Expect(err).To(HaveOccurred())
		})
	})
})
