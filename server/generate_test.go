package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/studyforgeco/studyforge/pkg/eventstream"
	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage/inmemory"
	"github.com/studyforgeco/studyforge/pkg/stream"
	testutils "github.com/studyforgeco/studyforge/pkg/utils/test"
)

// newTestServer creates a Server pointed at the given upstream URL, using an
// in-memory storage driver and a mock publisher.
func newTestServer(upstreamURL, providerType string) (*Server, *inmemory.Driver, *testutils.MockPublisher) {
	driver := inmemory.NewDriver()
	publisher := testutils.NewMockPublisher()

	s, err := New(
		Config{
			ListenAddr:   ":0",
			UpstreamURL:  upstreamURL,
			ProviderType: providerType,
			Model:        "test-model",
		},
		driver,
		publisher,
		zap.NewNop(),
	)
	Expect(err).NotTo(HaveOccurred())
	return s, driver, publisher
}

// makeGenerateBody builds a JSON-encoded generation request.
func makeGenerateBody(subject, topic, level string) *strings.Reader {
	body, err := json.Marshal(GenerateRequest{Subject: subject, Topic: topic, Level: level})
	Expect(err).NotTo(HaveOccurred())
	return strings.NewReader(string(body))
}

// openaiContentChunk formats one OpenAI SSE frame carrying a content delta.
func openaiContentChunk(content string) string {
	escaped, err := json.Marshal(content)
	Expect(err).NotTo(HaveOccurred())
	return fmt.Sprintf("data: {\"choices\":[{\"index\":0,\"delta\":{\"content\":%s}}]}\n\n", escaped)
}

var _ = Describe("Guide Generation Streaming", func() {
	var (
		s        *Server
		driver   *inmemory.Driver
		upstream *httptest.Server
	)

	AfterEach(func() {
		if s != nil {
			s.Close()
		}
		if upstream != nil {
			upstream.Close()
		}
	})

	generateRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/v1/guides/generate",
			makeGenerateBody("physics", "kinematics", "undergraduate"))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	Context("when upstream returns an OpenAI SSE streaming response", func() {
		guideText := "## Motion\nVelocity and acceleration.\n## Forces\nNewton's laws.\n"

		BeforeEach(func() {
			upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/event-stream")
				flusher, ok := w.(http.Flusher)
				Expect(ok).To(BeTrue())

				// Split across frames mid-heading to exercise chunk reassembly.
				for _, piece := range []string{"## Motion\nVelocity and ", "acceleration.\n## For", "ces\nNewton's laws.\n"} {
					fmt.Fprint(w, openaiContentChunk(piece))
					flusher.Flush()
				}
				fmt.Fprint(w, "data: {\"choices\":[{\"index\":0,\"delta\":{},\"finish_reason\":\"stop\"}],\"usage\":{\"prompt_tokens\":12,\"completion_tokens\":34,\"total_tokens\":46}}\n\n")
				fmt.Fprint(w, "data: [DONE]\n\n")
				flusher.Flush()
			}))
			s, driver, _ = newTestServer(upstream.URL, "openai")
		})

		It("writes frames delimited by blank lines", func() {
			resp, err := s.server.Test(generateRequest(), -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Header.Get("Content-Type")).To(HavePrefix("text/event-stream"))

			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			bodyStr := string(body)

			Expect(bodyStr).To(HavePrefix("data: "))
			Expect(bodyStr).To(HaveSuffix("\n\n"))
			Expect(bodyStr).To(ContainSubstring(`"type":"progress"`))
			Expect(bodyStr).To(ContainSubstring(`"type":"content"`))
			Expect(bodyStr).To(ContainSubstring(`"type":"section"`))
			Expect(bodyStr).To(ContainSubstring(`"type":"complete"`))
		})

		It("streams events a frame consumer can replay in order", func() {
			resp, err := s.server.Test(generateRequest(), -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			var content strings.Builder
			var sections []guide.Section
			var progress []string

			consumer := stream.NewConsumer(stream.Handlers{
				OnProgress: func(message string) { progress = append(progress, message) },
				OnContent:  func(chunk string) { content.WriteString(chunk) },
				OnSection: func(raw json.RawMessage) {
					var sec guide.Section
					Expect(json.Unmarshal(raw, &sec)).To(Succeed())
					sections = append(sections, sec)
				},
			})

			complete, err := consumer.Consume(GinkgoT().Context(), resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(complete).NotTo(BeNil())
			Expect(complete.ID).NotTo(BeEmpty())

			Expect(progress).To(ContainElement("generating study guide for kinematics"))
			Expect(content.String()).To(Equal(guideText))

			Expect(sections).To(HaveLen(2))
			Expect(sections[0].Title).To(Equal("Motion"))
			Expect(sections[0].Body).To(Equal("Velocity and acceleration."))
			Expect(sections[1].Title).To(Equal("Forces"))
			Expect(sections[1].Body).To(Equal("Newton's laws."))

			var payload guideCompletePayload
			Expect(json.Unmarshal(complete.CustomContent, &payload)).To(Succeed())
			Expect(payload.Sections).To(Equal(2))
			Expect(payload.Usage.TotalTokens).To(Equal(46))
		})

		It("persists the assembled guide under the streamed id", func() {
			resp, err := s.server.Test(generateRequest(), -1)
			Expect(err).NotTo(HaveOccurred())

			consumer := stream.NewConsumer(stream.Handlers{})
			complete, err := consumer.Consume(GinkgoT().Context(), resp.Body)
			resp.Body.Close()
			Expect(err).NotTo(HaveOccurred())

			// Drain the worker pool to ensure async storage completes
			s.Close()
			s = nil

			stored, err := driver.GetGuide(GinkgoT().Context(), complete.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Subject).To(Equal("physics"))
			Expect(stored.Topic).To(Equal("kinematics"))
			Expect(stored.Level).To(Equal("undergraduate"))
			Expect(stored.Model).To(Equal("test-model"))
			Expect(stored.Content).To(Equal(guideText))
			Expect(stored.Sections).To(HaveLen(2))
		})

		It("publishes a guide persisted event after storage", func() {
			var publisher *testutils.MockPublisher
			s.Close()
			s, driver, publisher = newTestServer(upstream.URL, "openai")

			resp, err := s.server.Test(generateRequest(), -1)
			Expect(err).NotTo(HaveOccurred())
			_, _ = io.ReadAll(resp.Body)
			resp.Body.Close()

			s.Close()
			s = nil

			events := publisher.Events()
			Expect(events).To(HaveLen(1))
			Expect(events[0].EventType).To(Equal(eventstream.EventTypeGuidePersisted))
			Expect(events[0].Source.Subject).To(Equal("physics"))
			Expect(events[0].RequestMeta.Path).To(Equal("/v1/guides/generate"))
		})
	})

	Context("when upstream returns an Ollama NDJSON streaming response", func() {
		BeforeEach(func() {
			upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/x-ndjson")
				flusher, ok := w.(http.Flusher)
				Expect(ok).To(BeTrue())

				lines := []string{
					`{"model":"llama3.2","message":{"role":"assistant","content":"## Heat\n"},"done":false}`,
					`{"model":"llama3.2","message":{"role":"assistant","content":"Entropy rises."},"done":false}`,
					`{"model":"llama3.2","message":{"role":"assistant","content":""},"done":true,"done_reason":"stop","prompt_eval_count":8,"eval_count":16}`,
				}
				for _, line := range lines {
					fmt.Fprintln(w, line)
					flusher.Flush()
				}
			}))
			s, driver, _ = newTestServer(upstream.URL, "ollama")
		})

		It("assembles content across NDJSON lines", func() {
			req := httptest.NewRequest(http.MethodPost, "/v1/guides/generate",
				makeGenerateBody("physics", "thermodynamics", ""))
			req.Header.Set("Content-Type", "application/json")

			resp, err := s.server.Test(req, -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			var content strings.Builder
			consumer := stream.NewConsumer(stream.Handlers{
				OnContent: func(chunk string) { content.WriteString(chunk) },
			})

			complete, err := consumer.Consume(GinkgoT().Context(), resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(complete.ID).NotTo(BeEmpty())
			Expect(content.String()).To(Equal("## Heat\nEntropy rises."))
		})
	})

	Context("request validation", func() {
		BeforeEach(func() {
			upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Fail("upstream must not be called for invalid requests")
			}))
			s, driver, _ = newTestServer(upstream.URL, "openai")
		})

		It("rejects a request without a topic", func() {
			req := httptest.NewRequest(http.MethodPost, "/v1/guides/generate",
				makeGenerateBody("physics", "", ""))
			req.Header.Set("Content-Type", "application/json")

			resp, err := s.server.Test(req, -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			body, _ := io.ReadAll(resp.Body)
			Expect(string(body)).To(ContainSubstring("topic is required"))
		})

		It("rejects a non-JSON body", func() {
			req := httptest.NewRequest(http.MethodPost, "/v1/guides/generate", strings.NewReader("not json"))
			req.Header.Set("Content-Type", "application/json")

			resp, err := s.server.Test(req, -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Context("when upstream returns an error status", func() {
		BeforeEach(func() {
			upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprint(w, `{"error":{"message":"rate limited"}}`)
			}))
			s, driver, _ = newTestServer(upstream.URL, "openai")
		})

		It("propagates the upstream status before streaming starts", func() {
			resp, err := s.server.Test(generateRequest(), -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusTooManyRequests))
			body, _ := io.ReadAll(resp.Body)
			Expect(string(body)).To(ContainSubstring("upstream returned an error"))
		})
	})
})
