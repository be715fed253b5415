package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/studyforgeco/studyforge/pkg/eventstream"
	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage"
	"github.com/studyforgeco/studyforge/pkg/storage/inmemory"
	"github.com/studyforgeco/studyforge/pkg/stream"
	testutils "github.com/studyforgeco/studyforge/pkg/utils/test"
)

const gradeJSON = `{
  "totalMarks": 17,
  "totalPossibleMarks": 20,
  "gradeBreakdown": [
    {"question": "Q1", "marksAwarded": 8, "marksPossible": 10, "comment": "solid"},
    {"question": "Q2", "marksAwarded": 9, "marksPossible": 10, "comment": "minor slip"}
  ],
  "feedback": "Strong overall."
}`

// makeGradeForm builds a multipart grading request with an exam file upload.
func makeGradeForm(examName, subject, examText string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("exam", "exam.txt")
	Expect(err).NotTo(HaveOccurred())
	_, err = part.Write([]byte(examText))
	Expect(err).NotTo(HaveOccurred())

	Expect(writer.WriteField("exam_name", examName)).To(Succeed())
	if subject != "" {
		Expect(writer.WriteField("subject", subject)).To(Succeed())
	}
	Expect(writer.Close()).To(Succeed())

	return &buf, writer.FormDataContentType()
}

// sseUpstream returns an httptest server that streams the given content
// strings as OpenAI SSE frames.
func sseUpstream(pieces ...string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher, ok := w.(http.Flusher)
		Expect(ok).To(BeTrue())

		for _, piece := range pieces {
			fmt.Fprint(w, openaiContentChunk(piece))
			flusher.Flush()
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
	}))
}

var _ = Describe("Exam Grading Streaming", func() {
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

	gradeRequest := func() *http.Request {
		body, contentType := makeGradeForm("midterm", "physics", "Q1: define velocity.\nQ2: state Newton's second law.")
		req := httptest.NewRequest(http.MethodPost, "/v1/exams/grade", body)
		req.Header.Set("Content-Type", contentType)
		return req
	}

	Context("when the grader returns well-formed grade JSON", func() {
		BeforeEach(func() {
			// Grade JSON split across chunks like a real completion stream.
			upstream = sseUpstream(gradeJSON[:40], gradeJSON[40:150], gradeJSON[150:])
			s, driver, _ = newTestServer(upstream.URL, "openai")
		})

		It("finishes with a complete frame carrying the marks", func() {
			resp, err := s.server.Test(gradeRequest(), -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var progress []string
			consumer := stream.NewConsumer(stream.Handlers{
				OnProgress: func(message string) { progress = append(progress, message) },
			})

			complete, err := consumer.Consume(GinkgoT().Context(), resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(complete.ID).NotTo(BeEmpty())
			Expect(progress).To(ContainElement("grading exam midterm"))

			Expect(complete.TotalMarks).NotTo(BeNil())
			Expect(*complete.TotalMarks).To(Equal(17.0))
			Expect(complete.TotalPossibleMarks).NotTo(BeNil())
			Expect(*complete.TotalPossibleMarks).To(Equal(20.0))

			var breakdown []guide.GradeLine
			Expect(json.Unmarshal(complete.GradeBreakdown, &breakdown)).To(Succeed())
			Expect(breakdown).To(HaveLen(2))
			Expect(breakdown[0].Question).To(Equal("Q1"))
			Expect(breakdown[0].MarksAwarded).To(Equal(8.0))
		})

		It("persists the grade result under the streamed id", func() {
			resp, err := s.server.Test(gradeRequest(), -1)
			Expect(err).NotTo(HaveOccurred())

			consumer := stream.NewConsumer(stream.Handlers{})
			complete, err := consumer.Consume(GinkgoT().Context(), resp.Body)
			resp.Body.Close()
			Expect(err).NotTo(HaveOccurred())

			s.Close()
			s = nil

			stored, err := driver.GetGrade(GinkgoT().Context(), complete.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.ExamName).To(Equal("midterm"))
			Expect(stored.Subject).To(Equal("physics"))
			Expect(stored.TotalMarks).To(Equal(17.0))
			Expect(stored.TotalPossibleMarks).To(Equal(20.0))
			Expect(stored.Breakdown).To(HaveLen(2))
			Expect(stored.Feedback).To(Equal("Strong overall."))
		})

		It("publishes a grade persisted event after storage", func() {
			var publisher *testutils.MockPublisher
			s.Close()
			s, driver, publisher = newTestServer(upstream.URL, "openai")

			resp, err := s.server.Test(gradeRequest(), -1)
			Expect(err).NotTo(HaveOccurred())
			_, _ = io.ReadAll(resp.Body)
			resp.Body.Close()

			s.Close()
			s = nil

			events := publisher.Events()
			Expect(events).To(HaveLen(1))
			Expect(events[0].EventType).To(Equal(eventstream.EventTypeGradePersisted))
			Expect(events[0].RequestMeta.Path).To(Equal("/v1/exams/grade"))
		})
	})

	Context("when the grader wraps its JSON in markdown fences", func() {
		BeforeEach(func() {
			upstream = sseUpstream("```json\n" + gradeJSON + "\n```")
			s, driver, _ = newTestServer(upstream.URL, "openai")
		})

		It("still extracts the grade payload", func() {
			resp, err := s.server.Test(gradeRequest(), -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			consumer := stream.NewConsumer(stream.Handlers{})
			complete, err := consumer.Consume(GinkgoT().Context(), resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(*complete.TotalMarks).To(Equal(17.0))
		})
	})

	Context("when the grader returns unparseable output", func() {
		BeforeEach(func() {
			upstream = sseUpstream("I graded the exam and it went well overall.")
			s, driver, _ = newTestServer(upstream.URL, "openai")
		})

		It("ends the stream with an error frame and stores nothing", func() {
			resp, err := s.server.Test(gradeRequest(), -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			var errMessage string
			consumer := stream.NewConsumer(stream.Handlers{
				OnError: func(message string) { errMessage = message },
			})

			_, err = consumer.Consume(GinkgoT().Context(), resp.Body)
			Expect(err).To(HaveOccurred())
			Expect(errMessage).To(Equal("grader returned unparseable output"))

			s.Close()
			s = nil

			grades, qerr := driver.QueryGrades(GinkgoT().Context(), storage.GradeQuery{})
			Expect(qerr).NotTo(HaveOccurred())
			Expect(grades).To(BeEmpty())
		})
	})

	Context("when the form carries an answer key", func() {
		var upstreamBody []byte

		BeforeEach(func() {
			upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var err error
				upstreamBody, err = io.ReadAll(r.Body)
				Expect(err).NotTo(HaveOccurred())

				w.Header().Set("Content-Type", "text/event-stream")
				fmt.Fprint(w, openaiContentChunk(gradeJSON))
				fmt.Fprint(w, "data: [DONE]\n\n")
			}))
			s, driver, _ = newTestServer(upstream.URL, "openai")
		})

		It("folds the key into the grading prompt", func() {
			var buf bytes.Buffer
			writer := multipart.NewWriter(&buf)
			part, err := writer.CreateFormFile("exam", "exam.txt")
			Expect(err).NotTo(HaveOccurred())
			_, err = part.Write([]byte("Q1: define velocity."))
			Expect(err).NotTo(HaveOccurred())
			Expect(writer.WriteField("exam_name", "midterm")).To(Succeed())
			Expect(writer.WriteField("answer_key", "Q1: rate of change of displacement")).To(Succeed())
			Expect(writer.Close()).To(Succeed())

			req := httptest.NewRequest(http.MethodPost, "/v1/exams/grade", &buf)
			req.Header.Set("Content-Type", writer.FormDataContentType())

			resp, err := s.server.Test(req, -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			_, err = io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())

			Expect(string(upstreamBody)).To(ContainSubstring("answer key"))
			Expect(string(upstreamBody)).To(ContainSubstring("rate of change of displacement"))
		})
	})

	Context("multipart validation", func() {
		BeforeEach(func() {
			upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Fail("upstream must not be called for invalid requests")
			}))
			s, driver, _ = newTestServer(upstream.URL, "openai")
		})

		It("rejects a form without an exam file", func() {
			var buf bytes.Buffer
			writer := multipart.NewWriter(&buf)
			Expect(writer.WriteField("exam_name", "midterm")).To(Succeed())
			Expect(writer.Close()).To(Succeed())

			req := httptest.NewRequest(http.MethodPost, "/v1/exams/grade", &buf)
			req.Header.Set("Content-Type", writer.FormDataContentType())

			resp, err := s.server.Test(req, -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			body, _ := io.ReadAll(resp.Body)
			Expect(string(body)).To(ContainSubstring("exam file is required"))
		})

		It("rejects a form without an exam name", func() {
			body, contentType := makeGradeForm("", "", "Q1: something")
			req := httptest.NewRequest(http.MethodPost, "/v1/exams/grade", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := s.server.Test(req, -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			respBody, _ := io.ReadAll(resp.Body)
			Expect(string(respBody)).To(ContainSubstring("exam_name is required"))
		})
	})
})
