package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage"
	"github.com/studyforgeco/studyforge/pkg/storage/inmemory"
)

// apiTestGuide creates a stored study guide for testing.
func apiTestGuide(ctx context.Context, driver storage.Driver, id, subject, level string, age time.Duration) *guide.StudyGuide {
	stored, err := driver.CreateGuide(ctx, &guide.StudyGuide{
		ID:        id,
		Subject:   subject,
		Topic:     "topic-" + id,
		Level:     level,
		Content:   "## Section\nBody.",
		CreatedAt: time.Now().Add(-age),
	})
	Expect(err).NotTo(HaveOccurred())
	return stored
}

// apiTestGrade creates a stored grade result for testing.
func apiTestGrade(ctx context.Context, driver storage.Driver, id, subject, examName string) *guide.GradeResult {
	stored, err := driver.CreateGrade(ctx, &guide.GradeResult{
		ID:                 id,
		ExamName:           examName,
		Subject:            subject,
		TotalMarks:         15,
		TotalPossibleMarks: 20,
		CreatedAt:          time.Now(),
	})
	Expect(err).NotTo(HaveOccurred())
	return stored
}

var _ = Describe("API Server", func() {
	var (
		server *Server
		driver storage.Driver
		ctx    context.Context
	)

	BeforeEach(func() {
		logger, _ := zap.NewDevelopment()
		driver = inmemory.NewDriver()
		server = NewServer(Config{ListenAddr: ":0"}, driver, logger)
		ctx = context.Background()
	})

	get := func(path string) (*http.Response, []byte) {
		resp, err := server.app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		Expect(err).NotTo(HaveOccurred())
		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()
		return resp, body
	}

	Describe("ping", func() {
		It("responds with pong", func() {
			resp, body := get("/ping")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(string(body)).To(ContainSubstring("pong"))
		})
	})

	Describe("stats", func() {
		It("counts stored records", func() {
			apiTestGuide(ctx, driver, "g1", "physics", "undergraduate", 0)
			apiTestGrade(ctx, driver, "r1", "physics", "midterm")
			apiTestGrade(ctx, driver, "r2", "physics", "final")

			resp, body := get("/v1/stats")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var stats map[string]int
			Expect(json.Unmarshal(body, &stats)).To(Succeed())
			Expect(stats["guide_count"]).To(Equal(1))
			Expect(stats["grade_count"]).To(Equal(2))
		})
	})

	Describe("listing study guides", func() {
		BeforeEach(func() {
			apiTestGuide(ctx, driver, "g-old", "physics", "undergraduate", time.Hour)
			apiTestGuide(ctx, driver, "g-new", "physics", "high-school", time.Minute)
			apiTestGuide(ctx, driver, "g-chem", "chemistry", "undergraduate", time.Second)
		})

		It("returns all guides newest first", func() {
			resp, body := get("/v1/guides")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var out struct {
				Count  int                 `json:"count"`
				Guides []*guide.StudyGuide `json:"guides"`
			}
			Expect(json.Unmarshal(body, &out)).To(Succeed())
			Expect(out.Count).To(Equal(3))
			Expect(out.Guides[0].ID).To(Equal("g-chem"))
			Expect(out.Guides[2].ID).To(Equal("g-old"))
		})

		It("filters by subject", func() {
			_, body := get("/v1/guides?subject=chemistry")

			var out struct {
				Guides []*guide.StudyGuide `json:"guides"`
			}
			Expect(json.Unmarshal(body, &out)).To(Succeed())
			Expect(out.Guides).To(HaveLen(1))
			Expect(out.Guides[0].ID).To(Equal("g-chem"))
		})

		It("filters by level", func() {
			_, body := get("/v1/guides?level=high-school")

			var out struct {
				Guides []*guide.StudyGuide `json:"guides"`
			}
			Expect(json.Unmarshal(body, &out)).To(Succeed())
			Expect(out.Guides).To(HaveLen(1))
			Expect(out.Guides[0].ID).To(Equal("g-new"))
		})

		It("applies limit and offset", func() {
			_, body := get("/v1/guides?limit=1&offset=1")

			var out struct {
				Guides []*guide.StudyGuide `json:"guides"`
			}
			Expect(json.Unmarshal(body, &out)).To(Succeed())
			Expect(out.Guides).To(HaveLen(1))
			Expect(out.Guides[0].ID).To(Equal("g-new"))
		})

		It("rejects a negative limit", func() {
			resp, _ := get("/v1/guides?limit=-1")
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("getting a study guide", func() {
		It("returns the guide by id", func() {
			apiTestGuide(ctx, driver, "g1", "physics", "", 0)

			resp, body := get("/v1/guides/g1")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var out guide.StudyGuide
			Expect(json.Unmarshal(body, &out)).To(Succeed())
			Expect(out.Subject).To(Equal("physics"))
		})

		It("returns 404 for an unknown id", func() {
			resp, _ := get("/v1/guides/nope")
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("deleting a study guide", func() {
		It("removes the guide", func() {
			apiTestGuide(ctx, driver, "g1", "physics", "", 0)

			resp, err := server.app.Test(httptest.NewRequest(http.MethodDelete, "/v1/guides/g1", nil), -1)
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNoContent))

			_, gerr := driver.GetGuide(ctx, "g1")
			Expect(storage.IsNotFound(gerr)).To(BeTrue())
		})

		It("returns 404 for an unknown id", func() {
			resp, err := server.app.Test(httptest.NewRequest(http.MethodDelete, "/v1/guides/nope", nil), -1)
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("grade results", func() {
		BeforeEach(func() {
			apiTestGrade(ctx, driver, "r1", "physics", "midterm")
			apiTestGrade(ctx, driver, "r2", "chemistry", "final")
		})

		It("lists grades filtered by exam name", func() {
			_, body := get("/v1/grades?exam_name=final")

			var out struct {
				Grades []*guide.GradeResult `json:"grades"`
			}
			Expect(json.Unmarshal(body, &out)).To(Succeed())
			Expect(out.Grades).To(HaveLen(1))
			Expect(out.Grades[0].ID).To(Equal("r2"))
		})

		It("gets a grade by id", func() {
			resp, body := get("/v1/grades/r1")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var out guide.GradeResult
			Expect(json.Unmarshal(body, &out)).To(Succeed())
			Expect(out.ExamName).To(Equal("midterm"))
			Expect(out.TotalMarks).To(Equal(15.0))
		})

		It("deletes a grade by id", func() {
			resp, err := server.app.Test(httptest.NewRequest(http.MethodDelete, "/v1/grades/r1", nil), -1)
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNoContent))

			resp2, _ := get("/v1/grades/r1")
			Expect(resp2.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("returns 404 when deleting an unknown grade", func() {
			path := fmt.Sprintf("/v1/grades/%s", "missing")
			resp, err := server.app.Test(httptest.NewRequest(http.MethodDelete, path, nil), -1)
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})
})
