package inmemory_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage"
	"github.com/studyforgeco/studyforge/pkg/storage/inmemory"
)

var _ = Describe("Driver", func() {
	var (
		driver *inmemory.Driver
		ctx    context.Context
	)

	BeforeEach(func() {
		driver = inmemory.NewDriver()
		ctx = context.Background()
	})

	newGuide := func(id, subject, level string, createdAt time.Time) *guide.StudyGuide {
		return &guide.StudyGuide{
			ID:        id,
			Subject:   subject,
			Topic:     "test topic",
			Level:     level,
			Model:     "test-model",
			Content:   "content",
			CreatedAt: createdAt,
		}
	}

	newGrade := func(id, subject, examName string, createdAt time.Time) *guide.GradeResult {
		return &guide.GradeResult{
			ID:                 id,
			ExamName:           examName,
			Subject:            subject,
			Model:              "test-model",
			TotalMarks:         42,
			TotalPossibleMarks: 50,
			CreatedAt:          createdAt,
		}
	}

	Describe("guides", func() {
		It("stores and retrieves a guide", func() {
			g := newGuide("g-1", "physics", "gcse", time.Now())

			created, err := driver.CreateGuide(ctx, g)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(Equal("g-1"))

			got, err := driver.GetGuide(ctx, "g-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Subject).To(Equal("physics"))
		})

		It("rejects a nil guide", func() {
			_, err := driver.CreateGuide(ctx, nil)
			Expect(err).To(HaveOccurred())
		})

		It("returns a not-found error for a missing id", func() {
			_, err := driver.GetGuide(ctx, "missing")
			Expect(err).To(HaveOccurred())
			Expect(storage.IsNotFound(err)).To(BeTrue())
		})

		It("deletes a guide", func() {
			_, err := driver.CreateGuide(ctx, newGuide("g-1", "physics", "gcse", time.Now()))
			Expect(err).NotTo(HaveOccurred())

			Expect(driver.DeleteGuide(ctx, "g-1")).To(Succeed())

			_, err = driver.GetGuide(ctx, "g-1")
			Expect(storage.IsNotFound(err)).To(BeTrue())
		})

		It("returns not-found when deleting a missing guide", func() {
			err := driver.DeleteGuide(ctx, "missing")
			Expect(storage.IsNotFound(err)).To(BeTrue())
		})

		Describe("queries", func() {
			base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

			BeforeEach(func() {
				guides := []*guide.StudyGuide{
					newGuide("g-1", "physics", "gcse", base),
					newGuide("g-2", "physics", "a-level", base.Add(time.Minute)),
					newGuide("g-3", "history", "gcse", base.Add(2*time.Minute)),
					newGuide("g-4", "physics", "gcse", base.Add(3*time.Minute)),
				}
				for _, g := range guides {
					_, err := driver.CreateGuide(ctx, g)
					Expect(err).NotTo(HaveOccurred())
				}
			})

			It("lists newest first", func() {
				results, err := driver.QueryGuides(ctx, storage.GuideQuery{})
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(4))
				Expect(results[0].ID).To(Equal("g-4"))
				Expect(results[3].ID).To(Equal("g-1"))
			})

			It("filters by subject", func() {
				results, err := driver.QueryGuides(ctx, storage.GuideQuery{Subject: "history"})
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(1))
				Expect(results[0].ID).To(Equal("g-3"))
			})

			It("filters by subject and level", func() {
				results, err := driver.QueryGuides(ctx, storage.GuideQuery{Subject: "physics", Level: "gcse"})
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].ID).To(Equal("g-4"))
				Expect(results[1].ID).To(Equal("g-1"))
			})

			It("applies limit and offset", func() {
				results, err := driver.QueryGuides(ctx, storage.GuideQuery{Limit: 2, Offset: 1})
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].ID).To(Equal("g-3"))
				Expect(results[1].ID).To(Equal("g-2"))
			})

			It("returns empty when offset exceeds results", func() {
				results, err := driver.QueryGuides(ctx, storage.GuideQuery{Offset: 10})
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(BeEmpty())
			})
		})
	})

	Describe("grades", func() {
		It("stores and retrieves a grade result", func() {
			g := newGrade("r-1", "chemistry", "mock-paper-1", time.Now())

			created, err := driver.CreateGrade(ctx, g)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(Equal("r-1"))

			got, err := driver.GetGrade(ctx, "r-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.TotalMarks).To(Equal(float64(42)))
		})

		It("returns a not-found error for a missing id", func() {
			_, err := driver.GetGrade(ctx, "missing")
			Expect(storage.IsNotFound(err)).To(BeTrue())
		})

		It("deletes a grade result", func() {
			_, err := driver.CreateGrade(ctx, newGrade("r-1", "chemistry", "mock-paper-1", time.Now()))
			Expect(err).NotTo(HaveOccurred())

			Expect(driver.DeleteGrade(ctx, "r-1")).To(Succeed())
			Expect(storage.IsNotFound(driver.DeleteGrade(ctx, "r-1"))).To(BeTrue())
		})

		It("filters by exam name", func() {
			base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			_, err := driver.CreateGrade(ctx, newGrade("r-1", "chemistry", "mock-paper-1", base))
			Expect(err).NotTo(HaveOccurred())
			_, err = driver.CreateGrade(ctx, newGrade("r-2", "chemistry", "mock-paper-2", base.Add(time.Minute)))
			Expect(err).NotTo(HaveOccurred())

			results, err := driver.QueryGrades(ctx, storage.GradeQuery{ExamName: "mock-paper-2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
			Expect(results[0].ID).To(Equal("r-2"))
		})
	})
})
