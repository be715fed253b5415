package backfill_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"

	"github.com/studyforgeco/studyforge/pkg/backfill"
	"github.com/studyforgeco/studyforge/pkg/eventstream"
	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage/inmemory"
	testutils "github.com/studyforgeco/studyforge/pkg/utils/test"
)

var _ = Describe("Backfiller", func() {
	var (
		ctx       context.Context
		driver    *inmemory.Driver
		publisher *testutils.MockPublisher
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
		publisher = testutils.NewMockPublisher()
	})

	storeGuide := func(subject, topic string) *guide.StudyGuide {
		g, err := driver.CreateGuide(ctx, &guide.StudyGuide{
			ID:        uuid.NewString(),
			Subject:   subject,
			Topic:     topic,
			Model:     "llama3.2",
			Content:   "## Intro\nbody",
			CreatedAt: time.Now().UTC().Add(-time.Hour),
		})
		Expect(err).NotTo(HaveOccurred())
		return g
	}

	storeGrade := func(examName string) *guide.GradeResult {
		g, err := driver.CreateGrade(ctx, &guide.GradeResult{
			ID:                 uuid.NewString(),
			ExamName:           examName,
			Subject:            "physics",
			TotalMarks:         17,
			TotalPossibleMarks: 20,
			CreatedAt:          time.Now().UTC().Add(-time.Hour),
		})
		Expect(err).NotTo(HaveOccurred())
		return g
	}

	It("publishes one event per stored record", func() {
		g := storeGuide("physics", "kinematics")
		r := storeGrade("midterm")

		b := backfill.NewBackfiller(driver, publisher, backfill.Options{})
		result, err := b.Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Guides).To(Equal(1))
		Expect(result.Grades).To(Equal(1))
		Expect(result.Published).To(Equal(2))
		Expect(result.Failed).To(BeZero())

		events := publisher.Events()
		Expect(events).To(HaveLen(2))

		recordIDs := []string{events[0].RecordID, events[1].RecordID}
		Expect(recordIDs).To(ConsistOf(g.ID, r.ID))
	})

	It("stamps backfilled events with the record's creation time", func() {
		g := storeGuide("chemistry", "stoichiometry")

		b := backfill.NewBackfiller(driver, publisher, backfill.Options{})
		_, err := b.Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		events := publisher.Events()
		Expect(events).To(HaveLen(1))
		Expect(events[0].EventType).To(Equal(eventstream.EventTypeGuidePersisted))
		Expect(events[0].RequestMeta.StartedAt).To(BeTemporally("~", g.CreatedAt, time.Second))
		Expect(events[0].RequestMeta.Streaming).To(BeFalse())
		Expect(events[0].Source.Provider).To(Equal("backfill"))
	})

	It("publishes nothing on a dry run but still counts records", func() {
		storeGuide("physics", "kinematics")
		storeGrade("midterm")

		b := backfill.NewBackfiller(driver, publisher, backfill.Options{DryRun: true})
		result, err := b.Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Guides).To(Equal(1))
		Expect(result.Grades).To(Equal(1))
		Expect(result.Published).To(BeZero())
		Expect(publisher.Events()).To(BeEmpty())
	})

	It("filters by subject", func() {
		storeGuide("physics", "kinematics")
		storeGuide("chemistry", "stoichiometry")

		b := backfill.NewBackfiller(driver, publisher, backfill.Options{Subject: "physics"})
		result, err := b.Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Guides).To(Equal(1))
	})

	It("counts publish failures without aborting the run", func() {
		storeGuide("physics", "kinematics")
		storeGrade("midterm")
		publisher.FailPublish = true

		b := backfill.NewBackfiller(driver, publisher, backfill.Options{})
		result, err := b.Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Failed).To(Equal(2))
		Expect(result.Published).To(BeZero())
	})

	It("handles an empty store", func() {
		b := backfill.NewBackfiller(driver, publisher, backfill.Options{})
		result, err := b.Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Guides).To(BeZero())
		Expect(result.Grades).To(BeZero())
		Expect(result.Summary()).To(ContainSubstring("published 0 events"))
	})
})
