package server

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Section Tracker", func() {
	var tracker *sectionTracker

	BeforeEach(func() {
		tracker = newSectionTracker()
	})

	It("completes a section when the next heading arrives", func() {
		done := tracker.Feed("## Motion\nVelocity.\n## Forces\n")
		Expect(done).To(HaveLen(1))
		Expect(done[0].Title).To(Equal("Motion"))
		Expect(done[0].Body).To(Equal("Velocity."))
	})

	It("handles headings split across chunks", func() {
		Expect(tracker.Feed("## Mot")).To(BeEmpty())
		Expect(tracker.Feed("ion\nVelocity.\n")).To(BeEmpty())
		done := tracker.Feed("## Forces\n")
		Expect(done).To(HaveLen(1))
		Expect(done[0].Title).To(Equal("Motion"))
	})

	It("keeps deeper headings inside the current section", func() {
		Expect(tracker.Feed("## Motion\n### Velocity\nv = dx/dt\n")).To(BeEmpty())
		last := tracker.Flush()
		Expect(last).NotTo(BeNil())
		Expect(last.Title).To(Equal("Motion"))
		Expect(last.Body).To(ContainSubstring("### Velocity"))
	})

	It("flushes the trailing section without a terminating newline", func() {
		tracker.Feed("## Motion\nVelocity")
		last := tracker.Flush()
		Expect(last).NotTo(BeNil())
		Expect(last.Body).To(Equal("Velocity"))
		Expect(tracker.Sections()).To(HaveLen(1))
	})

	It("flushes a heading-only trailing section", func() {
		tracker.Feed("## Motion\nVelocity.\n")
		tracker.Feed("## Summary")
		last := tracker.Flush()
		Expect(last).NotTo(BeNil())
		Expect(last.Title).To(Equal("Summary"))
		Expect(last.Body).To(BeEmpty())
		Expect(tracker.Sections()).To(HaveLen(2))
	})

	It("ignores content before the first heading", func() {
		Expect(tracker.Feed("preamble text\n## Motion\nVelocity.\n")).To(BeEmpty())
		last := tracker.Flush()
		Expect(last.Title).To(Equal("Motion"))
		Expect(tracker.Sections()).To(HaveLen(1))
	})

	It("returns nil from Flush when nothing was fed", func() {
		Expect(tracker.Flush()).To(BeNil())
		Expect(tracker.Sections()).To(BeEmpty())
	})
})
