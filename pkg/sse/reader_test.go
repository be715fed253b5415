package sse

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reader", func() {
	Describe("Next", func() {
		It("parses a single event", func() {
			r := NewReader(strings.NewReader("data: hello world\n\n"))

			ev, err := r.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(ev.Data).To(Equal("hello world"))
			Expect(ev.Type).To(BeEmpty())
			Expect(ev.ID).To(BeEmpty())

			ev, err = r.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(ev).To(BeNil())
		})

		It("parses multiple events in order", func() {
			r := NewReader(strings.NewReader("data: first\n\ndata: second\n\n"))

			ev1, err := r.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(ev1.Data).To(Equal("first"))

			ev2, err := r.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(ev2.Data).To(Equal("second"))

			ev3, err := r.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(ev3).To(BeNil())
		})

		It("parses the event type field", func() {
			r := NewReader(strings.NewReader("event: content_block_delta\ndata: {\"type\":\"delta\"}\n\n"))

			ev, err := r.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(ev.Type).To(Equal("content_block_delta"))
			Expect(ev.Data).To(Equal("{\"type\":\"delta\"}"))
		})

		It("joins multiple data lines with newlines", func() {
			r := NewReader(strings.NewReader("data: line one\ndata: line two\n\n"))

			ev, err := r.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(ev.Data).To(Equal("line one\nline two"))
		})

		It("skips comment lines", func() {
			r := NewReader(strings.NewReader(": keep-alive\ndata: payload\n\n"))

			ev, err := r.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(ev.Data).To(Equal("payload"))
		})

		It("skips keep-alive blank lines between events", func() {
			r := NewReader(strings.NewReader("\n\ndata: payload\n\n"))

			ev, err := r.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(ev.Data).To(Equal("payload"))
		})

		It("yields an in-progress event when the stream ends without a blank line", func() {
			r := NewReader(strings.NewReader("data: trailing"))

			ev, err := r.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(ev.Data).To(Equal("trailing"))

			ev, err = r.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(ev).To(BeNil())
		})

		It("records the last event id", func() {
			r := NewReader(strings.NewReader("id: 42\ndata: payload\n\n"))

			ev, err := r.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(ev.ID).To(Equal("42"))
		})
	})
})
