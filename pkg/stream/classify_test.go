package stream

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("classifyPrematureClose", func() {
	DescribeTable("bucket boundaries",
		func(elapsed time.Duration, want CloseReason) {
			reason, msg := classifyPrematureClose(elapsed)
			Expect(reason).To(Equal(want))
			Expect(msg).NotTo(BeEmpty())
		},
		Entry("0s", 0*time.Second, ReasonEarlyClose),
		Entry("8.9s", 8900*time.Millisecond, ReasonEarlyClose),
		Entry("9s", 9*time.Second, ReasonShortTimeout),
		Entry("12s", 12*time.Second, ReasonShortTimeout),
		Entry("12.1s", 12100*time.Millisecond, ReasonEarlyClose),
		Entry("14.9s", 14900*time.Millisecond, ReasonEarlyClose),
		Entry("15s", 15*time.Second, ReasonInterrupted),
		Entry("54.9s", 54900*time.Millisecond, ReasonInterrupted),
		Entry("55s", 55*time.Second, ReasonLongTimeout),
		Entry("65s", 65*time.Second, ReasonLongTimeout),
		Entry("65.1s", 65100*time.Millisecond, ReasonInterrupted),
	)

	It("phrases timeout guesses as a possibility, not a fact", func() {
		_, msg := classifyPrematureClose(10 * time.Second)
		Expect(msg).To(ContainSubstring("may have"))
	})
})
