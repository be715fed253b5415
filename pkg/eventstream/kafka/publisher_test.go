package kafka_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/studyforgeco/studyforge/pkg/eventstream"
	"github.com/studyforgeco/studyforge/pkg/eventstream/kafka"
)

func TestKafka(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Kafka Suite")
}

var _ = Describe("Publisher", func() {
	It("requires at least one broker", func() {
		_, err := kafka.NewPublisher(nil, "studyforge.records")
		Expect(err).To(HaveOccurred())
	})

	It("requires a topic", func() {
		_, err := kafka.NewPublisher([]string{"localhost:9092"}, "")
		Expect(err).To(HaveOccurred())
	})

	It("creates a publisher without connecting", func() {
		p, err := kafka.NewPublisher([]string{"localhost:9092"}, "studyforge.records")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).NotTo(BeNil())
		Expect(p.Close()).To(Succeed())
	})

	It("rejects nil events before touching the network", func() {
		p, err := kafka.NewPublisher([]string{"localhost:9092"}, "studyforge.records")
		Expect(err).NotTo(HaveOccurred())
		defer p.Close()

		Expect(p.PublishRecord(context.Background(), nil)).To(MatchError(eventstream.ErrNilRecordEvent))
	})
})
