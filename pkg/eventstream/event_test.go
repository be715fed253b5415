package eventstream_test

import (
	"encoding/json"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/studyforgeco/studyforge/pkg/eventstream"
)

func TestEventstream(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Eventstream Suite")
}

var _ = Describe("Event", func() {
	It("marshals RecordPersistedEvent with expected top-level keys", func() {
		now := time.Unix(1767225600, 0).UTC()
		event := eventstream.RecordPersistedEvent{
			SchemaVersion: eventstream.SchemaVersionV1,
			EventType:     eventstream.EventTypeGuidePersisted,
			EventID:       "evt_123",
			EmittedAt:     now,
			Source: eventstream.EventSource{
				Subject:  "physics",
				Level:    "gcse",
				Provider: "anthropic",
				Model:    "claude-sonnet-4-5",
			},
			RequestMeta: eventstream.RecordedRequest{
				Path:        "/v1/guides/generate",
				StartedAt:   now.Add(-30 * time.Second),
				CompletedAt: now,
				DurationMs:  30000,
				Streaming:   true,
			},
			RecordID: "rec_123",
		}

		payload, err := json.Marshal(event)
		Expect(err).NotTo(HaveOccurred())

		var got map[string]any
		Expect(json.Unmarshal(payload, &got)).To(Succeed())

		Expect(got).To(HaveKey("schema_version"))
		Expect(got).To(HaveKey("event_type"))
		Expect(got).To(HaveKey("event_id"))
		Expect(got).To(HaveKey("emitted_at"))
		Expect(got).To(HaveKey("source"))
		Expect(got).To(HaveKey("request_meta"))
		Expect(got).To(HaveKey("record_id"))
	})

	It("defines stable event constants", func() {
		Expect(eventstream.SchemaVersionV1).To(BeNumerically(">", 0))
		Expect(eventstream.EventTypeGuidePersisted).To(Equal("studyforge.guide.persisted"))
		Expect(eventstream.EventTypeGradePersisted).To(Equal("studyforge.grade.persisted"))
	})

	It("provides ErrNilRecordEvent for nil payload validation", func() {
		Expect(eventstream.ErrNilRecordEvent).NotTo(BeNil())
		Expect(eventstream.ErrNilRecordEvent).To(MatchError("nil record event"))
	})
})
