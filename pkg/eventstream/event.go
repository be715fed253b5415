package eventstream

import (
	"time"
)

const (
	// SchemaVersionV1 is the first version of the event payload schema.
	SchemaVersionV1 = 1

	// EventTypeGuidePersisted is emitted after a study guide is persisted.
	EventTypeGuidePersisted = "studyforge.guide.persisted"

	// EventTypeGradePersisted is emitted after a grade result is persisted.
	EventTypeGradePersisted = "studyforge.grade.persisted"
)

// RecordPersistedEvent is a transport-neutral event payload for a persisted
// study guide or grade result.
type RecordPersistedEvent struct {
	SchemaVersion int             `json:"schema_version"`
	EventType     string          `json:"event_type"`
	EventID       string          `json:"event_id"`
	EmittedAt     time.Time       `json:"emitted_at"`
	Source        EventSource     `json:"source"`
	RequestMeta   RecordedRequest `json:"request_meta"`
	RecordID      string          `json:"record_id"`
}

// EventSource identifies where the record originated.
type EventSource struct {
	Subject  string `json:"subject,omitempty"`
	Level    string `json:"level,omitempty"`
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
}

// RecordedRequest captures request lifecycle metadata for the event.
type RecordedRequest struct {
	Path        string    `json:"path,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	DurationMs  int64     `json:"duration_ms"`
	Streaming   bool      `json:"streaming"`
}
