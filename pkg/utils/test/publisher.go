package testutils

import (
	"context"
	"fmt"
	"sync"

	"github.com/studyforgeco/studyforge/pkg/eventstream"
)

// MockPublisher is a test eventstream publisher that records published
// events and returns configurable errors.
type MockPublisher struct {
	mu sync.Mutex

	// Published accumulates all events passed to PublishRecord.
	Published []*eventstream.RecordPersistedEvent

	// FailPublish causes PublishRecord to return an error.
	FailPublish bool

	// Closed is set when Close is called.
	Closed bool
}

// NewMockPublisher creates a new mock eventstream publisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		Published: make([]*eventstream.RecordPersistedEvent, 0),
	}
}

func (m *MockPublisher) PublishRecord(_ context.Context, event *eventstream.RecordPersistedEvent) error {
	if event == nil {
		return eventstream.ErrNilRecordEvent
	}

	if m.FailPublish {
		return fmt.Errorf("mock publish failure")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Published = append(m.Published, event)

	return nil
}

func (m *MockPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// Events returns a snapshot of the published events.
func (m *MockPublisher) Events() []*eventstream.RecordPersistedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*eventstream.RecordPersistedEvent, len(m.Published))
	copy(out, m.Published)
	return out
}
