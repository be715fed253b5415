// Package stream implements the client side of the studyforge streaming
// protocol. Generation and grading endpoints respond with a chunked body of
// "data: <json>" frames separated by blank lines; this package reassembles
// frames split across network chunks, decodes them into typed events, and
// dispatches each event to caller-supplied handlers in arrival order.
//
// This package intentionally does NOT implement reconnection or resume. A
// dropped stream is terminal; callers restart the whole request.
package stream

import "encoding/json"

// EventType is the discriminator carried in the "type" field of every frame.
type EventType string

const (
	// EventProgress carries a human-readable status line.
	EventProgress EventType = "progress"

	// EventContent carries an incremental text chunk to append to the
	// caller's accumulating document.
	EventContent EventType = "content"

	// EventSection carries a structured sub-document to incorporate as soon
	// as it arrives.
	EventSection EventType = "section"

	// EventComplete carries the final result payload and marks the stream as
	// successfully finished.
	EventComplete EventType = "complete"

	// EventError carries a server-reported failure message.
	EventError EventType = "error"
)

// Event is the decoded payload of a single frame. Type determines which of
// the remaining fields are populated; everything else is left zero.
type Event struct {
	Type EventType `json:"type"`

	// Message is set for progress and error events.
	Message string `json:"message,omitempty"`

	// Chunk is set for content events.
	Chunk string `json:"chunk,omitempty"`

	// Section is set for section events. The consumer does not validate its
	// shape, only recognizes the event type; the caller owns decoding.
	Section json.RawMessage `json:"section,omitempty"`

	// Complete-event fields. Which of these are present depends on the
	// endpoint that produced the stream: grading streams carry marks and a
	// breakdown, generation streams carry the persisted record id and
	// content.
	ID                 string          `json:"id,omitempty"`
	TotalMarks         *float64        `json:"totalMarks,omitempty"`
	TotalPossibleMarks *float64        `json:"totalPossibleMarks,omitempty"`
	GradeBreakdown     json.RawMessage `json:"gradeBreakdown,omitempty"`
	CustomContent      json.RawMessage `json:"customContent,omitempty"`
}

// Complete is the terminal payload of a successfully finished stream.
type Complete struct {
	ID                 string
	TotalMarks         *float64
	TotalPossibleMarks *float64
	GradeBreakdown     json.RawMessage
	CustomContent      json.RawMessage
}

// Handlers holds the per-event-type callbacks invoked as events are decoded.
// Nil callbacks are skipped, but the event still updates session state (a
// complete event with a nil OnComplete still finishes the stream
// successfully). Handlers run synchronously with the read loop; a slow
// handler delays consumption of the next chunk.
type Handlers struct {
	OnProgress func(message string)
	OnContent  func(chunk string)
	OnSection  func(section json.RawMessage)
	OnComplete func(c Complete)
	OnError    func(message string)
}
