package server

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/studyforgeco/studyforge/pkg/stream"
)

// emitter writes studyforge event frames to a stream writer. Frames are
// "data: <json>" followed by a blank line, so clients see one frame per
// logical event regardless of how the transport chunks the body.
type emitter struct {
	w io.Writer
}

func newEmitter(w io.Writer) *emitter {
	return &emitter{w: w}
}

// writeEvent marshals the event and writes it as a single frame.
func (e *emitter) writeEvent(ev stream.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshaling event frame: %w", err)
	}

	if _, err := fmt.Fprintf(e.w, "data: %s\n\n", payload); err != nil {
		return fmt.Errorf("writing event frame: %w", err)
	}

	return nil
}

func (e *emitter) progress(message string) error {
	return e.writeEvent(stream.Event{Type: stream.EventProgress, Message: message})
}

func (e *emitter) content(chunk string) error {
	return e.writeEvent(stream.Event{Type: stream.EventContent, Chunk: chunk})
}

func (e *emitter) section(section json.RawMessage) error {
	return e.writeEvent(stream.Event{Type: stream.EventSection, Section: section})
}

func (e *emitter) errorEvent(message string) error {
	return e.writeEvent(stream.Event{Type: stream.EventError, Message: message})
}
