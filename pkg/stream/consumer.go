package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

const framePrefix = "data: "

// recordSep delimits one logical frame in the byte stream.
var recordSep = []byte("\n\n")

const defaultReadBufferSize = 32 * 1024

// Option configures a Consumer created with NewConsumer.
type Option func(*Consumer)

// WithClock overrides the wall-clock source used to measure session elapsed
// time. Tests use this to exercise the premature-close buckets without
// sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *Consumer) {
		c.now = now
	}
}

// WithReadBuffer sets the size of the chunk buffer used for each read from
// the underlying stream.
func WithReadBuffer(size int) Option {
	return func(c *Consumer) {
		if size > 0 {
			c.bufSize = size
		}
	}
}

// Consumer reads a stream of frames and dispatches decoded events to its
// handlers. A Consumer holds no per-stream state and is safe to reuse across
// sequential Consume calls; each call owns its own session, so concurrent
// sessions (e.g. several simultaneous uploads) never cross-talk.
type Consumer struct {
	handlers Handlers
	now      func() time.Time
	bufSize  int
}

// NewConsumer returns a Consumer that dispatches to the given handlers.
func NewConsumer(handlers Handlers, opts ...Option) *Consumer {
	c := &Consumer{
		handlers: handlers,
		now:      time.Now,
		bufSize:  defaultReadBufferSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// session is the working state for a single Consume call: the undrained tail
// of the byte stream, the terminal complete payload if one was seen, and the
// last server-reported error message.
//
// Invariant: between reads, buf holds at most one incomplete trailing frame.
// Every blank-line-terminated record is extracted and dispatched before the
// next chunk is appended.
type session struct {
	buf      []byte
	complete *Complete
	errSeen  bool
	errMsg   string
}

// Consume reads r until end-of-stream, dispatching events as frames are
// decoded, then returns the terminal outcome: the complete payload on
// success, or an error describing why the stream failed.
//
// Read failures abort the session and propagate as-is (wrapped); they are
// never retried here — retry policy belongs to the caller. A server-reported
// error frame does NOT stop consumption: it is recorded and surfaced only if
// no complete frame ever arrives. If the stream ends with neither, the
// returned *CloseError carries a best-effort guess at the cause based on
// elapsed time.
func (c *Consumer) Consume(ctx context.Context, r io.Reader) (*Complete, error) {
	s := &session{}
	started := c.now()
	chunk := make([]byte, c.bufSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := r.Read(chunk)
		if n > 0 {
			c.feed(s, chunk[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading stream: %w", err)
		}
	}

	return c.finalize(s, c.now().Sub(started))
}

// feed appends a raw chunk to the session buffer and drains every complete
// record. Splitting happens on raw bytes, so a multi-byte character split
// across chunk boundaries is reassembled before it ever reaches the JSON
// decoder.
func (c *Consumer) feed(s *session, p []byte) {
	s.buf = append(s.buf, p...)

	for {
		i := bytes.Index(s.buf, recordSep)
		if i < 0 {
			return
		}

		record := s.buf[:i]
		s.buf = s.buf[i+len(recordSep):]
		c.dispatch(s, record)
	}
}

// dispatch decodes one record and invokes the matching handler. Records
// without the "data: " prefix and records whose payload fails to parse as
// JSON are skipped without surfacing an error.
func (c *Consumer) dispatch(s *session, record []byte) {
	if !bytes.HasPrefix(record, []byte(framePrefix)) {
		return
	}

	var ev Event
	if err := json.Unmarshal(record[len(framePrefix):], &ev); err != nil {
		return
	}

	switch ev.Type {
	case EventProgress:
		if c.handlers.OnProgress != nil {
			c.handlers.OnProgress(ev.Message)
		}
	case EventContent:
		if c.handlers.OnContent != nil {
			c.handlers.OnContent(ev.Chunk)
		}
	case EventSection:
		if c.handlers.OnSection != nil {
			c.handlers.OnSection(ev.Section)
		}
	case EventComplete:
		s.complete = &Complete{
			ID:                 ev.ID,
			TotalMarks:         ev.TotalMarks,
			TotalPossibleMarks: ev.TotalPossibleMarks,
			GradeBreakdown:     ev.GradeBreakdown,
			CustomContent:      ev.CustomContent,
		}
		if c.handlers.OnComplete != nil {
			c.handlers.OnComplete(*s.complete)
		}
	case EventError:
		// Recorded but not terminal: the server may still recover and send
		// a complete frame. Surfaced in finalize only if it never does.
		s.errSeen = true
		s.errMsg = ev.Message
		if c.handlers.OnError != nil {
			c.handlers.OnError(ev.Message)
		}
	default:
		// Unknown event type. Skip so that older clients survive frames
		// introduced by newer servers.
	}
}

// finalize resolves the terminal outcome once the stream has ended.
func (c *Consumer) finalize(s *session, elapsed time.Duration) (*Complete, error) {
	if s.complete != nil {
		return s.complete, nil
	}

	if s.errSeen {
		return nil, &CloseError{
			Reason:  ReasonServerReported,
			Message: s.errMsg,
			Elapsed: elapsed,
		}
	}

	reason, msg := classifyPrematureClose(elapsed)
	return nil, &CloseError{
		Reason:  reason,
		Message: msg,
		Elapsed: elapsed,
	}
}
