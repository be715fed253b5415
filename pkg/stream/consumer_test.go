package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// chunkedReader delivers the stream in caller-controlled chunks so tests can
// force frame boundaries anywhere, including mid-JSON and mid-rune.
type chunkedReader struct {
	chunks [][]byte
}

func newChunkedReader(chunks ...string) *chunkedReader {
	r := &chunkedReader{}
	for _, c := range chunks {
		r.chunks = append(r.chunks, []byte(c))
	}
	return r
}

func (r *chunkedReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}

	n := copy(p, r.chunks[0])
	if n < len(r.chunks[0]) {
		r.chunks[0] = r.chunks[0][n:]
	} else {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

// recorder collects dispatched events as comparable strings.
type recorder struct {
	seq []string
}

func (rec *recorder) handlers() Handlers {
	return Handlers{
		OnProgress: func(m string) { rec.seq = append(rec.seq, "progress:"+m) },
		OnContent:  func(c string) { rec.seq = append(rec.seq, "content:"+c) },
		OnSection:  func(s json.RawMessage) { rec.seq = append(rec.seq, "section:"+string(s)) },
		OnComplete: func(c Complete) { rec.seq = append(rec.seq, "complete:"+c.ID) },
		OnError:    func(m string) { rec.seq = append(rec.seq, "error:"+m) },
	}
}

// clockAt returns a clock whose first reading is a fixed base time and whose
// every later reading is base+elapsed.
func clockAt(elapsed time.Duration) func() time.Time {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	first := true
	return func() time.Time {
		if first {
			first = false
			return base
		}
		return base.Add(elapsed)
	}
}

var _ = Describe("Consumer", func() {
	frame := func(payload string) string {
		return "data: " + payload + "\n\n"
	}

	Describe("Consume", func() {
		It("dispatches events and returns the complete payload", func() {
			rec := &recorder{}
			c := NewConsumer(rec.handlers())

			src := strings.NewReader(
				frame(`{"type":"progress","message":"Reading exam"}`) +
					frame(`{"type":"content","chunk":"The mitochondria"}`) +
					frame(`{"type":"complete","id":"abc"}`),
			)

			complete, err := c.Consume(context.Background(), src)
			Expect(err).NotTo(HaveOccurred())
			Expect(complete.ID).To(Equal("abc"))
			Expect(rec.seq).To(Equal([]string{
				"progress:Reading exam",
				"content:The mitochondria",
				"complete:abc",
			}))
		})

		It("reassembles a frame split across chunks", func() {
			rec := &recorder{}
			c := NewConsumer(rec.handlers())

			src := newChunkedReader(
				"data: {\"type\":\"progress\",\"mess",
				"age\":\"Starting\"}\n\ndata: {\"type\":\"complete\",\"id\":\"abc\"}\n\n",
			)

			complete, err := c.Consume(context.Background(), src)
			Expect(err).NotTo(HaveOccurred())
			Expect(complete.ID).To(Equal("abc"))
			Expect(rec.seq).To(Equal([]string{"progress:Starting", "complete:abc"}))
		})

		It("dispatches the same sequence for every possible chunk boundary", func() {
			// Multi-byte characters included so a split can land inside an
			// encoded rune.
			full := frame(`{"type":"progress","message":"héllo 世界"}`) +
				frame(`{"type":"content","chunk":"α"}`) +
				frame(`{"type":"complete","id":"r-1"}`)

			whole := &recorder{}
			_, err := NewConsumer(whole.handlers()).
				Consume(context.Background(), strings.NewReader(full))
			Expect(err).NotTo(HaveOccurred())

			for i := 1; i < len(full); i++ {
				rec := &recorder{}
				c := NewConsumer(rec.handlers())

				_, err := c.Consume(context.Background(), newChunkedReader(full[:i], full[i:]))
				Expect(err).NotTo(HaveOccurred())
				Expect(rec.seq).To(Equal(whole.seq), fmt.Sprintf("split at byte %d", i))
			}
		})

		It("skips malformed frames without aborting or invoking the error handler", func() {
			rec := &recorder{}
			c := NewConsumer(rec.handlers())

			src := strings.NewReader(
				"data: not-json\n\n" +
					"no prefix at all\n\n" +
					frame(`{"type":"content","chunk":"hi"}`) +
					frame(`{"type":"complete","id":"ok"}`),
			)

			complete, err := c.Consume(context.Background(), src)
			Expect(err).NotTo(HaveOccurred())
			Expect(complete.ID).To(Equal("ok"))
			Expect(rec.seq).To(Equal([]string{"content:hi", "complete:ok"}))
		})

		It("ignores unknown event types", func() {
			rec := &recorder{}
			c := NewConsumer(rec.handlers())

			src := strings.NewReader(
				frame(`{"type":"heartbeat"}`) +
					frame(`{"type":"complete","id":"ok"}`),
			)

			_, err := c.Consume(context.Background(), src)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.seq).To(Equal([]string{"complete:ok"}))
		})

		It("tolerates nil handlers", func() {
			c := NewConsumer(Handlers{})

			src := strings.NewReader(
				frame(`{"type":"progress","message":"working"}`) +
					frame(`{"type":"complete","id":"ok"}`),
			)

			complete, err := c.Consume(context.Background(), src)
			Expect(err).NotTo(HaveOccurred())
			Expect(complete.ID).To(Equal("ok"))
		})

		It("decodes grading complete payloads", func() {
			var got Complete
			c := NewConsumer(Handlers{
				OnComplete: func(cp Complete) { got = cp },
			})

			src := strings.NewReader(frame(
				`{"type":"complete","id":"g-9","totalMarks":17.5,"totalPossibleMarks":20,` +
					`"gradeBreakdown":[{"question":"Q1","marksAwarded":5}]}`,
			))

			_, err := c.Consume(context.Background(), src)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal("g-9"))
			Expect(*got.TotalMarks).To(Equal(17.5))
			Expect(*got.TotalPossibleMarks).To(Equal(20.0))
			Expect(string(got.GradeBreakdown)).To(ContainSubstring("Q1"))
		})

		It("keeps reading after an error frame and prefers a later complete", func() {
			rec := &recorder{}
			c := NewConsumer(rec.handlers())

			src := strings.NewReader(
				frame(`{"type":"error","message":"transient"}`) +
					frame(`{"type":"complete","id":"recovered"}`),
			)

			complete, err := c.Consume(context.Background(), src)
			Expect(err).NotTo(HaveOccurred())
			Expect(complete.ID).To(Equal("recovered"))
			Expect(rec.seq).To(Equal([]string{"error:transient", "complete:recovered"}))
		})

		It("surfaces the last error frame when no complete arrives", func() {
			c := NewConsumer(Handlers{}, WithClock(clockAt(2*time.Second)))

			src := strings.NewReader(frame(`{"type":"error","message":"bad file"}`))

			_, err := c.Consume(context.Background(), src)

			var closeErr *CloseError
			Expect(errors.As(err, &closeErr)).To(BeTrue())
			Expect(closeErr.Reason).To(Equal(ReasonServerReported))
			Expect(closeErr.Message).To(Equal("bad file"))
		})

		It("propagates read failures without finalizing", func() {
			boom := errors.New("connection reset")
			c := NewConsumer(Handlers{})

			_, err := c.Consume(context.Background(), io.MultiReader(
				strings.NewReader(frame(`{"type":"progress","message":"x"}`)),
				&failingReader{err: boom},
			))

			Expect(err).To(MatchError(boom))
			var closeErr *CloseError
			Expect(errors.As(err, &closeErr)).To(BeFalse())
		})

		It("aborts promptly when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			c := NewConsumer(Handlers{})
			_, err := c.Consume(ctx, strings.NewReader(frame(`{"type":"complete","id":"x"}`)))
			Expect(err).To(MatchError(context.Canceled))
		})

		DescribeTable("premature close classification",
			func(elapsed time.Duration, reason CloseReason) {
				c := NewConsumer(Handlers{}, WithClock(clockAt(elapsed)))

				_, err := c.Consume(context.Background(), strings.NewReader(""))

				var closeErr *CloseError
				Expect(errors.As(err, &closeErr)).To(BeTrue())
				Expect(closeErr.Reason).To(Equal(reason))
				Expect(closeErr.Elapsed).To(Equal(elapsed))
			},
			Entry("3s looks like an early server failure", 3*time.Second, ReasonEarlyClose),
			Entry("10s looks like the short platform timeout", 10*time.Second, ReasonShortTimeout),
			Entry("14s still counts as an early close", 14*time.Second, ReasonEarlyClose),
			Entry("60s looks like the long platform timeout", 60*time.Second, ReasonLongTimeout),
			Entry("2min matches no known limit", 2*time.Minute, ReasonInterrupted),
		)

		It("embeds the measured elapsed time in the generic message", func() {
			c := NewConsumer(Handlers{}, WithClock(clockAt(120*time.Second)))

			_, err := c.Consume(context.Background(), strings.NewReader(""))

			var closeErr *CloseError
			Expect(errors.As(err, &closeErr)).To(BeTrue())
			Expect(closeErr.Message).To(ContainSubstring("120 seconds"))
		})
	})

	Describe("session buffer", func() {
		It("retains only the unterminated trailing fragment", func() {
			c := NewConsumer(Handlers{})
			s := &session{}

			c.feed(s, []byte(frame(`{"type":"progress","message":"a"}`)+`data: {"type":"con`))
			Expect(string(s.buf)).To(Equal(`data: {"type":"con`))

			c.feed(s, []byte(`tent","chunk":"b"}`+"\n\n"))
			Expect(s.buf).To(BeEmpty())
		})

		It("drains multiple records arriving in a single chunk", func() {
			rec := &recorder{}
			c := NewConsumer(rec.handlers())
			s := &session{}

			c.feed(s, []byte(
				frame(`{"type":"content","chunk":"one"}`)+
					frame(`{"type":"content","chunk":"two"}`)+
					frame(`{"type":"content","chunk":"three"}`),
			))

			Expect(s.buf).To(BeEmpty())
			Expect(rec.seq).To(Equal([]string{"content:one", "content:two", "content:three"}))
		})
	})
})

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}
