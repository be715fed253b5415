package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/llm"
	"github.com/studyforgeco/studyforge/pkg/stream"
	"github.com/studyforgeco/studyforge/server/worker"
)

// guideCompletePayload is the customContent of a generation complete frame.
type guideCompletePayload struct {
	Subject  string     `json:"subject"`
	Topic    string     `json:"topic"`
	Level    string     `json:"level,omitempty"`
	Model    string     `json:"model"`
	Sections int        `json:"sections"`
	Usage    *llm.Usage `json:"usage,omitempty"`
}

// handleGenerate streams a generated study guide back to the client as event
// frames while assembling the full guide for async persistence.
func (s *Server) handleGenerate(c *fiber.Ctx) error {
	startTime := time.Now()

	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(llm.ErrorResponse{Error: "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(llm.ErrorResponse{Error: err.Error()})
	}

	model := req.Model
	if model == "" {
		model = s.config.Model
	}

	httpResp, err := s.startUpstream(buildGuideRequest(&req, model))
	if err != nil {
		s.logger.Error("upstream request failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(llm.ErrorResponse{Error: "upstream request failed"})
	}
	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(httpResp.Body)
		httpResp.Body.Close()
		s.logger.Error("upstream returned error",
			zap.Int("status", httpResp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return c.Status(httpResp.StatusCode).JSON(llm.ErrorResponse{Error: "upstream returned an error"})
	}

	recordID := uuid.NewString()

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")

	// io.Pipe gives direct backpressure: pw.Write blocks until fasthttp's
	// chunked writer consumes the data and flushes it to the socket, so the
	// client sees each frame as it is produced.
	pr, pw := io.Pipe()
	go s.streamGuide(httpResp, pw, &req, model, recordID, startTime)

	// Unknown size (-1) triggers chunked transfer encoding.
	c.Context().Response.SetBodyStream(pr, -1)

	return nil
}

// streamGuide reads the upstream stream, forwarding content and section frames
// to the pipe writer, then enqueues the assembled guide and writes the
// complete frame.
func (s *Server) streamGuide(httpResp *http.Response, pw *io.PipeWriter, req *GenerateRequest, model, recordID string, startTime time.Time) {
	defer httpResp.Body.Close()
	defer pw.Close()

	em := newEmitter(pw)
	if err := em.progress(fmt.Sprintf("generating study guide for %s", req.Topic)); err != nil {
		s.logger.Error("error writing progress frame", zap.Error(err))
		return
	}

	tracker := newSectionTracker()
	var fullContent strings.Builder
	var usage llm.Usage

	err := s.readStream(httpResp.Body, func(chunk *llm.StreamChunk) error {
		usage.Accumulate(chunk.Usage)
		if chunk.Content == "" {
			return nil
		}

		fullContent.WriteString(chunk.Content)
		if err := em.content(chunk.Content); err != nil {
			return err
		}

		for _, sec := range tracker.Feed(chunk.Content) {
			if err := s.emitSection(em, sec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("error streaming study guide", zap.Error(err))
		if werr := em.errorEvent("generation stream failed"); werr != nil {
			s.logger.Error("error writing error frame", zap.Error(werr))
		}
		return
	}

	if last := tracker.Flush(); last != nil {
		if err := s.emitSection(em, *last); err != nil {
			s.logger.Error("error writing section frame", zap.Error(err))
			return
		}
	}

	completedAt := time.Now()
	sections := tracker.Sections()

	s.workerPool.Enqueue(worker.Job{
		Kind: worker.KindGuide,
		Guide: &guide.StudyGuide{
			ID:       recordID,
			Subject:  req.Subject,
			Topic:    req.Topic,
			Level:    req.Level,
			Model:    model,
			Content:  fullContent.String(),
			Sections: sections,
		},
		Provider:    s.provider.Name(),
		Path:        "/v1/guides/generate",
		StartedAt:   startTime,
		CompletedAt: completedAt,
	})

	custom, err := json.Marshal(guideCompletePayload{
		Subject:  req.Subject,
		Topic:    req.Topic,
		Level:    req.Level,
		Model:    model,
		Sections: len(sections),
		Usage:    &usage,
	})
	if err != nil {
		s.logger.Error("error marshaling complete payload", zap.Error(err))
		return
	}

	if err := em.writeEvent(stream.Event{
		Type:          stream.EventComplete,
		ID:            recordID,
		CustomContent: custom,
	}); err != nil {
		s.logger.Error("error writing complete frame", zap.Error(err))
	}
}

func (s *Server) emitSection(em *emitter, sec guide.Section) error {
	payload, err := json.Marshal(sec)
	if err != nil {
		return fmt.Errorf("marshaling section: %w", err)
	}
	return em.section(payload)
}
