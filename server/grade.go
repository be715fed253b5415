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

// gradePayload is the JSON object the grading prompt instructs the model to
// produce. Field names match the complete-frame wire format.
type gradePayload struct {
	TotalMarks         float64           `json:"totalMarks"`
	TotalPossibleMarks float64           `json:"totalPossibleMarks"`
	GradeBreakdown     []guide.GradeLine `json:"gradeBreakdown"`
	Feedback           string            `json:"feedback"`
}

// handleGrade grades an uploaded exam. The model's raw output is the grade
// JSON, not prose, so the stream carries progress frames while grading runs
// and a single complete frame with the marks.
func (s *Server) handleGrade(c *fiber.Ctx) error {
	startTime := time.Now()

	req, err := parseGradeForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(llm.ErrorResponse{Error: err.Error()})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(llm.ErrorResponse{Error: err.Error()})
	}

	model := req.Model
	if model == "" {
		model = s.config.Model
	}

	httpResp, err := s.startUpstream(buildGradeRequest(req, model))
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

	pr, pw := io.Pipe()
	go s.streamGrade(httpResp, pw, req, model, recordID, startTime)

	c.Context().Response.SetBodyStream(pr, -1)

	return nil
}

// parseGradeForm extracts the grading request from the multipart form.
func parseGradeForm(c *fiber.Ctx) (*GradeRequest, error) {
	fileHeader, err := c.FormFile("exam")
	if err != nil {
		return nil, fmt.Errorf("exam file is required")
	}
	if fileHeader.Size > maxExamSize {
		return nil, fmt.Errorf("exam file exceeds %d byte limit", maxExamSize)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("opening exam file: %w", err)
	}
	defer file.Close()

	examText, err := io.ReadAll(io.LimitReader(file, maxExamSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading exam file: %w", err)
	}

	return &GradeRequest{
		ExamName:  c.FormValue("exam_name"),
		Subject:   c.FormValue("subject"),
		Model:     c.FormValue("model"),
		ExamText:  string(examText),
		AnswerKey: c.FormValue("answer_key"),
	}, nil
}

// streamGrade reads the upstream stream, accumulating the model's grade JSON,
// then enqueues the grade result and writes the complete frame with marks.
func (s *Server) streamGrade(httpResp *http.Response, pw *io.PipeWriter, req *GradeRequest, model, recordID string, startTime time.Time) {
	defer httpResp.Body.Close()
	defer pw.Close()

	em := newEmitter(pw)
	if err := em.progress(fmt.Sprintf("grading exam %s", req.ExamName)); err != nil {
		s.logger.Error("error writing progress frame", zap.Error(err))
		return
	}

	var raw strings.Builder
	chunks := 0

	err := s.readStream(httpResp.Body, func(chunk *llm.StreamChunk) error {
		if chunk.Content == "" {
			return nil
		}
		raw.WriteString(chunk.Content)

		// Periodic progress keeps the connection visibly alive while the
		// model works through the exam.
		chunks++
		if chunks%25 == 0 {
			return em.progress("grading in progress")
		}
		return nil
	})
	if err != nil {
		s.logger.Error("error streaming grade", zap.Error(err))
		if werr := em.errorEvent("grading stream failed"); werr != nil {
			s.logger.Error("error writing error frame", zap.Error(werr))
		}
		return
	}

	payload, err := parseGradePayload(raw.String())
	if err != nil {
		s.logger.Error("could not parse grade output",
			zap.Error(err),
			zap.String("exam", req.ExamName),
		)
		if werr := em.errorEvent("grader returned unparseable output"); werr != nil {
			s.logger.Error("error writing error frame", zap.Error(werr))
		}
		return
	}

	completedAt := time.Now()

	s.workerPool.Enqueue(worker.Job{
		Kind: worker.KindGrade,
		Grade: &guide.GradeResult{
			ID:                 recordID,
			ExamName:           req.ExamName,
			Subject:            req.Subject,
			Model:              model,
			TotalMarks:         payload.TotalMarks,
			TotalPossibleMarks: payload.TotalPossibleMarks,
			Breakdown:          payload.GradeBreakdown,
			Feedback:           payload.Feedback,
		},
		Provider:    s.provider.Name(),
		Path:        "/v1/exams/grade",
		StartedAt:   startTime,
		CompletedAt: completedAt,
	})

	breakdown, err := json.Marshal(payload.GradeBreakdown)
	if err != nil {
		s.logger.Error("error marshaling grade breakdown", zap.Error(err))
		return
	}
	custom, err := json.Marshal(map[string]string{"feedback": payload.Feedback})
	if err != nil {
		s.logger.Error("error marshaling grade feedback", zap.Error(err))
		return
	}

	if err := em.writeEvent(stream.Event{
		Type:               stream.EventComplete,
		ID:                 recordID,
		TotalMarks:         &payload.TotalMarks,
		TotalPossibleMarks: &payload.TotalPossibleMarks,
		GradeBreakdown:     breakdown,
		CustomContent:      custom,
	}); err != nil {
		s.logger.Error("error writing complete frame", zap.Error(err))
	}
}

// parseGradePayload decodes the grade JSON from the model's raw output.
// Models sometimes wrap JSON in markdown fences despite instructions, so the
// parser trims to the outermost object before decoding.
func parseGradePayload(raw string) (*gradePayload, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in grader output")
	}

	var payload gradePayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("decoding grade payload: %w", err)
	}

	if payload.TotalPossibleMarks <= 0 {
		return nil, fmt.Errorf("grade payload missing total possible marks")
	}

	return &payload, nil
}
