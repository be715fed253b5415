package server

import (
	"errors"
	"fmt"
	"strings"
)

// maxExamSize caps uploaded exam files. Exams are pasted into the grading
// prompt, so anything past this would blow the upstream context window anyway.
const maxExamSize = 1 << 20 // 1 MiB

// GenerateRequest is the JSON body of POST /v1/guides/generate.
type GenerateRequest struct {
	// Subject is the broad subject area (e.g., "physics").
	Subject string `json:"subject"`

	// Topic is the specific topic within the subject to build the guide around.
	Topic string `json:"topic"`

	// Level is the target audience level (e.g., "high-school", "undergraduate").
	// Optional.
	Level string `json:"level,omitempty"`

	// Instructions are extra caller directions folded into the prompt, e.g.
	// "focus on worked examples". Optional.
	Instructions string `json:"instructions,omitempty"`

	// Model overrides the server's configured model when set.
	Model string `json:"model,omitempty"`
}

// Validate checks the request for required fields.
func (r *GenerateRequest) Validate() error {
	if strings.TrimSpace(r.Subject) == "" {
		return errors.New("subject is required")
	}
	if strings.TrimSpace(r.Topic) == "" {
		return errors.New("topic is required")
	}
	return nil
}

// GradeRequest is the parsed multipart form of POST /v1/exams/grade.
type GradeRequest struct {
	// ExamName labels the stored grade result.
	ExamName string

	// Subject is the subject area used to focus the grading prompt. Optional.
	Subject string

	// Model overrides the server's configured model when set.
	Model string

	// ExamText is the uploaded exam file contents.
	ExamText string

	// AnswerKey is reference answer text the grader scores against. Optional;
	// without it the model grades on its own knowledge.
	AnswerKey string
}

// Validate checks the request for required fields and size limits.
func (r *GradeRequest) Validate() error {
	if strings.TrimSpace(r.ExamName) == "" {
		return errors.New("exam_name is required")
	}
	if strings.TrimSpace(r.ExamText) == "" {
		return errors.New("exam file is empty")
	}
	if len(r.ExamText) > maxExamSize {
		return fmt.Errorf("exam file exceeds %d byte limit", maxExamSize)
	}
	return nil
}
