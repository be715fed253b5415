package server

import (
	"fmt"
	"strings"

	"github.com/studyforgeco/studyforge/pkg/llm"
)

const guideSystemPrompt = `You are an expert educator who writes clear, well-structured study guides in markdown. Organize every guide into sections that each start with a level-2 heading ("## "). Cover key concepts, worked examples, and common pitfalls. Do not include any preamble before the first heading.`

const gradeSystemPrompt = `You are an exam grader. Grade the exam you are given question by question, then respond with ONLY a JSON object, no prose, matching exactly this shape:

{
  "totalMarks": <number>,
  "totalPossibleMarks": <number>,
  "gradeBreakdown": [
    {"question": "<question label>", "marksAwarded": <number>, "marksPossible": <number>, "comment": "<short comment>"}
  ],
  "feedback": "<two or three sentences of overall feedback>"
}`

// buildGuideRequest assembles the upstream chat request for guide generation.
func buildGuideRequest(req *GenerateRequest, model string) *llm.ChatRequest {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a study guide on %q within the subject %q.", req.Topic, req.Subject)
	if req.Level != "" {
		fmt.Fprintf(&b, " Target it at the %s level.", req.Level)
	}
	if req.Instructions != "" {
		fmt.Fprintf(&b, " Additional instructions: %s", req.Instructions)
	}

	return &llm.ChatRequest{
		Model:  model,
		System: guideSystemPrompt,
		Messages: []llm.Message{
			{Role: "user", Content: b.String()},
		},
		MaxTokens: 8192,
	}
}

// buildGradeRequest assembles the upstream chat request for exam grading.
func buildGradeRequest(req *GradeRequest, model string) *llm.ChatRequest {
	var b strings.Builder
	b.WriteString("Grade the following exam")
	if req.Subject != "" {
		fmt.Fprintf(&b, " in %s", req.Subject)
	}
	b.WriteString(".\n\n---\n")
	b.WriteString(req.ExamText)
	b.WriteString("\n---\n")
	if req.AnswerKey != "" {
		b.WriteString("\nScore against this answer key:\n\n---\n")
		b.WriteString(req.AnswerKey)
		b.WriteString("\n---\n")
	}

	zero := 0.0
	return &llm.ChatRequest{
		Model:  model,
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: "user", Content: b.String()},
		},
		MaxTokens: 4096,
		// Deterministic grading
		Temperature: &zero,
	}
}
