// Package guide defines the domain records for studyforge: generated study
// guides and graded exams. These are plain data carriers; persistence lives
// in pkg/storage and generation in the server.
package guide

import "time"

// StudyGuide is the root record for a generated study guide.
type StudyGuide struct {
	ID        string         `json:"id"`
	Subject   string         `json:"subject"`
	Topic     string         `json:"topic"`
	Level     string         `json:"level,omitempty"`
	Model     string         `json:"model,omitempty"`
	Content   string         `json:"content"`
	Sections  []Section      `json:"sections,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitzero"`
}

// Section is one structured sub-document of a study guide. Sections are
// streamed to clients as they are assembled, before the full guide exists.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// GradeResult is the root record for a graded exam.
type GradeResult struct {
	ID                 string         `json:"id"`
	ExamName           string         `json:"exam_name"`
	Subject            string         `json:"subject,omitempty"`
	Model              string         `json:"model,omitempty"`
	TotalMarks         float64        `json:"total_marks"`
	TotalPossibleMarks float64        `json:"total_possible_marks"`
	Breakdown          []GradeLine    `json:"breakdown,omitempty"`
	Feedback           string         `json:"feedback,omitempty"`
	Metadata           map[string]any `json:"metadata,omitempty"`
	CreatedAt          time.Time      `json:"created_at,omitzero"`
}

// GradeLine is the per-question grading detail.
//
// The JSON field names here are wire-compatible with the gradeBreakdown
// entries carried inside streaming complete frames.
type GradeLine struct {
	Question      string  `json:"question"`
	MarksAwarded  float64 `json:"marksAwarded"`
	MarksPossible float64 `json:"marksPossible"`
	Comment       string  `json:"comment,omitempty"`
}
