// Package storage defines the persistence interfaces for studyforge records.
// Concrete drivers live in the sqlite, postgres and inmemory subpackages; the
// ent-backed ones share pkg/storage/ent/driver.
package storage

import (
	"context"

	"github.com/studyforgeco/studyforge/pkg/guide"
)

// GuideStore persists and retrieves generated study guides.
type GuideStore interface {
	CreateGuide(ctx context.Context, g *guide.StudyGuide) (*guide.StudyGuide, error)
	GetGuide(ctx context.Context, id string) (*guide.StudyGuide, error)
	QueryGuides(ctx context.Context, q GuideQuery) ([]*guide.StudyGuide, error)
	DeleteGuide(ctx context.Context, id string) error
}

// GradeStore persists and retrieves graded exams.
type GradeStore interface {
	CreateGrade(ctx context.Context, g *guide.GradeResult) (*guide.GradeResult, error)
	GetGrade(ctx context.Context, id string) (*guide.GradeResult, error)
	QueryGrades(ctx context.Context, q GradeQuery) ([]*guide.GradeResult, error)
	DeleteGrade(ctx context.Context, id string) error
}

// Driver is the full persistence surface shared by the servers.
type Driver interface {
	GuideStore
	GradeStore

	// Close closes the store and releases any resources.
	Close() error
}

// GuideQuery defines filter parameters for listing study guides. Zero-value
// fields are ignored. Results are ordered newest first.
type GuideQuery struct {
	Subject string
	Level   string
	Limit   int
	Offset  int
}

// GradeQuery defines filter parameters for listing grade results.
type GradeQuery struct {
	Subject  string
	ExamName string
	Limit    int
	Offset   int
}
