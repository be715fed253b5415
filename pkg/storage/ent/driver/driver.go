// Package entdriver implements the storage interfaces on top of the generated
// ent client. It is database-agnostic and embedded by the sqlite and postgres
// drivers.
package entdriver

import (
	"context"
	"errors"
	"fmt"

	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage"
	"github.com/studyforgeco/studyforge/pkg/storage/ent"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/graderesult"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/studyguide"
)

// EntDriver provides storage operations using an ent client.
type EntDriver struct {
	Client *ent.Client
}

// CreateGuide stores a study guide record.
func (ed *EntDriver) CreateGuide(ctx context.Context, g *guide.StudyGuide) (*guide.StudyGuide, error) {
	if g == nil {
		return nil, errors.New("cannot store nil study guide")
	}

	create := ed.Client.StudyGuide.Create().
		SetID(g.ID).
		SetSubject(g.Subject).
		SetTopic(g.Topic).
		SetContent(g.Content)

	if g.Level != "" {
		create.SetLevel(g.Level)
	}
	if g.Model != "" {
		create.SetModel(g.Model)
	}
	if len(g.Sections) > 0 {
		create.SetSections(g.Sections)
	}
	if g.Metadata != nil {
		create.SetMetadata(g.Metadata)
	}
	if !g.CreatedAt.IsZero() {
		create.SetCreatedAt(g.CreatedAt)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating study guide: %w", err)
	}

	return entGuideToGuide(saved), nil
}

// GetGuide retrieves a study guide by id.
func (ed *EntDriver) GetGuide(ctx context.Context, id string) (*guide.StudyGuide, error) {
	entGuide, err := ed.Client.StudyGuide.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.NotFoundError{Kind: "guide", ID: id}
		}
		return nil, fmt.Errorf("getting study guide: %w", err)
	}

	return entGuideToGuide(entGuide), nil
}

// QueryGuides lists study guides matching the query, newest first.
func (ed *EntDriver) QueryGuides(ctx context.Context, q storage.GuideQuery) ([]*guide.StudyGuide, error) {
	query := ed.Client.StudyGuide.Query()

	if q.Subject != "" {
		query.Where(studyguide.Subject(q.Subject))
	}
	if q.Level != "" {
		query.Where(studyguide.Level(q.Level))
	}
	if q.Limit > 0 {
		query.Limit(q.Limit)
	}
	if q.Offset > 0 {
		query.Offset(q.Offset)
	}

	entGuides, err := query.
		Order(ent.Desc(studyguide.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying study guides: %w", err)
	}

	guides := make([]*guide.StudyGuide, 0, len(entGuides))
	for _, eg := range entGuides {
		guides = append(guides, entGuideToGuide(eg))
	}
	return guides, nil
}

// DeleteGuide removes a study guide by id.
func (ed *EntDriver) DeleteGuide(ctx context.Context, id string) error {
	err := ed.Client.StudyGuide.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return storage.NotFoundError{Kind: "guide", ID: id}
		}
		return fmt.Errorf("deleting study guide: %w", err)
	}
	return nil
}

// CreateGrade stores a grade result record.
func (ed *EntDriver) CreateGrade(ctx context.Context, g *guide.GradeResult) (*guide.GradeResult, error) {
	if g == nil {
		return nil, errors.New("cannot store nil grade result")
	}

	create := ed.Client.GradeResult.Create().
		SetID(g.ID).
		SetExamName(g.ExamName).
		SetTotalMarks(g.TotalMarks).
		SetTotalPossibleMarks(g.TotalPossibleMarks)

	if g.Subject != "" {
		create.SetSubject(g.Subject)
	}
	if g.Model != "" {
		create.SetModel(g.Model)
	}
	if len(g.Breakdown) > 0 {
		create.SetBreakdown(g.Breakdown)
	}
	if g.Feedback != "" {
		create.SetFeedback(g.Feedback)
	}
	if g.Metadata != nil {
		create.SetMetadata(g.Metadata)
	}
	if !g.CreatedAt.IsZero() {
		create.SetCreatedAt(g.CreatedAt)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating grade result: %w", err)
	}

	return entGradeToGrade(saved), nil
}

// GetGrade retrieves a grade result by id.
func (ed *EntDriver) GetGrade(ctx context.Context, id string) (*guide.GradeResult, error) {
	entGrade, err := ed.Client.GradeResult.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.NotFoundError{Kind: "grade", ID: id}
		}
		return nil, fmt.Errorf("getting grade result: %w", err)
	}

	return entGradeToGrade(entGrade), nil
}

// QueryGrades lists grade results matching the query, newest first.
func (ed *EntDriver) QueryGrades(ctx context.Context, q storage.GradeQuery) ([]*guide.GradeResult, error) {
	query := ed.Client.GradeResult.Query()

	if q.Subject != "" {
		query.Where(graderesult.Subject(q.Subject))
	}
	if q.ExamName != "" {
		query.Where(graderesult.ExamName(q.ExamName))
	}
	if q.Limit > 0 {
		query.Limit(q.Limit)
	}
	if q.Offset > 0 {
		query.Offset(q.Offset)
	}

	entGrades, err := query.
		Order(ent.Desc(graderesult.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying grade results: %w", err)
	}

	grades := make([]*guide.GradeResult, 0, len(entGrades))
	for _, eg := range entGrades {
		grades = append(grades, entGradeToGrade(eg))
	}
	return grades, nil
}

// DeleteGrade removes a grade result by id.
func (ed *EntDriver) DeleteGrade(ctx context.Context, id string) error {
	err := ed.Client.GradeResult.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return storage.NotFoundError{Kind: "grade", ID: id}
		}
		return fmt.Errorf("deleting grade result: %w", err)
	}
	return nil
}

// Close closes the underlying ent client.
func (ed *EntDriver) Close() error {
	return ed.Client.Close()
}

func entGuideToGuide(eg *ent.StudyGuide) *guide.StudyGuide {
	return &guide.StudyGuide{
		ID:        eg.ID,
		Subject:   eg.Subject,
		Topic:     eg.Topic,
		Level:     eg.Level,
		Model:     eg.Model,
		Content:   eg.Content,
		Sections:  eg.Sections,
		Metadata:  eg.Metadata,
		CreatedAt: eg.CreatedAt,
	}
}

func entGradeToGrade(eg *ent.GradeResult) *guide.GradeResult {
	return &guide.GradeResult{
		ID:                 eg.ID,
		ExamName:           eg.ExamName,
		Subject:            eg.Subject,
		Model:              eg.Model,
		TotalMarks:         eg.TotalMarks,
		TotalPossibleMarks: eg.TotalPossibleMarks,
		Breakdown:          eg.Breakdown,
		Feedback:           eg.Feedback,
		Metadata:           eg.Metadata,
		CreatedAt:          eg.CreatedAt,
	}
}
