// Package inmemory provides a map-backed storage driver used by tests and by
// the servers when no database is configured.
package inmemory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage"
)

// Driver implements storage.Driver using in-memory maps.
type Driver struct {
	mu     sync.RWMutex
	guides map[string]*guide.StudyGuide
	grades map[string]*guide.GradeResult
}

// NewDriver creates a new in-memory store.
func NewDriver() *Driver {
	return &Driver{
		guides: make(map[string]*guide.StudyGuide),
		grades: make(map[string]*guide.GradeResult),
	}
}

// CreateGuide stores a study guide.
func (d *Driver) CreateGuide(_ context.Context, g *guide.StudyGuide) (*guide.StudyGuide, error) {
	if g == nil {
		return nil, errors.New("cannot store nil study guide")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.guides[g.ID] = g
	return g, nil
}

// GetGuide retrieves a study guide by id.
func (d *Driver) GetGuide(_ context.Context, id string) (*guide.StudyGuide, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	g, ok := d.guides[id]
	if !ok {
		return nil, storage.NotFoundError{Kind: "guide", ID: id}
	}
	return g, nil
}

// QueryGuides lists study guides matching the query, newest first.
func (d *Driver) QueryGuides(_ context.Context, q storage.GuideQuery) ([]*guide.StudyGuide, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var results []*guide.StudyGuide
	for _, g := range d.guides {
		if q.Subject != "" && g.Subject != q.Subject {
			continue
		}
		if q.Level != "" && g.Level != q.Level {
			continue
		}
		results = append(results, g)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	return paginate(results, q.Offset, q.Limit), nil
}

// DeleteGuide removes a study guide by id.
func (d *Driver) DeleteGuide(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.guides[id]; !ok {
		return storage.NotFoundError{Kind: "guide", ID: id}
	}
	delete(d.guides, id)
	return nil
}

// CreateGrade stores a grade result.
func (d *Driver) CreateGrade(_ context.Context, g *guide.GradeResult) (*guide.GradeResult, error) {
	if g == nil {
		return nil, errors.New("cannot store nil grade result")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.grades[g.ID] = g
	return g, nil
}

// GetGrade retrieves a grade result by id.
func (d *Driver) GetGrade(_ context.Context, id string) (*guide.GradeResult, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	g, ok := d.grades[id]
	if !ok {
		return nil, storage.NotFoundError{Kind: "grade", ID: id}
	}
	return g, nil
}

// QueryGrades lists grade results matching the query, newest first.
func (d *Driver) QueryGrades(_ context.Context, q storage.GradeQuery) ([]*guide.GradeResult, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var results []*guide.GradeResult
	for _, g := range d.grades {
		if q.Subject != "" && g.Subject != q.Subject {
			continue
		}
		if q.ExamName != "" && g.ExamName != q.ExamName {
			continue
		}
		results = append(results, g)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	return paginate(results, q.Offset, q.Limit), nil
}

// DeleteGrade removes a grade result by id.
func (d *Driver) DeleteGrade(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.grades[id]; !ok {
		return storage.NotFoundError{Kind: "grade", ID: id}
	}
	delete(d.grades, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (d *Driver) Close() error {
	return nil
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
