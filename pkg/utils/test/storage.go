package testutils

import (
	"context"
	"fmt"

	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage"
	"github.com/studyforgeco/studyforge/pkg/storage/inmemory"
)

// FailingDriver wraps the in-memory driver and fails configurable operations.
type FailingDriver struct {
	*inmemory.Driver

	// FailCreate causes CreateGuide and CreateGrade to return an error.
	FailCreate bool
}

// NewFailingDriver creates a new failing storage driver.
func NewFailingDriver() *FailingDriver {
	return &FailingDriver{Driver: inmemory.NewDriver()}
}

func (d *FailingDriver) CreateGuide(ctx context.Context, g *guide.StudyGuide) (*guide.StudyGuide, error) {
	if d.FailCreate {
		return nil, fmt.Errorf("mock create failure")
	}
	return d.Driver.CreateGuide(ctx, g)
}

func (d *FailingDriver) CreateGrade(ctx context.Context, g *guide.GradeResult) (*guide.GradeResult, error) {
	if d.FailCreate {
		return nil, fmt.Errorf("mock create failure")
	}
	return d.Driver.CreateGrade(ctx, g)
}

var _ storage.Driver = (*FailingDriver)(nil)
