// Package backfill republishes persisted records to the event stream. It is
// used to rebuild downstream consumers after a topic is lost or a new one is
// provisioned: every stored study guide and grade result is re-emitted as a
// persisted-record event.
package backfill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studyforgeco/studyforge/pkg/eventstream"
	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage"
)

// batchSize is the page size used when scanning stored records.
const batchSize = 100

// Options configures backfill behavior.
type Options struct {
	DryRun  bool
	Verbose bool

	// Subject restricts the backfill to records with a matching subject.
	Subject string
}

// Backfiller re-emits stored records as persisted-record events.
type Backfiller struct {
	driver    storage.Driver
	publisher eventstream.Publisher
	options   Options
}

// NewBackfiller creates a Backfiller over the given store and publisher.
func NewBackfiller(driver storage.Driver, publisher eventstream.Publisher, opts Options) *Backfiller {
	return &Backfiller{
		driver:    driver,
		publisher: publisher,
		options:   opts,
	}
}

// Run scans all stored records and republishes one event per record.
func (b *Backfiller) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := b.backfillGuides(ctx, result); err != nil {
		return nil, err
	}
	if err := b.backfillGrades(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (b *Backfiller) backfillGuides(ctx context.Context, result *Result) error {
	for offset := 0; ; offset += batchSize {
		guides, err := b.driver.QueryGuides(ctx, storage.GuideQuery{
			Subject: b.options.Subject,
			Limit:   batchSize,
			Offset:  offset,
		})
		if err != nil {
			return fmt.Errorf("querying study guides: %w", err)
		}
		if len(guides) == 0 {
			return nil
		}

		for _, g := range guides {
			result.Guides++
			event := guideEvent(g)

			if b.options.Verbose {
				fmt.Printf("  guide %s subject=%s topic=%s\n", g.ID, g.Subject, g.Topic)
			}
			if b.options.DryRun {
				continue
			}

			if err := b.publisher.PublishRecord(ctx, event); err != nil {
				result.Failed++
				continue
			}
			result.Published++
		}

		if len(guides) < batchSize {
			return nil
		}
	}
}

func (b *Backfiller) backfillGrades(ctx context.Context, result *Result) error {
	for offset := 0; ; offset += batchSize {
		grades, err := b.driver.QueryGrades(ctx, storage.GradeQuery{
			Subject: b.options.Subject,
			Limit:   batchSize,
			Offset:  offset,
		})
		if err != nil {
			return fmt.Errorf("querying grade results: %w", err)
		}
		if len(grades) == 0 {
			return nil
		}

		for _, g := range grades {
			result.Grades++
			event := gradeEvent(g)

			if b.options.Verbose {
				fmt.Printf("  grade %s exam=%s\n", g.ID, g.ExamName)
			}
			if b.options.DryRun {
				continue
			}

			if err := b.publisher.PublishRecord(ctx, event); err != nil {
				result.Failed++
				continue
			}
			result.Published++
		}

		if len(grades) < batchSize {
			return nil
		}
	}
}

// Backfilled events reconstruct request metadata from the stored record: the
// original request timings are gone, so StartedAt and CompletedAt both carry
// the record's creation time.

func guideEvent(g *guide.StudyGuide) *eventstream.RecordPersistedEvent {
	return &eventstream.RecordPersistedEvent{
		SchemaVersion: eventstream.SchemaVersionV1,
		EventType:     eventstream.EventTypeGuidePersisted,
		EventID:       uuid.NewString(),
		EmittedAt:     time.Now().UTC(),
		RecordID:      g.ID,
		Source: eventstream.EventSource{
			Subject:  g.Subject,
			Level:    g.Level,
			Provider: "backfill",
			Model:    g.Model,
		},
		RequestMeta: eventstream.RecordedRequest{
			StartedAt:   g.CreatedAt,
			CompletedAt: g.CreatedAt,
			Streaming:   false,
		},
	}
}

func gradeEvent(g *guide.GradeResult) *eventstream.RecordPersistedEvent {
	return &eventstream.RecordPersistedEvent{
		SchemaVersion: eventstream.SchemaVersionV1,
		EventType:     eventstream.EventTypeGradePersisted,
		EventID:       uuid.NewString(),
		EmittedAt:     time.Now().UTC(),
		RecordID:      g.ID,
		Source: eventstream.EventSource{
			Subject:  g.Subject,
			Provider: "backfill",
			Model:    g.Model,
		},
		RequestMeta: eventstream.RecordedRequest{
			StartedAt:   g.CreatedAt,
			CompletedAt: g.CreatedAt,
			Streaming:   false,
		},
	}
}
