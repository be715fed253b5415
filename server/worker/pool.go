// Package worker provides an asynchronous worker pool for persisting finished
// study guides and grade results using the provided storage.Driver, and for
// publishing record events via the provided eventstream.Publisher.
//
// The pool decouples persistence from the server's streaming hot path so that
// the client sees the complete frame as soon as generation finishes.
package worker

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studyforgeco/studyforge/pkg/eventstream"
	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage"
)

var (
	defaultNumWorkers   uint = 3
	defaultJobQueueSize uint = 256
)

// Job kinds.
const (
	KindGuide = "guide"
	KindGrade = "grade"
)

// Job is a unit of work for the worker pool to execute against.
// Exactly one of Guide or Grade is set, matching Kind.
type Job struct {
	Kind  string
	Guide *guide.StudyGuide
	Grade *guide.GradeResult

	// Provider is the upstream provider name, carried into the record event.
	Provider string

	// Path is the request path that produced the record.
	Path string

	// StartedAt and CompletedAt bound the generation request.
	StartedAt   time.Time
	CompletedAt time.Time
}

// Config is the configuration options for the worker pool.
type Config struct {
	// Driver is the storage backend for persisting records.
	Driver storage.Driver

	// Publisher is the optional eventstream publisher for record events.
	// If nil, no events are published.
	Publisher eventstream.Publisher

	// NumWorkers is the number of background workers in the pool.
	NumWorkers uint

	// QueueSize is the capacity of the buffered job channel (defaults to 256).
	QueueSize uint

	// Logger is the provided zap logger
	Logger *zap.Logger
}

// Pool processes persistence jobs asynchronously via a worker pool.
type Pool struct {
	config *Config
	queue  chan Job
	wg     sync.WaitGroup
	logger *zap.Logger
}

// NewPool creates a new Pool and starts its worker goroutines.
func NewPool(c *Config) (*Pool, error) {
	if c.NumWorkers == 0 {
		c.NumWorkers = defaultNumWorkers
	}

	if c.QueueSize == 0 {
		c.QueueSize = defaultJobQueueSize
	}

	if c.NumWorkers > uint(math.MaxInt) {
		return nil, fmt.Errorf("NumWorkers %d exceeds max int", c.NumWorkers)
	}

	wp := &Pool{
		config: c,
		queue:  make(chan Job, c.QueueSize),
		logger: c.Logger,
	}

	wp.wg.Add(int(c.NumWorkers))
	for i := range c.NumWorkers {
		go wp.worker(i)
	}

	return wp, nil
}

// Enqueue submits a job for processing by the worker pool.
// Returns true if enqueued, false if the queue is full, resulting in the job being dropped
func (p *Pool) Enqueue(job Job) bool {
	select {
	case p.queue <- job:
		p.logger.Debug("job queued",
			zap.String("kind", job.Kind),
			zap.String("provider", job.Provider),
		)
		return true
	default:
		p.logger.Error("job not queued, queue full, job dropped",
			zap.String("kind", job.Kind),
			zap.String("provider", job.Provider),
		)
		return false
	}
}

// Close signals workers to stop and waits for in-flight jobs to drain.
// Call this during graceful shutdown after the HTTP server has stopped.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
}

// worker is the inner worker thread that continuously pulls jobs off the jobs queue
func (p *Pool) worker(id uint) {
	defer p.wg.Done()
	p.logger.Debug("worker started", zap.Uint("worker_id", id))

	for job := range p.queue {
		p.processJob(job)
	}

	p.logger.Debug("storage worker stopped", zap.Uint("worker_id", id))
}

// processJob persists the record and publishes the matching record event.
func (p *Pool) processJob(job Job) {
	ctx := context.Background()

	recordID, err := p.storeRecord(ctx, job)
	if err != nil {
		p.logger.Error("async record storage failed",
			zap.String("kind", job.Kind),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("record stored",
		zap.String("kind", job.Kind),
		zap.String("id", recordID),
	)

	if p.config.Publisher != nil {
		p.publishRecordEvent(ctx, job, recordID)
	}
}

// storeRecord persists the job's record and returns the record id.
func (p *Pool) storeRecord(ctx context.Context, job Job) (string, error) {
	switch job.Kind {
	case KindGuide:
		if job.Guide == nil {
			return "", fmt.Errorf("guide job has nil guide")
		}
		if job.Guide.ID == "" {
			job.Guide.ID = uuid.NewString()
		}
		if job.Guide.CreatedAt.IsZero() {
			job.Guide.CreatedAt = time.Now().UTC()
		}
		stored, err := p.config.Driver.CreateGuide(ctx, job.Guide)
		if err != nil {
			return "", fmt.Errorf("storing study guide: %w", err)
		}
		return stored.ID, nil

	case KindGrade:
		if job.Grade == nil {
			return "", fmt.Errorf("grade job has nil grade result")
		}
		if job.Grade.ID == "" {
			job.Grade.ID = uuid.NewString()
		}
		if job.Grade.CreatedAt.IsZero() {
			job.Grade.CreatedAt = time.Now().UTC()
		}
		stored, err := p.config.Driver.CreateGrade(ctx, job.Grade)
		if err != nil {
			return "", fmt.Errorf("storing grade result: %w", err)
		}
		return stored.ID, nil

	default:
		return "", fmt.Errorf("unknown job kind %q", job.Kind)
	}
}

// publishRecordEvent publishes a record event for the persisted job.
// Errors are logged but not returned to avoid failing the main storage operation.
func (p *Pool) publishRecordEvent(ctx context.Context, job Job, recordID string) {
	event := &eventstream.RecordPersistedEvent{
		SchemaVersion: eventstream.SchemaVersionV1,
		EventID:       uuid.NewString(),
		EmittedAt:     time.Now().UTC(),
		RecordID:      recordID,
		Source: eventstream.EventSource{
			Provider: job.Provider,
		},
		RequestMeta: eventstream.RecordedRequest{
			Path:        job.Path,
			StartedAt:   job.StartedAt,
			CompletedAt: job.CompletedAt,
			DurationMs:  job.CompletedAt.Sub(job.StartedAt).Milliseconds(),
			Streaming:   true,
		},
	}

	switch job.Kind {
	case KindGuide:
		event.EventType = eventstream.EventTypeGuidePersisted
		event.Source.Subject = job.Guide.Subject
		event.Source.Level = job.Guide.Level
		event.Source.Model = job.Guide.Model
	case KindGrade:
		event.EventType = eventstream.EventTypeGradePersisted
		event.Source.Subject = job.Grade.Subject
		event.Source.Model = job.Grade.Model
	}

	if err := p.config.Publisher.PublishRecord(ctx, event); err != nil {
		p.logger.Warn("failed to publish record event",
			zap.String("kind", job.Kind),
			zap.String("id", recordID),
			zap.Error(err),
		)
	}
}
