// Package server provides the streaming study-guide generation and exam
// grading server. It forwards prompts to an upstream LLM provider, translates
// the provider's streaming response into studyforge event frames, and
// enqueues finished records for async persistence via its worker pool.
package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/studyforgeco/studyforge/pkg/eventstream"
	"github.com/studyforgeco/studyforge/pkg/llm/provider"
	"github.com/studyforgeco/studyforge/pkg/storage"
	"github.com/studyforgeco/studyforge/server/worker"
)

// Server generates study guides and grades exams by streaming an upstream
// LLM response back to the client as studyforge event frames.
type Server struct {
	config     Config
	driver     storage.Driver
	workerPool *worker.Pool
	logger     *zap.Logger
	httpClient *http.Client
	server     *fiber.App
	provider   provider.Provider
}

// New creates a new Server.
// The driver is injected to handle async persistence of finished records.
// Returns an error if the configured provider type is not recognized.
func New(config Config, driver storage.Driver, publisher eventstream.Publisher, logger *zap.Logger) (*Server, error) {
	if config.ProviderType == "" {
		return nil, errors.New("provider type is required")
	}

	prov, err := provider.New(config.ProviderType)
	if err != nil {
		return nil, fmt.Errorf("could not create new provider: %w", err)
	}

	app := fiber.New(fiber.Config{
		// Disable startup message for cleaner logs
		DisableStartupMessage: true,
		// Enable streaming
		StreamRequestBody: true,
	})

	wp, err := worker.NewPool(&worker.Config{
		Driver:    driver,
		Publisher: publisher,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create worker pool: %w", err)
	}

	s := &Server{
		config:     config,
		driver:     driver,
		workerPool: wp,
		logger:     logger,
		server:     app,
		provider:   prov,
		httpClient: &http.Client{
			// LLM requests can be slow, especially for long study guides
			Timeout: 5 * time.Minute,
		},
	}

	app.Get("/ping", s.handlePing)
	app.Post("/v1/guides/generate", s.handleGenerate)
	app.Post("/v1/exams/grade", s.handleGrade)

	return s, nil
}

// Run starts the server on the configured listening address.
func (s *Server) Run() error {
	s.logger.Info("starting streaming server",
		zap.String("listen", s.config.ListenAddr),
		zap.String("upstream", s.config.UpstreamURL),
		zap.String("provider", s.config.ProviderType),
	)

	return s.server.Listen(s.config.ListenAddr)
}

// RunWithListener starts the server using the provided listener.
func (s *Server) RunWithListener(listener net.Listener) error {
	s.logger.Info("starting streaming server",
		zap.String("listen", listener.Addr().String()),
		zap.String("upstream", s.config.UpstreamURL),
		zap.String("provider", s.config.ProviderType),
	)

	return s.server.Listener(listener)
}

// Close gracefully shuts down the server and waits for the worker pool to drain.
func (s *Server) Close() error {
	s.workerPool.Close()
	return s.server.Shutdown()
}

func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.SendString("pong")
}
