package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/studyforgeco/studyforge/pkg/llm"
	"github.com/studyforgeco/studyforge/pkg/storage"
)

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// handleStats returns record counts across both stores.
func (s *Server) handleStats(c *fiber.Ctx) error {
	ctx := c.Context()

	guides, err := s.storer.QueryGuides(ctx, storage.GuideQuery{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "failed to list study guides"})
	}

	grades, err := s.storer.QueryGrades(ctx, storage.GradeQuery{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "failed to list grade results"})
	}

	return c.JSON(map[string]any{
		"guide_count": len(guides),
		"grade_count": len(grades),
	})
}

// handleListGuides returns stored study guides, newest first. Supports
// subject, level, limit and offset query parameters.
func (s *Server) handleListGuides(c *fiber.Ctx) error {
	query := storage.GuideQuery{
		Subject: c.Query("subject"),
		Level:   c.Query("level"),
	}

	var err error
	query.Limit, query.Offset, err = paginationParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(llm.ErrorResponse{Error: err.Error()})
	}

	guides, err := s.storer.QueryGuides(c.Context(), query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "failed to list study guides"})
	}

	return c.JSON(map[string]any{
		"count":  len(guides),
		"guides": guides,
	})
}

// handleGetGuide returns a single study guide by id.
func (s *Server) handleGetGuide(c *fiber.Ctx) error {
	guide, err := s.storer.GetGuide(c.Context(), c.Params("id"))
	if err != nil {
		if storage.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(llm.ErrorResponse{Error: "study guide not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "failed to get study guide"})
	}

	return c.JSON(guide)
}

// handleDeleteGuide removes a study guide by id.
func (s *Server) handleDeleteGuide(c *fiber.Ctx) error {
	if err := s.storer.DeleteGuide(c.Context(), c.Params("id")); err != nil {
		if storage.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(llm.ErrorResponse{Error: "study guide not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "failed to delete study guide"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// handleListGrades returns stored grade results, newest first. Supports
// subject, exam_name, limit and offset query parameters.
func (s *Server) handleListGrades(c *fiber.Ctx) error {
	query := storage.GradeQuery{
		Subject:  c.Query("subject"),
		ExamName: c.Query("exam_name"),
	}

	var err error
	query.Limit, query.Offset, err = paginationParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(llm.ErrorResponse{Error: err.Error()})
	}

	grades, err := s.storer.QueryGrades(c.Context(), query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "failed to list grade results"})
	}

	return c.JSON(map[string]any{
		"count":  len(grades),
		"grades": grades,
	})
}

// handleGetGrade returns a single grade result by id.
func (s *Server) handleGetGrade(c *fiber.Ctx) error {
	grade, err := s.storer.GetGrade(c.Context(), c.Params("id"))
	if err != nil {
		if storage.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(llm.ErrorResponse{Error: "grade result not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "failed to get grade result"})
	}

	return c.JSON(grade)
}

// handleDeleteGrade removes a grade result by id.
func (s *Server) handleDeleteGrade(c *fiber.Ctx) error {
	if err := s.storer.DeleteGrade(c.Context(), c.Params("id")); err != nil {
		if storage.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(llm.ErrorResponse{Error: "grade result not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "failed to delete grade result"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// paginationParams parses the limit and offset query parameters.
func paginationParams(c *fiber.Ctx) (limit, offset int, err error) {
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return 0, 0, fiber.NewError(fiber.StatusBadRequest, "limit must be a non-negative integer")
		}
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, fiber.NewError(fiber.StatusBadRequest, "offset must be a non-negative integer")
		}
	}
	return limit, offset, nil
}
