package handler

import (
	"homework-grader/internal/domain"
	"homework-grader/internal/dto"
	"homework-grader/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QualityHandler handles exercise quality HTTP requests
type QualityHandler struct {
	service service.QualityService
}

// NewQualityHandler creates a new QualityHandler instance
func NewQualityHandler(service service.QualityService) *QualityHandler {
	return &QualityHandler{service: service}
}

func parseBatch(c *fiber.Ctx) (*dto.ExerciseBatchRequest, error) {
	var req dto.ExerciseBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("body", err.Error())}
	}
	return &req, nil
}

// RemoveDuplicates godoc
// @Summary Remove near-duplicate exercises
// @Description Keeps the first exercise of every group of near-duplicates, in input order
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body dto.ExerciseBatchRequest true "Exercises"
// @Success 200 {object} dto.DedupResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /exercises/dedup [post]
func (h *QualityHandler) RemoveDuplicates(c *fiber.Ctx) error {
	req, err := parseBatch(c)
	if err != nil {
		return err
	}
	resp, err := h.service.RemoveDuplicates(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EvaluateDifficulty godoc
// @Summary Estimate exercise difficulty
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body dto.ExerciseBatchRequest true "Exercises"
// @Success 200 {object} dto.DifficultyResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /exercises/difficulty [post]
func (h *QualityHandler) EvaluateDifficulty(c *fiber.Ctx) error {
	req, err := parseBatch(c)
	if err != nil {
		return err
	}
	resp, err := h.service.EvaluateDifficulty(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GenerateReport godoc
// @Summary Generate a quality report
// @Description Runs duplicate detection and difficulty analysis and stores the report
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body dto.ExerciseBatchRequest true "Exercises"
// @Success 200 {object} dto.QualityReportResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /exercises/quality-report [post]
func (h *QualityHandler) GenerateReport(c *fiber.Ctx) error {
	req, err := parseBatch(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GenerateReport(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetReport godoc
// @Summary Get a stored quality report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID (ULID)"
// @Success 200 {object} dto.QualityReportResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quality-reports/{id} [get]
func (h *QualityHandler) GetReport(c *fiber.Ctx) error {
	resp, err := h.service.GetReport(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
