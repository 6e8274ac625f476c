package handler

import (
	"homework-grader/internal/domain"
	"homework-grader/internal/dto"
	"homework-grader/internal/logger"
	"homework-grader/internal/middleware"
	"homework-grader/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PracticeHandler handles practice generation requests
type PracticeHandler struct {
	service service.PracticeService
}

func NewPracticeHandler(service service.PracticeService) *PracticeHandler {
	return &PracticeHandler{service: service}
}

// GeneratePractice godoc
// @Summary Generate a practice set
// @Description Generates exercises with the LLM and returns those that pass the quality check
// @Tags practice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PracticeRequest true "Practice parameters"
// @Success 200 {object} dto.PracticeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /practice/generate [post]
func (h *PracticeHandler) GeneratePractice(c *fiber.Ctx) error {
	var req dto.PracticeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", err.Error())}
	}

	userID, _ := c.Locals(middleware.UserIDKey).(string)
	logger.Get().Info("Practice generation requested",
		zap.String("user_id", userID),
		zap.String("subject", req.Subject),
		zap.String("topic", req.Topic),
		zap.Int("count", req.Count))

	resp, err := h.service.GeneratePractice(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
