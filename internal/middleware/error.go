package middleware

import (
	"errors"
	"net/http"

	"homework-grader/internal/domain"
	"homework-grader/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every non-validation error
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse lists every failed field check of a request
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

var statusByCode = map[domain.ErrorCode]int{
	domain.CodeNotFound:        http.StatusNotFound,
	domain.CodeReportNotFound:  http.StatusNotFound,
	domain.CodeInvalidInput:    http.StatusBadRequest,
	domain.CodeValidation:      http.StatusBadRequest,
	domain.CodeMissingField:    http.StatusBadRequest,
	domain.CodeInvalidFormat:   http.StatusBadRequest,
	domain.CodeOutOfRange:      http.StatusBadRequest,
	domain.CodeUnauthorized:    http.StatusUnauthorized,
	domain.CodeLLMServiceError: http.StatusServiceUnavailable,
	domain.CodeCacheError:      http.StatusServiceUnavailable,
}

func statusFor(code domain.ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorHandler is installed as fiber.Config.ErrorHandler. Validation errors,
// domain errors and fiber errors each get their own response shape; anything
// else is reported as an opaque 500.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(zap.String("method", c.Method()), zap.String("path", c.Path()))

		var verrs domain.ValidationErrors
		var domainErr *domain.DomainError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &verrs):
			log.Warn("Request validation failed", zap.Int("error_count", len(verrs)))
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Status:  http.StatusBadRequest,
				Errors:  verrs,
			})

		case errors.As(err, &domainErr):
			status := statusFor(domainErr.Code)
			fields := []zap.Field{zap.String("code", string(domainErr.Code)), zap.Int("status", status)}
			if domainErr.Cause != nil {
				fields = append(fields, zap.Error(domainErr.Cause))
			}
			if status >= http.StatusInternalServerError {
				log.Error(domainErr.Message, fields...)
			} else {
				log.Info(domainErr.Message, fields...)
			}
			resp := ErrorResponse{Code: string(domainErr.Code), Message: domainErr.Message, Status: status}
			if len(domainErr.Context) > 0 {
				resp.Details = domainErr.Context
			}
			return c.Status(status).JSON(resp)

		case errors.As(err, &fiberErr):
			log.Warn("HTTP error", zap.Int("status", fiberErr.Code), zap.String("message", fiberErr.Message))
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    "HTTP_ERROR",
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			})
		}

		log.Error("Unhandled error", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		})
	}
}
