package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-api/internal/pkg/apperrors"
	"github.com/cohorttools/cohort-api/internal/pkg/logger"
)

// HandleAPIError maps domain errors to HTTP responses. Validation and auth
// failures short-circuit with their own messages; everything else becomes a
// generic 500 whose details are logged server-side, never exposed.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidPassword),
		errors.Is(err, apperrors.ErrInvalidID):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorMessage(err, "Validation failed")))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email already registered"))

	case errors.Is(err, apperrors.ErrUserNameAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username already taken"))

	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("User doesn't exist"))

	case errors.Is(err, apperrors.ErrIncorrectPassword):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Incorrect password"))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Token expired"))

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))

	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student not found"))

	case errors.Is(err, apperrors.ErrCohortNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Cohort not found"))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(errorMessage(err, "Resource not found")))

	default:
		logger.Error().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Err(err).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}

// errorMessage prefers the wrapped CustomError message over the fallback
func errorMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
