package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courseplan/courseplan/internal/app/models/dto"
	"github.com/courseplan/courseplan/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Controllers
// delegate every non-binding error here so status codes and error
// envelopes stay consistent across endpoints.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		))

	case errors.Is(err, apperrors.ErrNoCourseData):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No course data loaded. Upload course data first."),
		))

	case errors.Is(err, apperrors.ErrEmptyCourseData):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Course data contains no usable records"),
		))

	case errors.Is(err, apperrors.ErrNoInterests):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Interest text is required").WithField("interests"),
		))

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		))

	case errors.Is(err, apperrors.ErrRelayNotConfigured):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeRelayNotConfigured, "Server configuration error: API key missing."),
		))

	case errors.Is(err, apperrors.ErrExternalService), errors.Is(err, apperrors.ErrMalformedResponse):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "External service request failed"),
		))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}
