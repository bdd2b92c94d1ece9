package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/rollbook/internal/app/models/dto"
	"github.com/yigit/rollbook/internal/pkg/apperrors"
	"github.com/yigit/rollbook/internal/pkg/logger"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError maps service errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && len(custom.Details) > 0 {
		detail = detail.WithDetails(custom.Details)
	}

	lgr := logger.FromContext(c.Request.Context())
	evt := lgr.Warn()
	if status >= http.StatusInternalServerError {
		detail = detail.WithSeverity(dto.ErrorSeverityCritical)
		evt = lgr.Error()
	} else if !apperrors.IsContractViolation(err) {
		detail = detail.WithSeverity(dto.ErrorSeverityWarning)
	}
	evt.Err(err).Int("status", status).Str("code", string(detail.Code)).Msg("Request failed")

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
	case errors.Is(err, apperrors.ErrCourseFull):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeCourseFull, "Course is full")
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeGradeLimitReached, "Grade limit reached for this student")
	case errors.Is(err, apperrors.ErrStudentNotEnrolled), errors.Is(err, apperrors.ErrNotEnrolled):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeStudentNotEnrolled, err.Error())
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error())
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleBindingError responds 400 with the failing fields of a request body
func HandleBindingError(c *gin.Context, err error) {
	detail := dto.HandleValidationError(err).WithSeverity(dto.ErrorSeverityWarning)
	logger.FromContext(c.Request.Context()).Warn().Err(err).Msg("Invalid request body")
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

var errPanic = errors.New("handler panicked")
