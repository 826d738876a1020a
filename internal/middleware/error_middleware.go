package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/pkg/apperrors"
	"github.com/forgecrew/workshophub/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses. Every handler
// funnels its failures through here so status codes and payload shape stay
// consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	var status int
	var errorDetail *dto.ErrorDetail

	var validationErrs validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &validationErrs):
		status = http.StatusBadRequest
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(describeValidationErrors(validationErrs))

	case errors.As(err, &syntaxErr), errors.As(err, &typeErr),
		errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		status = http.StatusBadRequest
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Malformed request body")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid user ID or password")

	case errors.Is(err, apperrors.ErrTokenExpired):
		status = http.StatusUnauthorized
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token has expired")

	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrTokenNotFound):
		status = http.StatusUnauthorized
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Authentication failed")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		status = http.StatusForbidden
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeForbidden, "You do not have permission to perform this action")

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrTeamNotFound,
		apperrors.ErrProjectNotFound,
		apperrors.ErrAttendanceNotFound,
		apperrors.ErrGalleryItemNotFound,
		apperrors.ErrReportNotFound,
		apperrors.ErrCertificateNotFound):
		status = http.StatusNotFound
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageFor(err, "Resource not found"))

	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists,
		apperrors.ErrUserIDExists,
		apperrors.ErrTeamAlreadyExists,
		apperrors.ErrAlreadyInTeam):
		status = http.StatusConflict
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, messageFor(err, "Resource already exists"))

	case errors.Is(err, apperrors.ErrInvalidGithubURL):
		status = http.StatusBadRequest
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A valid GitHub repository URL is required").
			WithField("githubUrl")

	case errors.Is(err, apperrors.ErrSubmissionsClosed):
		status = http.StatusForbidden
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeForbidden, "Project submissions are currently closed")

	case errors.Is(err, apperrors.ErrPasswordSetupDone):
		status = http.StatusBadRequest
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Password has already been set up")

	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrInvalidPassword,
		apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, messageFor(err, "Invalid request"))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		status = http.StatusInternalServerError
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(errorDetail))
}

// messageFor surfaces the sentinel or wrapped message to the client, falling
// back when the error text would be empty.
func messageFor(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

// describeValidationErrors flattens validator errors into field/rule pairs
func describeValidationErrors(errs validator.ValidationErrors) []map[string]string {
	out := make([]map[string]string, 0, len(errs))
	for _, fe := range errs {
		out = append(out, map[string]string{
			"field": fe.Field(),
			"rule":  fe.Tag(),
		})
	}
	return out
}
