package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserIDExists      = errors.New("user ID already exists")
	ErrPasswordSetupDone = errors.New("password has already been set up")
)

// Team errors
var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrAlreadyInTeam     = errors.New("user already belongs to a team")
	ErrTeamAlreadyExists = errors.New("team with this name already exists")
)

// Project errors
var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrInvalidGithubURL  = errors.New("invalid GitHub repository URL")
	ErrSubmissionsClosed = errors.New("submissions are currently disabled")
	ErrNotProjectOwner   = errors.New("project belongs to another user")
)

// Content errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrReportNotFound      = errors.New("report not found")
	ErrCertificateNotFound = errors.New("certificate not found")
)

// Is reports whether err matches target or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
