package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Authentication errors
	CodeUnauthenticated        ErrorCode = "UNAUTHENTICATED"
	CodeInvalidSession         ErrorCode = "INVALID_SESSION"
	CodeSessionExpired         ErrorCode = "SESSION_EXPIRED"
	CodeUserNotFound           ErrorCode = "USER_NOT_FOUND"
	CodeInvalidExternalSession ErrorCode = "INVALID_EXTERNAL_SESSION"

	// Resource errors
	CodeImageNotFound   ErrorCode = "IMAGE_NOT_FOUND"
	CodeFolderNotFound  ErrorCode = "FOLDER_NOT_FOUND"
	CodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"

	// Reading session errors
	CodeNoImages        ErrorCode = "NO_IMAGES"
	CodeInactiveSession ErrorCode = "INACTIVE_SESSION"
	CodeNotInProgress   ErrorCode = "SESSION_NOT_IN_PROGRESS"
	CodeNotPaused       ErrorCode = "SESSION_NOT_PAUSED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a detail value that the error handler exposes to clients.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err is a DomainError carrying code.
func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnauthenticatedError() *DomainError {
	return NewError(CodeUnauthenticated, "Not authenticated", nil)
}

func NewInvalidSessionError() *DomainError {
	return NewError(CodeInvalidSession, "Invalid session", nil)
}

func NewSessionExpiredError() *DomainError {
	return NewError(CodeSessionExpired, "Session expired", nil)
}

func NewUserNotFoundError() *DomainError {
	return NewError(CodeUserNotFound, "User not found", nil)
}

func NewInvalidExternalSessionError(cause error) *DomainError {
	return NewError(CodeInvalidExternalSession, "Invalid session_id", cause)
}

func NewImageNotFoundError(imageID string) *DomainError {
	return NewError(CodeImageNotFound, "Image not found", nil).WithContext("image_id", imageID)
}

func NewFolderNotFoundError(folderID string) *DomainError {
	return NewError(CodeFolderNotFound, "Folder not found", nil).WithContext("folder_id", folderID)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, "Session not found", nil).WithContext("session_id", sessionID)
}

func NewNoImagesError() *DomainError {
	return NewError(CodeNoImages, "No images available. Please upload images first.", nil)
}

func NewInactiveSessionError(status SessionStatus) *DomainError {
	return NewError(CodeInactiveSession, "Session is not active", nil).WithContext("status", string(status))
}

func NewNotInProgressError(status SessionStatus) *DomainError {
	return NewError(CodeNotInProgress, "Session is not in progress", nil).WithContext("status", string(status))
}

func NewNotPausedError(status SessionStatus) *DomainError {
	return NewError(CodeNotPaused, "Session is not paused", nil).WithContext("status", string(status))
}
