package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types
var (
	// ErrInvalidPushToken is returned when a token fails the provider's token check.
	ErrInvalidPushToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PUSH_TOKEN",
		"Invalid Expo push token",
	)

	// ErrInvalidChunkSize is a configuration error: chunk sizes must be positive.
	ErrInvalidChunkSize = NewBaseError(
		http.StatusInternalServerError,
		"INVALID_CHUNK_SIZE",
		"chunk size must be positive",
	)

	ErrSendNotificationFailed = NewBaseError(
		http.StatusInternalServerError,
		"SEND_NOTIFICATION_FAILED",
		"Failed to send notification",
	)

	ErrBroadcastFailed = NewBaseError(
		http.StatusInternalServerError,
		"BROADCAST_FAILED",
		"Failed to broadcast",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// DeliveryError records the failure of a single chunk submission.
// It is collected into a dispatch report and never surfaces to HTTP callers.
type DeliveryError struct {
	ChunkIndex int
	Size       int
	Cause      error
}

// NewDeliveryError creates a delivery error for the chunk at index.
func NewDeliveryError(index, size int, cause error) *DeliveryError {
	return &DeliveryError{
		ChunkIndex: index,
		Size:       size,
		Cause:      cause,
	}
}

// Error implements the error interface
func (e *DeliveryError) Error() string {
	return fmt.Sprintf("chunk %d (%d messages): %v", e.ChunkIndex, e.Size, e.Cause)
}

// Unwrap exposes the provider error to errors.Is and errors.As
func (e *DeliveryError) Unwrap() error {
	return e.Cause
}
