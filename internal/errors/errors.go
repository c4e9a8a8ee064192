package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the code of the outermost AppError in the chain, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeValidationError = "VALIDATION_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeShapeMismatch   = "SHAPE_MISMATCH"
	CodeNoNumericData   = "NO_NUMERIC_DATA"
	CodeEmptyInput      = "EMPTY_INPUT"
	CodeDecodeError     = "DECODE_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func ValidationError(message string) *AppError {
	return New(CodeValidationError, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// ShapeMismatch reports a cross-field length or size mismatch in a payload.
func ShapeMismatch(message string) *AppError {
	return New(CodeShapeMismatch, message)
}

// NoNumericData reports that free-form input held no usable number.
func NoNumericData() *AppError {
	return New(CodeNoNumericData, "no numeric data found")
}

func EmptyInput(message string) *AppError {
	return New(CodeEmptyInput, message)
}

func DecodeError(message string) *AppError {
	return New(CodeDecodeError, message)
}

// HTTPStatus maps an error to the status code returned to clients.
// Only client-caused codes map to 400; everything else is a server fault.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case CodeShapeMismatch, CodeNoNumericData, CodeEmptyInput,
		CodeDecodeError, CodeInvalidInput, CodeValidationError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the reason string safe to show a client.
// Server faults never expose their cause chain.
func PublicMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
