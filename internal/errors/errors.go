package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeParsing  ErrorType = "PARSING"
	ErrTypeStorage  ErrorType = "STORAGE"
	ErrTypeNotFound ErrorType = "NOT_FOUND"
	ErrTypeConfig   ErrorType = "CONFIG"
	ErrTypeExport   ErrorType = "EXPORT"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates an error for a missing input file
func NewNotFoundError(path string, cause error) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("file not found: %s", path), cause).
		WithContext("path", path)
}

// NewParsingError creates an error for unreadable source data
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError creates an error for a failed file operation
func NewStorageError(operation string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, fmt.Sprintf("file operation failed: %s", operation), cause).
		WithContext("operation", operation)
}

// NewExportError creates an error for a failed report/export write
func NewExportError(path string, cause error) *AppError {
	return NewAppError(ErrTypeExport, fmt.Sprintf("export failed: %s", path), cause).
		WithContext("path", path)
}

// IsType reports whether err is (or wraps) an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}
