package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by the pipeline stage that raises them

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound

	// Payload errors - the provider answered but the content is unusable
	ErrorTypeShapeValidation
	ErrorTypeDataMapping

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeDatabase
	ErrorTypeExternalAPI

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeShapeValidation:
		return "SHAPE_VALIDATION_ERROR"
	case ErrorTypeDataMapping:
		return "DATA_MAPPING_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across the code base
const (
	ValidationError      = ErrorTypeValidation
	NotFoundError        = ErrorTypeNotFound
	ShapeValidationError = ErrorTypeShapeValidation
	DataMappingError     = ErrorTypeDataMapping
	DatabaseError        = ErrorTypeDatabase
	ExternalAPIError     = ErrorTypeExternalAPI
	ConfigurationError   = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// Payload Error Constructors
func NewShapeValidationError(message string, cause error) *AppError {
	return Wrap(ShapeValidationError, message, cause)
}

func NewDataMappingError(message string, cause error) *AppError {
	return Wrap(DataMappingError, message, cause)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the outermost AppError in the chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// hasType reports whether any AppError in the chain carries the given type.
func hasType(err error, errorType ErrorType) bool {
	for err != nil {
		var appErr *AppError
		if !stderrors.As(err, &appErr) {
			return false
		}
		if appErr.Type == errorType {
			return true
		}
		err = appErr.Cause
	}
	return false
}

func IsValidationError(err error) bool {
	return hasType(err, ValidationError)
}

func IsNotFoundError(err error) bool {
	return hasType(err, NotFoundError)
}

func IsShapeValidationError(err error) bool {
	return hasType(err, ShapeValidationError)
}

func IsDataMappingError(err error) bool {
	return hasType(err, DataMappingError)
}

func IsDatabaseError(err error) bool {
	return hasType(err, DatabaseError)
}

func IsExternalAPIError(err error) bool {
	return hasType(err, ExternalAPIError)
}

func IsConfigurationError(err error) bool {
	return hasType(err, ConfigurationError)
}
