package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ShapeValidationError, "unexpected API response shape")
			},
			expected: "SHAPE_VALIDATION_ERROR: unexpected API response shape",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return Wrap(DatabaseError, "failed to insert observation", cause)
			},
			expected: "DATABASE_ERROR: failed to insert observation (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("i/o timeout")
	err := Wrap(ExternalAPIError, "request failed", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, New(NotFoundError, "missing").Unwrap())
}

func TestSpecificErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		constructor  func() *AppError
		expectedType ErrorType
		expectedMsg  string
		hasCause     bool
	}{
		{
			name:         "NewValidationError",
			constructor:  func() *AppError { return NewValidationError("query cannot be empty") },
			expectedType: ValidationError,
			expectedMsg:  "query cannot be empty",
		},
		{
			name: "NewShapeValidationError",
			constructor: func() *AppError {
				return NewShapeValidationError("missing current section", fmt.Errorf("schema"))
			},
			expectedType: ShapeValidationError,
			expectedMsg:  "missing current section",
			hasCause:     true,
		},
		{
			name: "NewDataMappingError",
			constructor: func() *AppError {
				return NewDataMappingError("latitude is not a number", fmt.Errorf("parse"))
			},
			expectedType: DataMappingError,
			expectedMsg:  "latitude is not a number",
			hasCause:     true,
		},
		{
			name:         "NewExternalAPIError",
			constructor:  func() *AppError { return NewExternalAPIError("weatherstack API error", nil) },
			expectedType: ExternalAPIError,
			expectedMsg:  "weatherstack API error",
		},
		{
			name: "NewDatabaseError",
			constructor: func() *AppError {
				return NewDatabaseError("failed to prune", fmt.Errorf("connection lost"))
			},
			expectedType: DatabaseError,
			expectedMsg:  "failed to prune",
			hasCause:     true,
		},
		{
			name:         "NewConfigurationError",
			constructor:  func() *AppError { return NewConfigurationError("WEATHERSTACK_API_KEY is required", nil) },
			expectedType: ConfigurationError,
			expectedMsg:  "WEATHERSTACK_API_KEY is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constructor()
			assert.Equal(t, tt.expectedType, err.Type)
			assert.Equal(t, tt.expectedMsg, err.Message)
			if tt.hasCause {
				assert.NotNil(t, err.Cause)
			} else {
				assert.Nil(t, err.Cause)
			}
		})
	}
}

func TestErrorTypeCheckers_SeeThroughWrapping(t *testing.T) {
	shape := NewShapeValidationError("missing current", nil)
	aggregated := NewExternalAPIError("all endpoints failed", shape)
	wrapped := fmt.Errorf("extract and load: %w", aggregated)

	assert.True(t, IsExternalAPIError(wrapped))
	assert.True(t, IsShapeValidationError(wrapped))
	assert.False(t, IsDatabaseError(wrapped))
	assert.False(t, IsDataMappingError(wrapped))
	assert.Equal(t, ExternalAPIError, TypeOf(wrapped))
}

func TestErrorTypeCheckers_NonAppError(t *testing.T) {
	plain := fmt.Errorf("plain")

	assert.False(t, IsValidationError(plain))
	assert.False(t, IsNotFoundError(plain))
	assert.False(t, IsConfigurationError(plain))
	assert.False(t, IsExternalAPIError(nil))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(plain))
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "DATA_MAPPING_ERROR", ErrorTypeDataMapping.String())
	assert.Equal(t, "CONFIGURATION_ERROR", ErrorTypeConfiguration.String())
	assert.Equal(t, "UNKNOWN_ERROR", ErrorType(99).String())
}
