package errors

import (
	"net/http"

	"wordtrainer/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Field() string     // Request field the error refers to (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	field     string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails or WithField still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Field returns the request field the error refers to
func (e *BaseError) Field() string {
	return e.field
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

// WithField tags the error with the offending request field
func (e *BaseError) WithField(field string) *BaseError {
	cloned := *e
	cloned.field = field

	return &cloned
}

// Request fields referenced by field-tagged errors
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// Predefined error types
var (
	// Account-related errors
	ErrDuplicateEmail = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_REGISTERED",
		"Email already registered",
		"",
	).WithField(FieldEmail)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Could not validate credentials",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the strength requirements",
		"",
	).WithField(FieldPassword)

	// Profile-related errors
	ErrProfileAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_ALREADY_EXISTS",
		"Profile already exists",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	// Dictionary-related errors
	ErrDictionaryEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"DICTIONARY_ENTRY_NOT_FOUND",
		"Dictionary entry not found",
		"",
	)

	ErrDictionaryEntryExists = NewBaseError(
		http.StatusBadRequest,
		"DICTIONARY_ENTRY_EXISTS",
		"Word already exists in dictionary for this language",
		"",
	).WithField("text")

	ErrDictionaryEntryInUse = NewBaseError(
		http.StatusBadRequest,
		"DICTIONARY_ENTRY_IN_USE",
		"Cannot delete dictionary entry that is used in user's words",
		"",
	)

	ErrInvalidDifficulty = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DIFFICULTY",
		"Difficulty must be one of easy, medium, hard",
		"",
	).WithField("difficulty")

	// Word-related errors
	ErrWordNotFound = NewBaseError(
		http.StatusNotFound,
		"WORD_NOT_FOUND",
		"Word not found",
		"",
	)

	ErrWordAlreadyAdded = NewBaseError(
		http.StatusConflict,
		"WORD_ALREADY_ADDED",
		"Dictionary entry is already in your word list",
		"",
	).WithField("dictionary_id")

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Field is always empty for database errors
func (e *DatabaseExecuteError) Field() string {
	return ""
}
