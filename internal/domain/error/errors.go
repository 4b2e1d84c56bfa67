package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest         = 4000
	CodeValidation             = 4001
	CodeInvalidAmount          = 4002
	CodeInvalidTransactionType = 4003
	CodeUnauthenticated        = 4010
	CodeInvalidToken           = 4011
	CodeUserInactive           = 4030
	CodeNotFound               = 4040
	CodeUserNotFound           = 4041
	CodeTransactionNotFound    = 4042
	CodeDuplicate              = 4090

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodeConstraintViolation = 5001
	CodeDatabaseConnection  = 5030
	CodeIdentityProvider    = 5031
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrValidation is returned when a payload breaks a field rule
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when an amount cannot be parsed or is out of range
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidTransactionType is returned for a type other than expense or income
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrUnauthenticated is returned when a request carries no usable session
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidToken is returned when a session or identity token fails verification
	ErrInvalidToken = errors.New("invalid token")

	// ErrUserInactive is returned when the owner of a record has been deactivated
	ErrUserInactive = errors.New("user is inactive")

	// ErrNotFound is returned when a record does not exist or is no longer active
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicate is returned when a record collides with an existing one
	ErrDuplicate = errors.New("record already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrIdentityProvider is returned when the federated identity provider cannot be reached
	ErrIdentityProvider = errors.New("identity provider unavailable")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidTransactionType):
		return CodeInvalidTransactionType
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrUserInactive):
		return CodeUserInactive
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicate):
		return CodeDuplicate
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrIdentityProvider):
		return CodeIdentityProvider
	default:
		return CodeInternalServer
	}
}

// RecordError describes a failed operation on one record
type RecordError struct {
	Kind      string
	ID        any
	Operation string
	Err       error
}

// Error implements the error interface for RecordError
func (e *RecordError) Error() string {
	if e.ID == nil {
		return fmt.Sprintf("%s %s failed: %v", e.Kind, e.Operation, e.Err)
	}
	return fmt.Sprintf("%s %s failed for id %v: %v", e.Kind, e.Operation, e.ID, e.Err)
}

// Unwrap returns the underlying error
func (e *RecordError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RecordError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "record_error",
		"kind":       e.Kind,
		"record_id":  e.ID,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewRecordError wraps err with the record kind, id and operation
func NewRecordError(kind string, id any, operation string, err error) error {
	return &RecordError{Kind: kind, ID: id, Operation: operation, Err: err}
}

// ValidationError reports a single field that broke a rule
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a field validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsBadRequestError checks if the error was caused by the caller's input
func IsBadRequestError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidTransactionType)
}

// IsAuthError checks if the error means the caller is not authenticated
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthenticated) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrUserInactive)
}

// IsDuplicateError checks if the error is a uniqueness collision
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
