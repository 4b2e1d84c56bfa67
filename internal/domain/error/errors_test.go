package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrNotFound.Error() != "resource not found" {
		t.Errorf("ErrNotFound has unexpected message: %s", ErrNotFound.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"Validation", ErrValidation, 4001},
		{"ValidationError", NewValidationError("account", "is required"), 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidTransactionType", ErrInvalidTransactionType, 4003},
		{"Unauthenticated", ErrUnauthenticated, 4010},
		{"InvalidToken", ErrInvalidToken, 4011},
		{"UserInactive", ErrUserInactive, 4030},
		{"NotFound", ErrNotFound, 4040},
		{"UserNotFound", ErrUserNotFound, 4041},
		{"TransactionNotFound", ErrTransactionNotFound, 4042},
		{"Duplicate", ErrDuplicate, 4090},
		{"ConstraintViolation", ErrConstraintViolation, 5001},
		{"DatabaseConnection", ErrDatabaseConnection, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrUserNotFound), 4041},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestRecordError(t *testing.T) {
	recErr := NewRecordError("transaction", uint64(42), "update", ErrNotFound)

	expected := "transaction update failed for id 42: resource not found"
	if recErr.Error() != expected {
		t.Errorf("RecordError.Error() = %s, want %s", recErr.Error(), expected)
	}
	if !errors.Is(recErr, ErrNotFound) {
		t.Errorf("errors.Is(recErr, ErrNotFound) = false, want true")
	}
	if !IsNotFoundError(recErr) {
		t.Errorf("IsNotFoundError(recErr) = false, want true")
	}

	var target *RecordError
	if !errors.As(recErr, &target) {
		t.Fatalf("errors.As failed for RecordError")
	}
	fields := target.LogFields()
	if fields["kind"] != "transaction" || fields["operation"] != "update" {
		t.Errorf("unexpected log fields: %v", fields)
	}
	if fields["error_code"] != CodeNotFound {
		t.Errorf("error_code = %v, want %d", fields["error_code"], CodeNotFound)
	}
}

func TestRecordErrorWithoutID(t *testing.T) {
	recErr := NewRecordError("balance", nil, "list", ErrDatabaseConnection)

	expected := "balance list failed: database connection error"
	if recErr.Error() != expected {
		t.Errorf("RecordError.Error() = %s, want %s", recErr.Error(), expected)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("currency", "must be at most 10 characters")

	if err.Error() != "currency: must be at most 10 characters" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}
	if !IsBadRequestError(fmt.Errorf("create: %w", err)) {
		t.Errorf("IsBadRequestError(wrapped validation) = false, want true")
	}
}

func TestErrorClassHelpers(t *testing.T) {
	if !IsAuthError(ErrInvalidToken) {
		t.Errorf("IsAuthError(ErrInvalidToken) = false, want true")
	}
	if IsAuthError(ErrNotFound) {
		t.Errorf("IsAuthError(ErrNotFound) = true, want false")
	}
	if !IsDuplicateError(fmt.Errorf("%w: app url", ErrDuplicate)) {
		t.Errorf("IsDuplicateError(wrapped) = false, want true")
	}
	if IsBadRequestError(ErrDatabaseConnection) {
		t.Errorf("IsBadRequestError(ErrDatabaseConnection) = true, want false")
	}
}
