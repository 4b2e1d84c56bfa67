package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
)

// Record is implemented by every record kind managed by the lifecycle engine
type Record interface {
	// RecordID returns the storage-generated identifier (zero before create)
	RecordID() uint64
	// SetRecordID stores the identifier assigned by storage
	SetRecordID(id uint64)
	// Created stamps the creation time
	Created(at time.Time)
	// Touch stamps the update time
	Touch(at time.Time)
}

// SoftDeletable is a record that is deactivated instead of removed
type SoftDeletable interface {
	Record
	Active() bool
	Activate()
	Deactivate(at time.Time)
}

// textRule is a length rule for one text field
type textRule struct {
	field    string
	value    string
	max      int
	required bool
}

// checkText applies rules in order and returns the first failure
func checkText(rules ...textRule) error {
	for _, r := range rules {
		if r.required && strings.TrimSpace(r.value) == "" {
			return errs.NewValidationError(r.field, "is required")
		}
		if utf8.RuneCountInString(r.value) > r.max {
			return errs.NewValidationError(r.field, fmt.Sprintf("must be at most %d characters", r.max))
		}
	}
	return nil
}

func stamp(at time.Time) *time.Time {
	return &at
}
