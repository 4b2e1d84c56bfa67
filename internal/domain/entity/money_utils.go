package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxIntegerDigits matches the numeric(18,2) storage columns
const MaxIntegerDigits = 16

// ValidateAmount checks that a decimal fits a numeric(18,2) column without rounding
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.Round(MaxDecimalPlaces).Equal(amount) {
		return fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	if len(amount.Abs().Truncate(0).String()) > MaxIntegerDigits {
		return fmt.Errorf("%w: maximum %d integer digits allowed", errs.ErrInvalidAmount, MaxIntegerDigits)
	}
	return nil
}

// FormatAmount renders an amount with exactly two decimal places, e.g. 100 becomes "100.00"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// FormatOptionalAmount renders an optional amount, or "" when it is not set
func FormatOptionalAmount(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return ""
	}
	return FormatAmount(amount.Decimal)
}
