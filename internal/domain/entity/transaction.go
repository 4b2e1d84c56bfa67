package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	"github.com/amirhossein-jamali/finance-records/internal/domain/patch"
	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
	"github.com/shopspring/decimal"
)

// TransactionType tells expenses and incomes apart
type TransactionType int

// Transaction types, numbered as stored
const (
	TransactionTypeExpense TransactionType = 1
	TransactionTypeIncome  TransactionType = 2
)

// Valid reports whether t is a known transaction type
func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// String returns the lower-case name of the type
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeExpense:
		return "expense"
	case TransactionTypeIncome:
		return "income"
	default:
		return strconv.Itoa(int(t))
	}
}

// ParseTransactionType accepts "expense", "income" or their numeric values
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense", "1":
		return TransactionTypeExpense, nil
	case "income", "2":
		return TransactionTypeIncome, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidTransactionType, s)
	}
}

// UnmarshalJSON accepts the type as a number (1, 2) or a name ("expense", "income")
func (t *TransactionType) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTransactionType(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Transaction is a money movement (expense or income) owned by one user
type Transaction struct {
	ID          uint64          // Storage-generated identifier
	Type        TransactionType // Expense or income
	Amount      decimal.Decimal // Amount with two decimal places
	Currency    string
	Account     string // Required account name
	Project     string
	Category    string
	Subcategory string // Required subcategory
	Name        string
	Store       string
	Note        string
	Tags        string
	Date        string // yyyy.MM.dd
	Time        string // HH:mm
	Fee         decimal.NullDecimal
	FeeName     string
	Bonus       decimal.NullDecimal
	BonusName   string
	CreatedAt   time.Time
	UpdatedAt   *time.Time // Absent until the first mutation
	IsActive    bool
	UserID      string // Owner, resolved from the session
	User        *User  // Loaded only when eager loading "User"
}

// RecordID returns the transaction id
func (t *Transaction) RecordID() uint64 { return t.ID }

// SetRecordID sets the transaction id
func (t *Transaction) SetRecordID(id uint64) { t.ID = id }

// Created stamps the creation time
func (t *Transaction) Created(at time.Time) { t.CreatedAt = at }

// Touch stamps the update time
func (t *Transaction) Touch(at time.Time) { t.UpdatedAt = stamp(at) }

// Active reports whether the transaction is visible
func (t *Transaction) Active() bool { return t.IsActive }

// Activate marks a new transaction visible
func (t *Transaction) Activate() { t.IsActive = true }

// Deactivate soft-deletes the transaction
func (t *Transaction) Deactivate(at time.Time) {
	t.IsActive = false
	t.Touch(at)
}

// Validate checks the field rules of a transaction
func (t *Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidTransactionType, t.Type)
	}
	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}
	if t.Fee.Valid {
		if err := ValidateAmount(t.Fee.Decimal); err != nil {
			return fmt.Errorf("fee: %w", err)
		}
	}
	if t.Bonus.Valid {
		if err := ValidateAmount(t.Bonus.Decimal); err != nil {
			return fmt.Errorf("bonus: %w", err)
		}
	}
	if strings.TrimSpace(t.UserID) == "" {
		return errs.NewValidationError("userId", "is required")
	}
	return checkText(
		textRule{field: "account", value: t.Account, max: 100, required: true},
		textRule{field: "subcategory", value: t.Subcategory, max: 100, required: true},
		textRule{field: "currency", value: t.Currency, max: 10},
		textRule{field: "project", value: t.Project, max: 100},
		textRule{field: "category", value: t.Category, max: 100},
		textRule{field: "name", value: t.Name, max: 200},
		textRule{field: "store", value: t.Store, max: 200},
		textRule{field: "note", value: t.Note, max: 500},
		textRule{field: "tags", value: t.Tags, max: 500},
		textRule{field: "date", value: t.Date, max: 10},
		textRule{field: "time", value: t.Time, max: 5},
		textRule{field: "feeName", value: t.FeeName, max: 100},
		textRule{field: "bonusName", value: t.BonusName, max: 100},
	)
}

// TransactionRelationUser eager loads the owner
const TransactionRelationUser = "User"

// TransactionSchema describes transactions for search, sort and lifecycle
var TransactionSchema = &query.Schema[*Transaction]{
	Name:       "transaction",
	PrimaryKey: "id",
	Fields: []query.Field[*Transaction]{
		{Name: "transactionId", Column: "id", Kind: query.KindKey, Sortable: true, Value: func(t *Transaction) any { return t.ID }},
		{Name: "transactionType", Column: "transaction_type", Kind: query.KindNumber, Value: func(t *Transaction) any { return t.Type }},
		{Name: "amount", Column: "amount", Kind: query.KindNumber, Sortable: true, Value: func(t *Transaction) any { return t.Amount.String() }},
		{Name: "currency", Column: "currency", Kind: query.KindText, Value: func(t *Transaction) any { return query.OptionalText(t.Currency) }},
		{Name: "account", Column: "account", Kind: query.KindText, Value: func(t *Transaction) any { return t.Account }},
		{Name: "project", Column: "project", Kind: query.KindText, Value: func(t *Transaction) any { return query.OptionalText(t.Project) }},
		{Name: "category", Column: "category", Kind: query.KindText, Value: func(t *Transaction) any { return query.OptionalText(t.Category) }},
		{Name: "subcategory", Column: "subcategory", Kind: query.KindText, Value: func(t *Transaction) any { return t.Subcategory }},
		{Name: "name", Column: "name", Kind: query.KindText, Value: func(t *Transaction) any { return query.OptionalText(t.Name) }},
		{Name: "store", Column: "store", Kind: query.KindText, Value: func(t *Transaction) any { return query.OptionalText(t.Store) }},
		{Name: "note", Column: "note", Kind: query.KindText, Value: func(t *Transaction) any { return query.OptionalText(t.Note) }},
		{Name: "tags", Column: "tags", Kind: query.KindText, Value: func(t *Transaction) any { return query.OptionalText(t.Tags) }},
		{Name: "date", Column: "date", Kind: query.KindText, Sortable: true, Value: func(t *Transaction) any { return query.OptionalText(t.Date) }},
		{Name: "time", Column: "time", Kind: query.KindText, Value: func(t *Transaction) any { return query.OptionalText(t.Time) }},
		{Name: "feeName", Column: "fee_name", Kind: query.KindText, Value: func(t *Transaction) any { return query.OptionalText(t.FeeName) }},
		{Name: "bonusName", Column: "bonus_name", Kind: query.KindText, Value: func(t *Transaction) any { return query.OptionalText(t.BonusName) }},
		{Name: "createdAt", Column: "created_at", Kind: query.KindTime, Sortable: true, Value: func(t *Transaction) any { return t.CreatedAt }},
		{Name: "isActive", Column: "is_active", Kind: query.KindBool, Value: func(t *Transaction) any { return t.IsActive }},
		{Name: "userId", Column: "user_id", Kind: query.KindKey, Value: func(t *Transaction) any { return t.UserID }},
	},
	SoftDelete:   true,
	ActiveColumn: "is_active",
	DefaultSort:  "transactionId",
	Relations:    []string{TransactionRelationUser},
}

// TransactionPatch is a partial update of a transaction. The owner and the
// active flag cannot be patched.
type TransactionPatch struct {
	Type        patch.Optional[TransactionType]
	Amount      patch.Optional[decimal.Decimal]
	Currency    patch.Optional[string]
	Account     patch.Optional[string]
	Project     patch.Optional[string]
	Category    patch.Optional[string]
	Subcategory patch.Optional[string]
	Name        patch.Optional[string]
	Store       patch.Optional[string]
	Note        patch.Optional[string]
	Tags        patch.Optional[string]
	Date        patch.Optional[string]
	Time        patch.Optional[string]
	Fee         patch.Optional[decimal.Decimal]
	FeeName     patch.Optional[string]
	Bonus       patch.Optional[decimal.Decimal]
	BonusName   patch.Optional[string]
}

// Setters binds each patch field to its column
func (p TransactionPatch) Setters() []patch.Setter[*Transaction] {
	return []patch.Setter[*Transaction]{
		patch.Set("transaction_type", p.Type, func(t *Transaction, v TransactionType) { t.Type = v }),
		patch.Set("amount", p.Amount, func(t *Transaction, v decimal.Decimal) { t.Amount = v }),
		patch.Set("currency", p.Currency, func(t *Transaction, v string) { t.Currency = v }),
		patch.Set("account", p.Account, func(t *Transaction, v string) { t.Account = v }),
		patch.Set("project", p.Project, func(t *Transaction, v string) { t.Project = v }),
		patch.Set("category", p.Category, func(t *Transaction, v string) { t.Category = v }),
		patch.Set("subcategory", p.Subcategory, func(t *Transaction, v string) { t.Subcategory = v }),
		patch.Set("name", p.Name, func(t *Transaction, v string) { t.Name = v }),
		patch.Set("store", p.Store, func(t *Transaction, v string) { t.Store = v }),
		patch.Set("note", p.Note, func(t *Transaction, v string) { t.Note = v }),
		patch.Set("tags", p.Tags, func(t *Transaction, v string) { t.Tags = v }),
		patch.Set("date", p.Date, func(t *Transaction, v string) { t.Date = v }),
		patch.Set("time", p.Time, func(t *Transaction, v string) { t.Time = v }),
		patch.Set("fee", p.Fee, func(t *Transaction, v decimal.Decimal) { t.Fee = decimal.NewNullDecimal(v) }),
		patch.Set("fee_name", p.FeeName, func(t *Transaction, v string) { t.FeeName = v }),
		patch.Set("bonus", p.Bonus, func(t *Transaction, v decimal.Decimal) { t.Bonus = decimal.NewNullDecimal(v) }),
		patch.Set("bonus_name", p.BonusName, func(t *Transaction, v string) { t.BonusName = v }),
	}
}
