package entity

import (
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/domain/patch"
	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
	"github.com/shopspring/decimal"
)

// Balance is a standalone balance adjustment on an account
type Balance struct {
	ID        uint64
	Account   string
	Amount    decimal.Decimal // May be negative
	Date      string
	Time      string
	Note      string
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsActive  bool
}

// RecordID returns the balance id
func (b *Balance) RecordID() uint64 { return b.ID }

// SetRecordID sets the balance id
func (b *Balance) SetRecordID(id uint64) { b.ID = id }

// Created stamps the creation time
func (b *Balance) Created(at time.Time) { b.CreatedAt = at }

// Touch stamps the update time
func (b *Balance) Touch(at time.Time) { b.UpdatedAt = stamp(at) }

// Active reports whether the balance is visible
func (b *Balance) Active() bool { return b.IsActive }

// Activate marks a new balance visible
func (b *Balance) Activate() { b.IsActive = true }

// Deactivate soft-deletes the balance
func (b *Balance) Deactivate(at time.Time) {
	b.IsActive = false
	b.Touch(at)
}

// Validate checks the field rules of a balance
func (b *Balance) Validate() error {
	if err := ValidateAmount(b.Amount); err != nil {
		return err
	}
	return checkText(
		textRule{field: "account", value: b.Account, max: 100, required: true},
		textRule{field: "date", value: b.Date, max: 10},
		textRule{field: "time", value: b.Time, max: 5},
		textRule{field: "note", value: b.Note, max: 500},
	)
}

// BalanceSchema describes balance adjustments
var BalanceSchema = &query.Schema[*Balance]{
	Name:       "balance",
	PrimaryKey: "id",
	Fields: []query.Field[*Balance]{
		{Name: "balanceId", Column: "id", Kind: query.KindKey, Sortable: true, Value: func(b *Balance) any { return b.ID }},
		{Name: "account", Column: "account", Kind: query.KindText, Value: func(b *Balance) any { return b.Account }},
		{Name: "amount", Column: "amount", Kind: query.KindNumber, Sortable: true, Value: func(b *Balance) any { return b.Amount.String() }},
		{Name: "date", Column: "date", Kind: query.KindText, Sortable: true, Value: func(b *Balance) any { return query.OptionalText(b.Date) }},
		{Name: "time", Column: "time", Kind: query.KindText, Value: func(b *Balance) any { return query.OptionalText(b.Time) }},
		{Name: "note", Column: "note", Kind: query.KindText, Value: func(b *Balance) any { return query.OptionalText(b.Note) }},
		{Name: "createdAt", Column: "created_at", Kind: query.KindTime, Sortable: true, Value: func(b *Balance) any { return b.CreatedAt }},
		{Name: "isActive", Column: "is_active", Kind: query.KindBool, Value: func(b *Balance) any { return b.IsActive }},
	},
	SoftDelete:   true,
	ActiveColumn: "is_active",
	DefaultSort:  "balanceId",
}

// BalancePatch is a partial update of a balance
type BalancePatch struct {
	Account patch.Optional[string]
	Amount  patch.Optional[decimal.Decimal]
	Date    patch.Optional[string]
	Time    patch.Optional[string]
	Note    patch.Optional[string]
}

// Setters binds each patch field to its column
func (p BalancePatch) Setters() []patch.Setter[*Balance] {
	return []patch.Setter[*Balance]{
		patch.Set("account", p.Account, func(b *Balance, v string) { b.Account = v }),
		patch.Set("amount", p.Amount, func(b *Balance, v decimal.Decimal) { b.Amount = v }),
		patch.Set("date", p.Date, func(b *Balance, v string) { b.Date = v }),
		patch.Set("time", p.Time, func(b *Balance, v string) { b.Time = v }),
		patch.Set("note", p.Note, func(b *Balance, v string) { b.Note = v }),
	}
}
