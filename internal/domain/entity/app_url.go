package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	"github.com/amirhossein-jamali/finance-records/internal/domain/patch"
	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
)

// AppURL is a bookmark into an external app, bound to exactly one transaction
type AppURL struct {
	ID            uint64
	URL           string
	IsFinished    bool
	TransactionID uint64
	Transaction   *Transaction // Loaded only when eager loading "Transaction"
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// RecordID returns the app url id
func (a *AppURL) RecordID() uint64 { return a.ID }

// SetRecordID sets the app url id
func (a *AppURL) SetRecordID(id uint64) { a.ID = id }

// Created stamps the creation time
func (a *AppURL) Created(at time.Time) { a.CreatedAt = at }

// Touch stamps the update time
func (a *AppURL) Touch(at time.Time) { a.UpdatedAt = stamp(at) }

// Validate checks the field rules of an app url
func (a *AppURL) Validate() error {
	if a.TransactionID == 0 {
		return errs.NewValidationError("transactionId", "is required")
	}
	return checkText(textRule{field: "url", value: a.URL, max: 2000, required: true})
}

// AppURLRelationTransaction eager loads the bound transaction
const AppURLRelationTransaction = "Transaction"

// AppURLSchema describes app urls. They are removed on delete.
var AppURLSchema = &query.Schema[*AppURL]{
	Name:       "app_url",
	PrimaryKey: "id",
	Fields: []query.Field[*AppURL]{
		{Name: "appUrlId", Column: "id", Kind: query.KindKey, Sortable: true, Value: func(a *AppURL) any { return a.ID }},
		{Name: "url", Column: "url", Kind: query.KindText, Value: func(a *AppURL) any { return a.URL }},
		{Name: "isFinished", Column: "is_finished", Kind: query.KindBool, Sortable: true, Value: func(a *AppURL) any { return a.IsFinished }},
		{Name: "transactionId", Column: "transaction_id", Kind: query.KindKey, Value: func(a *AppURL) any { return a.TransactionID }},
		{Name: "createdAt", Column: "created_at", Kind: query.KindTime, Sortable: true, Value: func(a *AppURL) any { return a.CreatedAt }},
	},
	DefaultSort: "createdAt",
	Relations:   []string{AppURLRelationTransaction},
}

// AppURLPatch is a partial update of an app url
type AppURLPatch struct {
	URL           patch.Optional[string]
	IsFinished    patch.Optional[bool]
	TransactionID patch.Optional[uint64]
}

// Setters binds each patch field to its column
func (p AppURLPatch) Setters() []patch.Setter[*AppURL] {
	return []patch.Setter[*AppURL]{
		patch.Set("url", p.URL, func(a *AppURL, v string) { a.URL = v }),
		patch.Set("is_finished", p.IsFinished, func(a *AppURL, v bool) { a.IsFinished = v }),
		patch.Set("transaction_id", p.TransactionID, func(a *AppURL, v uint64) { a.TransactionID = v }),
	}
}
