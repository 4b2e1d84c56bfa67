package dto

import (
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-records/internal/domain/patch"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the body of POST /api/records/transactions.
// The owner is always the authenticated user.
type CreateTransactionRequest struct {
	TransactionType entity.TransactionType `json:"transactionType" binding:"required"`
	Amount          *decimal.Decimal       `json:"amount" binding:"required"`
	Currency        string                 `json:"currency"`
	Account         string                 `json:"account" binding:"required"`
	Project         string                 `json:"project"`
	Category        string                 `json:"category"`
	Subcategory     string                 `json:"subcategory" binding:"required"`
	Name            string                 `json:"name"`
	Store           string                 `json:"store"`
	Note            string                 `json:"note"`
	Tags            string                 `json:"tags"`
	Date            string                 `json:"date"`
	Time            string                 `json:"time"`
	Fee             decimal.NullDecimal    `json:"fee"`
	FeeName         string                 `json:"feeName"`
	Bonus           decimal.NullDecimal    `json:"bonus"`
	BonusName       string                 `json:"bonusName"`
}

// ToEntity builds the transaction to create
func (r CreateTransactionRequest) ToEntity() *entity.Transaction {
	tx := &entity.Transaction{
		Type:        r.TransactionType,
		Currency:    r.Currency,
		Account:     r.Account,
		Project:     r.Project,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Name:        r.Name,
		Store:       r.Store,
		Note:        r.Note,
		Tags:        r.Tags,
		Date:        r.Date,
		Time:        r.Time,
		Fee:         r.Fee,
		FeeName:     r.FeeName,
		Bonus:       r.Bonus,
		BonusName:   r.BonusName,
	}
	if r.Amount != nil {
		tx.Amount = *r.Amount
	}
	return tx
}

// UpdateTransactionRequest is a partial update. Omitted or null fields are
// left unchanged; an explicit empty string clears a text field.
type UpdateTransactionRequest struct {
	TransactionType patch.Optional[entity.TransactionType] `json:"transactionType"`
	Amount          patch.Optional[decimal.Decimal]        `json:"amount"`
	Currency        patch.Optional[string]                 `json:"currency"`
	Account         patch.Optional[string]                 `json:"account"`
	Project         patch.Optional[string]                 `json:"project"`
	Category        patch.Optional[string]                 `json:"category"`
	Subcategory     patch.Optional[string]                 `json:"subcategory"`
	Name            patch.Optional[string]                 `json:"name"`
	Store           patch.Optional[string]                 `json:"store"`
	Note            patch.Optional[string]                 `json:"note"`
	Tags            patch.Optional[string]                 `json:"tags"`
	Date            patch.Optional[string]                 `json:"date"`
	Time            patch.Optional[string]                 `json:"time"`
	Fee             patch.Optional[decimal.Decimal]        `json:"fee"`
	FeeName         patch.Optional[string]                 `json:"feeName"`
	Bonus           patch.Optional[decimal.Decimal]        `json:"bonus"`
	BonusName       patch.Optional[string]                 `json:"bonusName"`
}

// ToPatch converts the request to a domain patch
func (r UpdateTransactionRequest) ToPatch() entity.TransactionPatch {
	return entity.TransactionPatch{
		Type:        r.TransactionType,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Account:     r.Account,
		Project:     r.Project,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Name:        r.Name,
		Store:       r.Store,
		Note:        r.Note,
		Tags:        r.Tags,
		Date:        r.Date,
		Time:        r.Time,
		Fee:         r.Fee,
		FeeName:     r.FeeName,
		Bonus:       r.Bonus,
		BonusName:   r.BonusName,
	}
}

// UserSummary is the owner embedded in a transaction response
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	TransactionID   uint64       `json:"transactionId"`
	TransactionType string       `json:"transactionType"`
	Amount          string       `json:"amount"`
	Currency        string       `json:"currency,omitempty"`
	Account         string       `json:"account"`
	Project         string       `json:"project,omitempty"`
	Category        string       `json:"category,omitempty"`
	Subcategory     string       `json:"subcategory"`
	Name            string       `json:"name,omitempty"`
	Store           string       `json:"store,omitempty"`
	Note            string       `json:"note,omitempty"`
	Tags            string       `json:"tags,omitempty"`
	Date            string       `json:"date,omitempty"`
	Time            string       `json:"time,omitempty"`
	Fee             string       `json:"fee,omitempty"`
	FeeName         string       `json:"feeName,omitempty"`
	Bonus           string       `json:"bonus,omitempty"`
	BonusName       string       `json:"bonusName,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       *time.Time   `json:"updatedAt,omitempty"`
	UserID          string       `json:"userId"`
	User            *UserSummary `json:"user,omitempty"`
}

// NewTransactionResponse maps a transaction field for field
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:   tx.ID,
		TransactionType: tx.Type.String(),
		Amount:          entity.FormatAmount(tx.Amount),
		Currency:        tx.Currency,
		Account:         tx.Account,
		Project:         tx.Project,
		Category:        tx.Category,
		Subcategory:     tx.Subcategory,
		Name:            tx.Name,
		Store:           tx.Store,
		Note:            tx.Note,
		Tags:            tx.Tags,
		Date:            tx.Date,
		Time:            tx.Time,
		Fee:             entity.FormatOptionalAmount(tx.Fee),
		FeeName:         tx.FeeName,
		Bonus:           entity.FormatOptionalAmount(tx.Bonus),
		BonusName:       tx.BonusName,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
		UserID:          tx.UserID,
	}
	if tx.User != nil {
		resp.User = &UserSummary{ID: tx.User.ID, Email: tx.User.Email, UserName: tx.User.DisplayName()}
	}
	return resp
}
