package dto

import (
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-records/internal/domain/patch"
	"github.com/shopspring/decimal"
)

// CreateBalanceRequest records a balance adjustment on an account
type CreateBalanceRequest struct {
	Account string           `json:"account" binding:"required"`
	Amount  *decimal.Decimal `json:"amount" binding:"required"`
	Date    string           `json:"date"`
	Time    string           `json:"time"`
	Note    string           `json:"note"`
}

// ToEntity builds the balance to create
func (r CreateBalanceRequest) ToEntity() *entity.Balance {
	b := &entity.Balance{Account: r.Account, Date: r.Date, Time: r.Time, Note: r.Note}
	if r.Amount != nil {
		b.Amount = *r.Amount
	}
	return b
}

// UpdateBalanceRequest is a partial update of a balance adjustment
type UpdateBalanceRequest struct {
	Account patch.Optional[string]          `json:"account"`
	Amount  patch.Optional[decimal.Decimal] `json:"amount"`
	Date    patch.Optional[string]          `json:"date"`
	Time    patch.Optional[string]          `json:"time"`
	Note    patch.Optional[string]          `json:"note"`
}

// ToPatch converts the request to a domain patch
func (r UpdateBalanceRequest) ToPatch() entity.BalancePatch {
	return entity.BalancePatch{Account: r.Account, Amount: r.Amount, Date: r.Date, Time: r.Time, Note: r.Note}
}

// BalanceResponse represents a balance adjustment in API responses
type BalanceResponse struct {
	BalanceID uint64     `json:"balanceId"`
	Account   string     `json:"account"`
	Amount    string     `json:"amount"`
	Date      string     `json:"date,omitempty"`
	Time      string     `json:"time,omitempty"`
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// NewBalanceResponse maps a balance adjustment
func NewBalanceResponse(b *entity.Balance) BalanceResponse {
	return BalanceResponse{
		BalanceID: b.ID,
		Account:   b.Account,
		Amount:    entity.FormatAmount(b.Amount),
		Date:      b.Date,
		Time:      b.Time,
		Note:      b.Note,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
