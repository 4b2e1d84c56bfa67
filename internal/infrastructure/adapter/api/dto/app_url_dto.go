package dto

import (
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-records/internal/domain/patch"
)

type CreateAppURLRequest struct {
	URL           string `json:"url" binding:"required"`
	IsFinished    bool   `json:"isFinished"`
	TransactionID uint64 `json:"transactionId" binding:"required"`
}

func (r CreateAppURLRequest) ToEntity() *entity.AppURL {
	return &entity.AppURL{URL: r.URL, IsFinished: r.IsFinished, TransactionID: r.TransactionID}
}

type UpdateAppURLRequest struct {
	URL           patch.Optional[string] `json:"url"`
	IsFinished    patch.Optional[bool]   `json:"isFinished"`
	TransactionID patch.Optional[uint64] `json:"transactionId"`
}

func (r UpdateAppURLRequest) ToPatch() entity.AppURLPatch {
	return entity.AppURLPatch{URL: r.URL, IsFinished: r.IsFinished, TransactionID: r.TransactionID}
}

type AppURLResponse struct {
	AppURLID      uint64               `json:"appUrlId"`
	URL           string               `json:"url"`
	IsFinished    bool                 `json:"isFinished"`
	TransactionID uint64               `json:"transactionId"`
	Transaction   *TransactionResponse `json:"transaction,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     *time.Time           `json:"updatedAt,omitempty"`
}

func NewAppURLResponse(a *entity.AppURL) AppURLResponse {
	resp := AppURLResponse{
		AppURLID:      a.ID,
		URL:           a.URL,
		IsFinished:    a.IsFinished,
		TransactionID: a.TransactionID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if a.Transaction != nil {
		tx := NewTransactionResponse(a.Transaction)
		resp.Transaction = &tx
	}
	return resp
}
