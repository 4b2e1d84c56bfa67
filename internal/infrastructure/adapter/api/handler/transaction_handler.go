package handler

import (
	"fmt"
	"net/http"

	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/export"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles the caller's transactions. Every operation is
// scoped to the authenticated user.
type TransactionHandler struct {
	transactions usecase.TransactionUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactions usecase.TransactionUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (h *TransactionHandler) owner(c *gin.Context) (string, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return "", false
	}
	return user.ID, true
}

// List handles GET /api/records/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}
	params, ok := listParams(c, h.logger)
	if !ok {
		return
	}

	res, err := h.transactions.List(c.Request.Context(), ownerID, params.ToQuery(false))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPagedResponse(res, dto.NewTransactionResponse))
}

// Get handles GET /api/records/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	tx, err := h.transactions.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// Create handles POST /api/records/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	tx, err := h.transactions.Create(c.Request.Context(), ownerID, req.ToEntity())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/records/transactions/%d", tx.ID))
	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// Update handles PATCH /api/records/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	tx, err := h.transactions.Update(c.Request.Context(), ownerID, id, req.ToPatch())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// Delete handles DELETE /api/records/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.transactions.Delete(c.Request.Context(), ownerID, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export handles GET /api/records/transactions/export and streams an xlsx
// workbook of the caller's transactions matching the search parameter
func (h *TransactionHandler) Export(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}

	txs, err := h.transactions.Export(c.Request.Context(), ownerID, c.Query("search"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(h.timeProvider.Now())))
	c.Status(http.StatusOK)
	if err := export.WriteTransactions(c.Writer, txs); err != nil {
		// Headers are already sent, so the failure can only be logged
		h.logger.Error("Transaction export failed", map[string]any{
			"user_id":    ownerID,
			"rows":       len(txs),
			"error":      err.Error(),
			"request_id": middleware.GetRequestID(c),
		})
		_ = c.Error(err)
		return
	}

	h.logger.Info("Transactions exported", map[string]any{
		"user_id": ownerID,
		"rows":    len(txs),
	})
}
