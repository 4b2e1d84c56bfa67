package handler

import (
	"fmt"
	"net/http"

	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// BalanceHandler handles balance adjustments
type BalanceHandler struct {
	balances usecase.BalanceUseCase
	logger   coreport.Logger
}

// NewBalanceHandler creates a new balance handler instance
func NewBalanceHandler(balances usecase.BalanceUseCase, logger coreport.Logger) *BalanceHandler {
	return &BalanceHandler{balances: balances, logger: logger}
}

// List handles GET /api/records/balances
func (h *BalanceHandler) List(c *gin.Context) {
	params, ok := listParams(c, h.logger)
	if !ok {
		return
	}

	res, err := h.balances.List(c.Request.Context(), params.ToQuery(true))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPagedResponse(res, dto.NewBalanceResponse))
}

// Get handles GET /api/records/balances/:id
func (h *BalanceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.balances.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBalanceResponse(b))
}

// Create handles POST /api/records/balances
func (h *BalanceHandler) Create(c *gin.Context) {
	var req dto.CreateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	b, err := h.balances.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/records/balances/%d", b.ID))
	c.JSON(http.StatusCreated, dto.NewBalanceResponse(b))
}

// Update handles PATCH /api/records/balances/:id
func (h *BalanceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	b, err := h.balances.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBalanceResponse(b))
}

// Delete handles DELETE /api/records/balances/:id
func (h *BalanceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.balances.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
