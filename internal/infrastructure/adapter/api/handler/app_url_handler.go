package handler

import (
	"fmt"
	"net/http"

	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AppURLHandler handles app url records
type AppURLHandler struct {
	appURLs usecase.AppURLUseCase
	logger  coreport.Logger
}

func NewAppURLHandler(appURLs usecase.AppURLUseCase, logger coreport.Logger) *AppURLHandler {
	return &AppURLHandler{appURLs: appURLs, logger: logger}
}

// List handles GET /api/records/app-urls, newest first by default
func (h *AppURLHandler) List(c *gin.Context) {
	params, ok := listParams(c, h.logger)
	if !ok {
		return
	}

	res, err := h.appURLs.List(c.Request.Context(), params.ToQuery(true))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPagedResponse(res, dto.NewAppURLResponse))
}

func (h *AppURLHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.appURLs.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAppURLResponse(a))
}

func (h *AppURLHandler) Create(c *gin.Context) {
	var req dto.CreateAppURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	a, err := h.appURLs.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/records/app-urls/%d", a.ID))
	c.JSON(http.StatusCreated, dto.NewAppURLResponse(a))
}

func (h *AppURLHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateAppURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	a, err := h.appURLs.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAppURLResponse(a))
}

// Delete removes the app url permanently
func (h *AppURLHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.appURLs.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
