package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler exchanges Google ID tokens for sessions
type AuthHandler struct {
	auth   usecase.AuthUseCase
	logger coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(auth usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// GoogleLogin handles POST /api/auth/google
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	res, err := h.auth.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.NewLoginResponse(res))
}

// Verify handles GET /api/auth/verify and returns the session's user
func (h *AuthHandler) Verify(c *gin.Context) {
	res, err := h.auth.Authenticate(c.Request.Context(), middleware.BearerToken(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(res))
}
