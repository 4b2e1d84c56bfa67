package middleware

import (
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// BearerToken returns the token from the Authorization header
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}

// QueryToken lets a download link carry the session in the token query
// parameter. It only fills a missing Authorization header, so mount it
// before Auth on the routes that serve such links.
func QueryToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			if token := strings.TrimSpace(c.Query("token")); token != "" {
				c.Request.Header.Set("Authorization", "Bearer "+token)
			}
		}
		c.Next()
	}
}

// Auth resolves the session token to an active user and stores it in the
// context. Requests without a valid session are rejected with 401.
func Auth(auth usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			abortUnauthorized(c, domainerr.ErrUnauthenticated, "Authentication required")
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !domainerr.IsAuthError(err) && !domainerr.IsNotFoundError(err) {
				logger.Error("Session lookup failed", map[string]any{
					"error":      err.Error(),
					"request_id": GetRequestID(c),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:      domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message:   "Internal server error",
					RequestID: GetRequestID(c),
				})
				return
			}
			logger.Debug("Rejected session token", map[string]any{
				"error":      err.Error(),
				"request_id": GetRequestID(c),
			})
			abortUnauthorized(c, err, "Invalid or expired session")
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error, message string) {
	c.Header("WWW-Authenticate", `Bearer realm="finance-records"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		Message:   message,
		RequestID: GetRequestID(c),
	})
}

// CurrentUser returns the user stored by Auth
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok && user != nil
}
