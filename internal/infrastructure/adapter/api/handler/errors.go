package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsBadRequestError(err):
		return http.StatusBadRequest
	case domainerr.IsDuplicateError(err):
		return http.StatusConflict
	case domainerr.IsAuthError(err):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for err. Server errors get a generic
// message and are logged with their cause.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := StatusCode(err)
	requestID := middleware.GetRequestID(c)
	_ = c.Error(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		fields := map[string]any{
			"error":      err.Error(),
			"path":       c.Request.URL.Path,
			"request_id": requestID,
		}
		var recErr *domainerr.RecordError
		if errors.As(err, &recErr) {
			for k, v := range recErr.LogFields() {
				fields[k] = v
			}
		}
		logger.Error("Request failed", fields)
		message = "Internal server error"
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		Message:   message,
		RequestID: requestID,
	})
}

// bindError reports a request that could not be decoded
func bindError(c *gin.Context, logger coreport.Logger, err error) {
	logger.Debug("Invalid request format", map[string]any{
		"error":      err.Error(),
		"request_id": middleware.GetRequestID(c),
	})
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:      domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message:   "Invalid request format: " + err.Error(),
		RequestID: middleware.GetRequestID(c),
	})
}

// parseID reads the :id path parameter. Ids beyond the int64 key range
// cannot exist and are reported as not found.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if errors.Is(err, strconv.ErrRange) {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{
			Code:      domainerr.ErrorCode(domainerr.ErrNotFound),
			Message:   "Record not found",
			RequestID: middleware.GetRequestID(c),
		})
		return 0, false
	}
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:      domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message:   "Invalid id format",
			RequestID: middleware.GetRequestID(c),
		})
		return 0, false
	}
	return id, true
}

// listParams binds the list query parameters
func listParams(c *gin.Context, logger coreport.Logger) (dto.ListParams, bool) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return params, false
	}
	return params, true
}
