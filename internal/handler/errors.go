package handler

import (
	"errors"
	"net/http"

	"salesanalytics/internal/analytics"
	"salesanalytics/internal/logger"
	"salesanalytics/pkg/response"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto the response envelope
func writeError(c *gin.Context, err error, emptyData interface{}) {
	switch {
	case analytics.IsValidation(err):
		c.JSON(http.StatusBadRequest, response.Fail(http.StatusBadRequest, response.CodeValidation, err.Error(), nil))
	case errors.Is(err, analytics.ErrNoDataInRange):
		c.JSON(http.StatusNotFound, response.Fail(http.StatusNotFound, response.CodeNoDataInRange, err.Error(), emptyData))
	case errors.Is(err, analytics.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, response.Fail(http.StatusServiceUnavailable, response.CodeStorageUnavailable, analytics.ErrStorageUnavailable.Error(), nil))
	default:
		logger.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "unhandled error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, response.Fail(http.StatusInternalServerError, response.CodeInternal, "internal server error", nil))
	}
}
