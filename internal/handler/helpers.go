package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/astrumlab/tzbrief/internal/middleware"
	appErr "github.com/astrumlab/tzbrief/internal/pkg/errors"
)

func getUserID(c *gin.Context) int64 {
	value, _ := c.Get(middleware.ContextUserIDKey)
	userID, _ := value.(int64)
	return userID
}

func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	logutil.GetLogger(c.Request.Context()).Warn("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	switch {
	case appErr.IsNotFound(err):
		errorJSON(c, http.StatusNotFound, "Document not found")
	case appErr.IsInvalid(err):
		errorJSON(c, http.StatusBadRequest, "Invalid request")
	default:
		errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
}
