package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	qaa "github.com/holmes89/qaa/lib"
	"go.uber.org/zap"
)

const notFoundDetail = "Question and answer not found"

// respondValidation rejects a request whose path or body failed binding.
func respondValidation(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

func (h *RestHandlerImpl) respondError(c *gin.Context, err error) {
	var (
		authErr     *qaa.AuthConfigError
		providerErr *qaa.ProviderError
	)
	switch {
	case errors.Is(err, qaa.ErrValidation):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
	case errors.Is(err, qaa.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": notFoundDetail})
	case errors.As(err, &authErr):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": authErr.Detail()})
	case errors.As(err, &providerErr):
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": providerErr.Detail()})
	default:
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}
