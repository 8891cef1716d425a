package middleware

import (
	"net/http"
	"rubrox/pkg"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInternal = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("user_id", UserID(c)),
			zap.Duration("cost", time.Since(start)),
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("[http][request] failed", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("[http][request] rejected", fields...)
		default:
			logger.Info("[http][request] served", fields...)
		}
	}
}

// Recovery logs the panic and answers with the generic internal error body.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http][recovery] recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(errInternal.HTTPStatus, errInternal.ToHTTPError())
	})
}
