package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		}
		if c.Writer.Status() >= 500 {
			log.Error("request", fields...)
			return
		}
		log.Debug("request", fields...)
	}
}

// Recovery troca o recovery padrão do gin por um log estruturado
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("Recovered from panic", zap.Any("error", recovered))
		c.AbortWithStatusJSON(500, gin.H{
			"error_code": "internal_error",
			"message":    "Erro interno.",
		})
	})
}
