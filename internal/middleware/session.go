package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/manicure-agenda/internal/httperr"
	"github.com/BruksfildServices01/manicure-agenda/internal/session"
)

const ContextProfileID = "profileID"

// RequireSession exige uma manicure logada no dispositivo
func RequireSession(sess *session.Manager, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok, err := sess.GetCurrent(c.Request.Context())
		if err != nil {
			log.Error("session lookup failed", zap.Error(err))
			httperr.Internal(c, "storage_error", "Erro ao acessar os dados.")
			return
		}
		if !ok {
			httperr.Write(c, http.StatusUnauthorized, "not_logged_in", "Nenhuma manicure logada.")
			return
		}

		c.Set(ContextProfileID, id)
		c.Next()
	}
}
