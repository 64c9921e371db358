package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/manicure-agenda/internal/kvstore"
)

// DevHandler só é registrado com DEV_MODE=true
type DevHandler struct {
	store kvstore.Store
	log   *zap.Logger
}

func NewDevHandler(store kvstore.Store, log *zap.Logger) *DevHandler {
	return &DevHandler{store: store, log: log}
}

func (h *DevHandler) ClearAll(c *gin.Context) {
	if err := kvstore.ClearAll(c.Request.Context(), h.store); err != nil {
		writeError(c, h.log, err)
		return
	}
	h.log.Warn("all local data cleared")
	c.Status(http.StatusNoContent)
}
