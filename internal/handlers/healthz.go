package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"landing/internal/version"
)

func (h *Handler) Healthz(c echo.Context) error {
	status, code := "ok", http.StatusOK
	dbState := "not_connected"
	if h.db.Connected() {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.log.Warn("healthz db ping failed", zap.Error(err))
			status, code, dbState = "degraded", http.StatusServiceUnavailable, "error"
		} else {
			dbState = "connected"
		}
	}
	return c.JSON(code, map[string]any{
		"status":  status,
		"version": version.Version,
		"time":    time.Now().Format(time.RFC3339),
		"db":      dbState,
	})
}
