package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"landing/internal/views"
	"landing/pkg/config"
)

// HTTPErrorHandler sends unmatched page requests back to the home page and
// answers everything else with the unified JSON error.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	message := "internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else if he.Message != nil {
			message = fmt.Sprint(he.Message)
		}
	}

	req := c.Request()
	if status == http.StatusNotFound && isReadMethod(req.Method) && !strings.HasPrefix(req.URL.Path, "/static/") {
		if rerr := h.NotFound(c); rerr != nil {
			h.log.Error("not found page failed", zap.String("request_id", requestID(c)), zap.Error(rerr))
		}
		return
	}

	if status >= http.StatusInternalServerError {
		h.log.Error("handler error", zap.String("request_id", requestID(c)), zap.String("endpoint", endpoint(c)), zap.Error(err))
		message = "internal server error"
	}
	_ = writeError(c, h.log, status, errorCode(status), message, nil)
}

// NotFound renders the redirecting placeholder, or redirects outright in
// redirect mode.
func (h *Handler) NotFound(c echo.Context) error {
	if h.cfg.NotFoundMode == config.NotFoundModeRedirect {
		return c.Redirect(http.StatusFound, views.RedirectTarget)
	}
	return render(c, http.StatusNotFound, views.NotFound(h.nav))
}

func errorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnprocessableEntity:
		return "validation_failed"
	case http.StatusRequestEntityTooLarge:
		return "payload_too_large"
	case http.StatusTooManyRequests:
		return "rate_limited"
	}
	if status >= http.StatusInternalServerError {
		return "internal_error"
	}
	return strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
}
