package handlers

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// writeError writes a unified error response and logs a structured entry.
func writeError(c echo.Context, log *zap.Logger, status int, code, message string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	reqID := requestID(c)
	ep := endpoint(c)
	lvl := zapcore.WarnLevel
	if status >= http.StatusInternalServerError {
		lvl = zapcore.ErrorLevel
	}
	if ce := log.Check(lvl, "error response"); ce != nil {
		ce.Write(
			zap.String("request_id", reqID),
			zap.String("endpoint", ep),
			zap.String("source", DetectSource(ep)),
			zap.Int("status", status),
			zap.String("result", "error"),
			zap.String("error_code", code),
			zap.String("error_message", message),
		)
	}
	return c.JSON(status, map[string]any{
		"error": map[string]any{
			"code":       code,
			"message":    message,
			"details":    details,
			"request_id": reqID,
		},
	})
}

// render writes a templ component as an HTML response.
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response())
}

// wantsJSON reports whether the client asked for (or sent) JSON rather than a form post.
func wantsJSON(c echo.Context) bool {
	req := c.Request()
	if strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return true
	}
	return strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func isReadMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}
