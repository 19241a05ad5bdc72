package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the JSON logger shared by the server and CLI.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	return cfg.Build()
}

// DetectSource returns a coarse-grained source tag from a request path.
func DetectSource(path string) string {
	switch {
	case strings.HasPrefix(path, "/static/"):
		return "static"
	case strings.HasPrefix(path, "/contact"):
		return "contact"
	case path == "/healthz":
		return "health"
	default:
		return "page"
	}
}

// StructuredLogger is a middleware that logs every request as one JSON entry.
// Fields: request_id, method, endpoint, path, status, latency_ms, result, source, remote_ip, user_agent
func StructuredLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				// Run the error handler now so the logged status is the one sent.
				c.Error(err)
			}

			rid := requestID(c)
			ep := endpoint(c)
			status := c.Response().Status
			result := "success"
			switch {
			case status >= http.StatusInternalServerError:
				result = "server_error"
			case status >= http.StatusBadRequest:
				result = "client_error"
			}
			log.Info("request",
				zap.String("request_id", rid),
				zap.String("method", c.Request().Method),
				zap.String("endpoint", ep),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Int64("latency_ms", time.Since(start).Milliseconds()),
				zap.String("result", result),
				zap.String("source", DetectSource(ep)),
				zap.String("remote_ip", c.RealIP()),
				zap.String("user_agent", c.Request().UserAgent()),
			)
			return nil
		}
	}
}

// RequestID attaches a random request id if not present and echoes it back.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)
			return next(c)
		}
	}
}

// Recover recovers from panics and returns a structured 500 error.
func Recover(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					ep := endpoint(c)
					log.Error("panic",
						zap.String("request_id", requestID(c)),
						zap.String("endpoint", ep),
						zap.String("source", DetectSource(ep)),
						zap.Int("status", http.StatusInternalServerError),
						zap.Any("panic", r),
						zap.Stack("stack"),
					)
					if c.Response().Committed {
						err = nil
						return
					}
					err = writeError(c, log, http.StatusInternalServerError, "internal_error", "internal server error", nil)
				}
			}()
			return next(c)
		}
	}
}

func requestID(c echo.Context) string {
	rid := c.Response().Header().Get(echo.HeaderXRequestID)
	if rid == "" {
		rid = c.Request().Header.Get(echo.HeaderXRequestID)
	}
	return rid
}

func endpoint(c echo.Context) string {
	if ep := c.Path(); ep != "" {
		return ep
	}
	return c.Request().URL.Path
}
