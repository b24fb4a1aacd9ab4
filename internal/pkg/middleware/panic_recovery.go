package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/logger"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics
// and logs them with stack traces and New Relic error reporting
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())

	method := c.Request().Method
	path := c.Request().URL.Path
	clientIP := c.RealIP()
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.value":    fmt.Sprintf("%v", r),
				"panic.type":     fmt.Sprintf("%T", r),
				"http.method":    method,
				"http.path":      path,
				"http.client_ip": clientIP,
				"request_id":     requestID,
			},
		})
	}

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", stackTrace),
		logger.String("method", method),
		logger.String("path", path),
		logger.String("client_ip", clientIP),
		logger.String("request_id", requestID),
	)

	if !c.Response().Committed {
		err := c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":      "Internal Server Error",
			"request_id": requestID,
		})
		if err != nil {
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
