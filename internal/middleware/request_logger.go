package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/export-go/internal/domain/model"
	"github.com/guttosm/export-go/internal/logger"
	"github.com/guttosm/export-go/internal/service"
)

// RequestLogger returns a middleware that writes one structured log line per
// request and, when loggingService is set, stores the entry in the log sink.
// Requests to skipPaths (probes, metrics scrapes) are not logged at all.
func RequestLogger(loggingService service.LoggingService, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		entry := &model.LogEntry{
			Timestamp:  start.UTC(),
			Level:      getLogLevel(c.Writer.Status()),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			UserEmail:  c.GetString(ContextKeyUserEmail),
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.String()
		}

		log := logger.WithRequest(entry.RequestID)
		event := log.Info()
		switch entry.Level {
		case "error":
			event = log.Error()
		case "warn":
			event = log.Warn()
		}
		event.
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", entry.StatusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("user_agent", entry.UserAgent).
			Msg("HTTP request")

		if loggingService == nil {
			return
		}
		if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
			asyncLogger.Log(entry)
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = loggingService.CreateLog(ctx, entry)
		}()
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
