package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/export-go/internal/domain/dto"
	"github.com/guttosm/export-go/internal/i18n"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout is the maximum duration for request processing.
	Timeout time.Duration
	// SkipPaths are served without a deadline (for example the swagger UI).
	SkipPaths []string
}

// DefaultTimeoutConfig returns the timeout used when REQUEST_TIMEOUT is unset.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout: 10 * time.Second,
	}
}

// Timeout returns a middleware that answers 504 when the handler chain does
// not finish within cfg.Timeout. The request context carries the deadline so
// downstream calls (Mongo queries) are cancelled too. A panic in the chain is
// re-raised on the serving goroutine so Recovery still handles it.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeoutConfig().Timeout
	}
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.FullPath()]; ok {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		var mu sync.Mutex
		var finished bool
		var panicValue any

		done := make(chan struct{})
		go func() {
			defer func() {
				if p := recover(); p != nil {
					panicValue = p
				}
				mu.Lock()
				finished = true
				mu.Unlock()
				close(done)
			}()
			c.Next()
		}()

		select {
		case <-done:
			if panicValue != nil {
				panic(panicValue)
			}
		case <-ctx.Done():
			mu.Lock()
			defer mu.Unlock()
			if finished || c.Writer.Written() {
				return
			}
			message := i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout,
				dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c)))
		}
	}
}

// TimeoutWithDuration is a convenience function to create timeout middleware with a specific duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
