package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/export-go/internal/metrics"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute
	// IdempotencyMaxEntries bounds the number of cached responses.
	IdempotencyMaxEntries = 10000
	// maxIdempotencyKeyLength rejects absurd keys before hashing the body.
	maxIdempotencyKeyLength = 255
)

// cachedResponse stores a cached HTTP response for idempotency.
type cachedResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Timestamp  time.Time
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *IdempotencyCache
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   NewIdempotencyCache(IdempotencyKeyTTL, IdempotencyMaxEntries),
		Enabled: true,
	}
}

// Idempotency replays the stored response of a POST, PUT or PATCH that
// carries an Idempotency-Key already seen with the same method, path and
// body. Successful and 422 responses are stored; both are deterministic for
// a given body.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || len(key) > maxIdempotencyKeyLength {
			c.Next()
			return
		}

		cacheKey, err := generateCacheKey(key, c.Request)
		if err != nil {
			c.Next()
			return
		}

		if cached, ok := cfg.Cache.Get(cacheKey); ok {
			metrics.RecordIdempotencyOperation("lookup", "hit")
			for k, values := range cached.Headers {
				c.Writer.Header()[k] = append([]string(nil), values...)
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.Headers.Get("Content-Type"), cached.Body)
			c.Abort()
			return
		}
		metrics.RecordIdempotencyOperation("lookup", "miss")

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if (status >= 200 && status < 300) || status == http.StatusUnprocessableEntity {
			cfg.Cache.Set(cacheKey, &cachedResponse{
				StatusCode: status,
				Headers:    cacheableHeaders(writer.Header()),
				Body:       writer.body.Bytes(),
			})
			metrics.RecordIdempotencyOperation("store", "ok")
		}
	}
}

// generateCacheKey hashes the idempotency key with the method, path and body.
// The body is restored so handlers can still read it.
func generateCacheKey(idempotencyKey string, req *http.Request) (string, error) {
	hasher := sha256.New()
	hasher.Write([]byte(idempotencyKey))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.Method))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.URL.Path))
	hasher.Write([]byte{0})

	if req.Body != nil {
		bodyBytes, err := io.ReadAll(req.Body)
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		hasher.Write(bodyBytes)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// replayedHeaders are the response headers stored with a cached body. The
// rest (request id, CORS, compression) is set again by the middleware chain.
var replayedHeaders = []string{"Content-Type", "Content-Language", "Cache-Control", "Set-Cookie"}

func cacheableHeaders(h http.Header) http.Header {
	out := make(http.Header, len(replayedHeaders))
	for _, k := range replayedHeaders {
		if values := h.Values(k); len(values) > 0 {
			out[k] = append([]string(nil), values...)
		}
	}
	return out
}

// responseWriter captures the response body for caching.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
