package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/export-go/internal/domain/dto"
	"github.com/guttosm/export-go/internal/i18n"
	"github.com/guttosm/export-go/internal/logger"
)

// ErrorHandler logs errors attached with c.Error and, when the handler has
// not written a response, answers with a translated error body. Bind errors
// become 400; everything else is a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.WithRequest(requestID)
		log.Error().
			Err(err.Err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("error_count", len(c.Errors)).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		status, key := http.StatusInternalServerError, i18n.ErrKeyInternalError
		if err.IsType(gin.ErrorTypeBind) {
			status, key = http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody
		}

		message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
		c.JSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(requestID))
	}
}
