package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/export-go/internal/i18n"
)

// Locale resolves the visitor's language once per request and stores it on
// the context, so handlers and error responses agree on it.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		i18n.SetLocale(c, i18n.GetLocale(c))
		c.Next()
	}
}
