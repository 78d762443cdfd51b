package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/export-go/internal/domain/model"
	"github.com/guttosm/export-go/internal/service"
)

// auditWriteTimeout bounds the background write of one audit entry.
const auditWriteTimeout = 5 * time.Second

// AuditLog records an action such as a calculation, an admin login or a
// language change. The entry goes through the global AsyncLogger when one is
// running and a one-off goroutine otherwise. A nil service disables auditing.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	writeAudit(loggingService, newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	writeAudit(loggingService, entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}
	// set by JWTAuth on admin routes
	entry.UserEmail = c.GetString(ContextKeyUserEmail)
	entry.UserID = entry.UserEmail
	return entry
}

func writeAudit(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil && asyncLogger.Log(entry) {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		if err := loggingService.CreateLog(ctx, entry); err != nil {
			log.Debug().Err(err).
				Str("action_type", entry.ActionType).
				Str("request_id", entry.RequestID).
				Msg("Failed to store audit entry")
		}
	}()
}
