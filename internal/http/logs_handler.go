package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/export-go/internal/circuitbreaker"
	"github.com/guttosm/export-go/internal/domain/dto"
	"github.com/guttosm/export-go/internal/domain/model"
	"github.com/guttosm/export-go/internal/i18n"
	"github.com/guttosm/export-go/internal/service"
)

const (
	defaultLogsLimit = 50
	maxLogsLimit     = 500
)

// LogsHandler exposes the stored request and audit logs to the admin.
type LogsHandler struct {
	loggingService service.LoggingService
}

// NewLogsHandler creates a logs handler. With a nil service every request
// answers 503.
func NewLogsHandler(loggingService service.LoggingService) *LogsHandler {
	return &LogsHandler{loggingService: loggingService}
}

// Query handles GET /api/admin/logs.
//
// @Summary      Query stored logs
// @Description  Lists request and audit logs, newest first. Requires MongoDB.
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        level query string false "Log level" Enums(info, warn, error)
// @Param        action_type query string false "Audit action" Enums(calculate, login, language_change)
// @Param        method query string false "HTTP method"
// @Param        path query string false "Path substring, case-insensitive"
// @Param        request_id query string false "Request ID"
// @Param        start query string false "RFC 3339 lower bound"
// @Param        end query string false "RFC 3339 upper bound"
// @Param        limit query int false "Page size, 1-500" default(50)
// @Param        skip query int false "Entries to skip" default(0)
// @Success      200 {object} dto.SuccessResponse{data=dto.LogsResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid query parameter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      503 {object} dto.ErrorResponse "Log storage is not configured"
// @Security     BearerAuth
// @Router       /api/admin/logs [get]
func (h *LogsHandler) Query(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.loggingService == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, nil)
		return
	}

	opts, details := parseLogQuery(c)
	if len(details) > 0 {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, details, nil)
		return
	}

	ctx := c.Request.Context()
	entries, err := h.loggingService.QueryLogs(ctx, opts)
	if err != nil {
		h.storageError(builder, err)
		return
	}
	total, err := h.loggingService.CountLogs(ctx, opts)
	if err != nil {
		h.storageError(builder, err)
		return
	}

	if entries == nil {
		entries = []model.LogEntry{}
	}
	builder.SuccessOK(dto.LogsResponse{
		Count: len(entries),
		Total: total,
		Limit: opts.Limit,
		Skip:  opts.Skip,
		Logs:  entries,
	})
}

func (h *LogsHandler) storageError(builder *ResponseBuilder, err error) {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}

// parseLogQuery reads the filter from the query string. Every invalid
// parameter is reported.
func parseLogQuery(c *gin.Context) (model.LogQueryOptions, map[string]string) {
	opts := model.LogQueryOptions{
		Level:      strings.ToLower(strings.TrimSpace(c.Query("level"))),
		ActionType: strings.TrimSpace(c.Query("action_type")),
		Method:     strings.ToUpper(strings.TrimSpace(c.Query("method"))),
		Path:       strings.TrimSpace(c.Query("path")),
		RequestID:  strings.TrimSpace(c.Query("request_id")),
		Limit:      defaultLogsLimit,
	}
	details := make(map[string]string)

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxLogsLimit {
			details["limit"] = "must be an integer between 1 and " + strconv.Itoa(maxLogsLimit)
		} else {
			opts.Limit = n
		}
	}
	if v := c.Query("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			details["skip"] = "must be a non-negative integer"
		} else {
			opts.Skip = n
		}
	}
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"start", &opts.StartTime},
		{"end", &opts.EndTime},
	} {
		v := c.Query(p.name)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			details[p.name] = "must be an RFC 3339 timestamp"
			continue
		}
		t = t.UTC()
		*p.dst = &t
	}
	if opts.StartTime != nil && opts.EndTime != nil && opts.EndTime.Before(*opts.StartTime) {
		details["end"] = "must not be before start"
	}

	return opts, details
}
