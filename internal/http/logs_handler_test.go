//go:build !integration

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/export-go/internal/circuitbreaker"
	"github.com/guttosm/export-go/internal/domain/dto"
	"github.com/guttosm/export-go/internal/domain/model"
	"github.com/guttosm/export-go/internal/mocks"
)

// newLogsRouter mounts the handler without JWT so the query parsing can be
// tested on its own.
func newLogsRouter(handler *LogsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/admin/logs", handler.Query)
	return router
}

func TestLogsHandler_Query(t *testing.T) {
	start := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	entries := []model.LogEntry{
		{Timestamp: start, Level: "info", Message: "Calculation completed", ActionType: model.ActionCalculate},
	}

	tests := []struct {
		name           string
		query          string
		setupMock      func(m *mocks.MockLoggingService)
		expectedStatus int
		expectedLimit  int
		expectedSkip   int
		expectedTotal  int64
		invalidParams  []string
	}{
		{
			name:  "defaults",
			query: "",
			setupMock: func(m *mocks.MockLoggingService) {
				m.On("QueryLogs", mock.Anything, mock.MatchedBy(func(o model.LogQueryOptions) bool {
					return o.Limit == 50 && o.Skip == 0 && o.StartTime == nil
				})).Return(entries, nil)
				m.On("CountLogs", mock.Anything, mock.Anything).Return(int64(42), nil)
			},
			expectedStatus: http.StatusOK,
			expectedLimit:  50,
			expectedTotal:  42,
		},
		{
			name:  "filters are normalized",
			query: "?level=ERROR&method=post&action_type=calculate&limit=10&skip=20&start=2026-01-28T10:00:00Z&end=2026-01-28T12:00:00%2B02:00",
			setupMock: func(m *mocks.MockLoggingService) {
				m.On("QueryLogs", mock.Anything, mock.MatchedBy(func(o model.LogQueryOptions) bool {
					return o.Level == "error" &&
						o.Method == http.MethodPost &&
						o.ActionType == model.ActionCalculate &&
						o.Limit == 10 && o.Skip == 20 &&
						o.StartTime != nil && o.StartTime.Equal(start) &&
						o.EndTime != nil && o.EndTime.Equal(start) &&
						o.EndTime.Location() == time.UTC
				})).Return(entries, nil)
				m.On("CountLogs", mock.Anything, mock.Anything).Return(int64(21), nil)
			},
			expectedStatus: http.StatusOK,
			expectedLimit:  10,
			expectedSkip:   20,
			expectedTotal:  21,
		},
		{
			name:  "empty result is an empty list",
			query: "?request_id=unknown",
			setupMock: func(m *mocks.MockLoggingService) {
				m.On("QueryLogs", mock.Anything, mock.Anything).Return(nil, nil)
				m.On("CountLogs", mock.Anything, mock.Anything).Return(int64(0), nil)
			},
			expectedStatus: http.StatusOK,
			expectedLimit:  50,
		},
		{
			name:           "every invalid parameter is reported",
			query:          "?limit=0&skip=-1&start=yesterday&end=tomorrow",
			setupMock:      func(m *mocks.MockLoggingService) {},
			expectedStatus: http.StatusBadRequest,
			invalidParams:  []string{"limit", "skip", "start", "end"},
		},
		{
			name:           "limit above maximum",
			query:          "?limit=501",
			setupMock:      func(m *mocks.MockLoggingService) {},
			expectedStatus: http.StatusBadRequest,
			invalidParams:  []string{"limit"},
		},
		{
			name:           "end before start",
			query:          "?start=2026-01-28T10:00:00Z&end=2026-01-28T09:00:00Z",
			setupMock:      func(m *mocks.MockLoggingService) {},
			expectedStatus: http.StatusBadRequest,
			invalidParams:  []string{"end"},
		},
		{
			name:  "open circuit",
			query: "",
			setupMock: func(m *mocks.MockLoggingService) {
				m.On("QueryLogs", mock.Anything, mock.Anything).Return(nil, circuitbreaker.ErrCircuitOpen)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:  "storage failure",
			query: "",
			setupMock: func(m *mocks.MockLoggingService) {
				m.On("QueryLogs", mock.Anything, mock.Anything).Return(entries, nil)
				m.On("CountLogs", mock.Anything, mock.Anything).Return(int64(0), errors.New("cursor killed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loggingService := mocks.NewMockLoggingService(t)
			tt.setupMock(loggingService)
			router := newLogsRouter(NewLogsHandler(loggingService))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/logs"+tt.query, nil))
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			switch tt.expectedStatus {
			case http.StatusOK:
				resp := decodeData[dto.LogsResponse](t, w)
				assert.Equal(t, tt.expectedLimit, resp.Limit)
				assert.Equal(t, tt.expectedSkip, resp.Skip)
				assert.Equal(t, tt.expectedTotal, resp.Total)
				assert.Equal(t, len(resp.Logs), resp.Count)
				assert.NotNil(t, resp.Logs)
			case http.StatusBadRequest:
				errResp := decodeError(t, w)
				assert.Len(t, errResp.Details, len(tt.invalidParams))
				for _, p := range tt.invalidParams {
					assert.Contains(t, errResp.Details, p)
				}
			}
		})
	}
}

func TestLogsHandler_Query_NoLoggingService(t *testing.T) {
	router := newLogsRouter(NewLogsHandler(nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/logs", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, dto.ErrCodeUnavailable, decodeError(t, w).Error)
}

func TestLogsHandler_RequiresToken(t *testing.T) {
	authService := mocks.NewMockAuthService(t)
	router := newTestRouter(t, func(cfg *RouterConfig) {
		cfg.AuthService = authService
	})

	w := doJSON(t, router, http.MethodGet, "/api/admin/logs", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
