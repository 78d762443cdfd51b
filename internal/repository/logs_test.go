//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestLogQueryOptions_Filter(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	tests := []struct {
		name     string
		opts     LogQueryOptions
		expected bson.M
	}{
		{
			name:     "no filters",
			opts:     LogQueryOptions{},
			expected: bson.M{},
		},
		{
			name: "exact matches",
			opts: LogQueryOptions{RequestID: "req-1", ActionType: "calculate", Level: "info", Method: "POST"},
			expected: bson.M{
				"request_id":  "req-1",
				"action_type": "calculate",
				"level":       "info",
				"method":      "POST",
			},
		},
		{
			name:     "path is an escaped substring match",
			opts:     LogQueryOptions{Path: "/api/site/panels/:group"},
			expected: bson.M{"path": bson.M{"$regex": `/api/site/panels/:group`, "$options": "i"}},
		},
		{
			name:     "regex metacharacters are escaped",
			opts:     LogQueryOptions{Path: "calculator.html?"},
			expected: bson.M{"path": bson.M{"$regex": `calculator\.html\?`, "$options": "i"}},
		},
		{
			name:     "time range",
			opts:     LogQueryOptions{StartTime: &start, EndTime: &end},
			expected: bson.M{"timestamp": bson.M{"$gte": start, "$lte": end}},
		},
		{
			name:     "open ended range",
			opts:     LogQueryOptions{StartTime: &start},
			expected: bson.M{"timestamp": bson.M{"$gte": start}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.filter())
		})
	}
}

func TestLogQueryOptions_Limit(t *testing.T) {
	assert.Equal(t, int64(MaxQueryLimit), LogQueryOptions{}.limit())
	assert.Equal(t, int64(MaxQueryLimit), LogQueryOptions{Limit: -1}.limit())
	assert.Equal(t, int64(MaxQueryLimit), LogQueryOptions{Limit: MaxQueryLimit + 1}.limit())
	assert.Equal(t, int64(25), LogQueryOptions{Limit: 25}.limit())
}

func TestPrepare(t *testing.T) {
	entry := &LogEntryDocument{}
	prepare(entry)

	assert.False(t, entry.ID.IsZero())
	assert.WithinDuration(t, time.Now(), entry.Timestamp, time.Second)

	id, ts := entry.ID, entry.Timestamp
	prepare(entry)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, ts, entry.Timestamp)
}
