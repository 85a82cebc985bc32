package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopLineImportResult_Succeeded(t *testing.T) {
	tests := []struct {
		name     string
		result   StopLineImportResult
		expected bool
	}{
		{
			name: "stop line created",
			result: StopLineImportResult{
				RequestID: uuid.New(),
				StopLine:  &StopLine{ID: 1, BusStopID: 1, BusLineID: 2},
			},
			expected: true,
		},
		{
			name: "error reported",
			result: StopLineImportResult{
				RequestID: uuid.New(),
				ErrorCode: "DUPLICATE_ASSOCIATION",
				Error:     "stop line already exists",
			},
			expected: false,
		},
		{
			name:     "empty result",
			result:   StopLineImportResult{RequestID: uuid.New()},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.Succeeded())
		})
	}
}

func TestStopLineImportEvent_JSON(t *testing.T) {
	payload := `{"request_id":"6f1c2f2e-7c55-4d7a-9d55-0c3b8a1d2e10","stop_id":3,"line_id":7,"estimated_time":"08:30"}`

	var event StopLineImportEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &event))

	assert.Equal(t, int64(3), event.StopID)
	assert.Equal(t, int64(7), event.LineID)
	require.NotNil(t, event.EstimatedTime)
	assert.Equal(t, "08:30:00", event.EstimatedTime.String())
	assert.Nil(t, event.IsEnabled)
}
