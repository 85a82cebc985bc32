package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{input: "08:00", expected: "08:00:00"},
		{input: "08:30:15", expected: "08:30:15"},
		{input: "23:59:59", expected: "23:59:59"},
		{input: "00:00", expected: "00:00:00"},
		{input: " 07:05 ", expected: "07:05:00"},
		{input: "12:00:00.250000", expected: "12:00:00"},
		{input: "24:00", wantErr: true},
		{input: "8", wantErr: true},
		{input: "ab:cd", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
			assert.True(t, got.Valid())
		})
	}
}

func TestTimeOfDay_Within(t *testing.T) {
	eight := MustParseTimeOfDay("08:00")
	eightThirty := MustParseTimeOfDay("08:30")
	nine := MustParseTimeOfDay("09:00")

	assert.True(t, eight.Within(eight, eightThirty), "lower bound is inclusive")
	assert.True(t, eightThirty.Within(eight, eightThirty), "upper bound is inclusive")
	assert.False(t, nine.Within(eight, eightThirty))

	// inverted bounds never wrap around midnight
	assert.False(t, eight.Within(nine, eightThirty))
	assert.False(t, MustParseTimeOfDay("23:30").Within(MustParseTimeOfDay("23:00"), MustParseTimeOfDay("01:00")))
}

func TestTimeOfDay_JSON(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"17:45"`), &tod))
	assert.Equal(t, 17, tod.Hour())
	assert.Equal(t, 45, tod.Minute())

	data, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.JSONEq(t, `"17:45:00"`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`1745`), &tod))
	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &tod))
}

func TestTimeOfDay_Scan(t *testing.T) {
	var tod TimeOfDay

	require.NoError(t, tod.Scan("06:15:00"))
	assert.Equal(t, "06:15:00", tod.String())

	require.NoError(t, tod.Scan([]byte("21:00:30")))
	assert.Equal(t, "21:00:30", tod.String())

	require.NoError(t, tod.Scan(time.Date(0, 1, 1, 13, 5, 9, 0, time.UTC)))
	assert.Equal(t, "13:05:09", tod.String())

	require.NoError(t, tod.Scan(int64(3600*1000000)))
	assert.Equal(t, "01:00:00", tod.String())

	assert.Error(t, tod.Scan(nil))
	assert.Error(t, tod.Scan(3.14))

	value, err := MustParseTimeOfDay("10:20").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:20:00", value)
}

func TestDate_JSONAndScan(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15"`), &d))
	assert.Equal(t, "2024-03-15", d.String())

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-15"`, string(data))

	require.NoError(t, d.Scan(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-12-01", d.String())

	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &d))
}
