package normalize

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-companion/datasource"
)

func currentPayload(t *testing.T) *datasource.CurrentPayload {
	t.Helper()
	var payload datasource.CurrentPayload
	err := json.Unmarshal([]byte(`{
		"coord": {"lat": 48.85, "lon": 2.35},
		"main": {"temp": 32.5, "humidity": 10},
		"wind": {"speed": 12},
		"weather": [{"main": "Clear", "description": "clear sky"}],
		"name": "Paris"
	}`), &payload)
	require.NoError(t, err)
	return &payload
}

// forecastPayload builds a provider list of n 3-hour steps with
// distinct timestamps so sampling positions are visible.
func forecastPayload(t *testing.T, n int) *datasource.ForecastPayload {
	t.Helper()
	items := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			items += ","
		}
		items += fmt.Sprintf(`{"main": {"temp": %d}, "weather": [{"main": "Clouds", "description": "few clouds"}], "dt_txt": "item-%d"}`, i, i)
	}
	var payload datasource.ForecastPayload
	err := json.Unmarshal([]byte(`{"list": [`+items+`]}`), &payload)
	require.NoError(t, err)
	return &payload
}

func pollutionPayload(t *testing.T) *datasource.PollutionPayload {
	t.Helper()
	var payload datasource.PollutionPayload
	err := json.Unmarshal([]byte(`{
		"list": [{"components": {"co": 201.94, "no2": 13.9, "so2": 2.1, "pm2_5": 8.85}}]
	}`), &payload)
	require.NoError(t, err)
	return &payload
}

func TestSnapshotFields(t *testing.T) {
	snapshot, err := Snapshot("Paris", currentPayload(t), forecastPayload(t, 40), pollutionPayload(t))
	require.NoError(t, err)

	assert.Equal(t, "Paris", snapshot.City)
	assert.Equal(t, 32.5, snapshot.TemperatureC)
	assert.Equal(t, 10, snapshot.HumidityPct)
	assert.Equal(t, 12.0, snapshot.WindSpeedMS)
	assert.Equal(t, "Clear - clear sky", snapshot.ConditionText)

	require.NotNil(t, snapshot.Pollutants)
	assert.Equal(t, 201.94, snapshot.Pollutants.CO)
	assert.Equal(t, 13.9, snapshot.Pollutants.NO2)
	assert.Equal(t, 2.1, snapshot.Pollutants.SO2)
	assert.Equal(t, 8.85, snapshot.Pollutants.PM25)
}

func TestSnapshotSamplesEveryEighthEntry(t *testing.T) {
	snapshot, err := Snapshot("Paris", currentPayload(t), forecastPayload(t, 40), nil)
	require.NoError(t, err)

	require.Len(t, snapshot.Forecast, 5)
	for i, entry := range snapshot.Forecast {
		assert.Equal(t, fmt.Sprintf("item-%d", i*8), entry.Timestamp)
		assert.Equal(t, float64(i*8), entry.TemperatureC)
	}
}

func TestSnapshotShortForecastList(t *testing.T) {
	// Fewer than 8 elements leaves exactly one entry and never
	// overruns the list.
	snapshot, err := Snapshot("Paris", currentPayload(t), forecastPayload(t, 3), nil)
	require.NoError(t, err)

	require.Len(t, snapshot.Forecast, 1)
	assert.Equal(t, "item-0", snapshot.Forecast[0].Timestamp)
}

func TestSnapshotPartialSampling(t *testing.T) {
	// 20 elements cover indices 0, 8, and 16 only.
	snapshot, err := Snapshot("Paris", currentPayload(t), forecastPayload(t, 20), nil)
	require.NoError(t, err)
	require.Len(t, snapshot.Forecast, 3)
}

func TestSnapshotAbsentPollution(t *testing.T) {
	snapshot, err := Snapshot("Paris", currentPayload(t), forecastPayload(t, 9), nil)
	require.NoError(t, err)
	assert.Nil(t, snapshot.Pollutants)
}

func TestSnapshotEmptyPollutionListIsAbsent(t *testing.T) {
	var empty datasource.PollutionPayload
	snapshot, err := Snapshot("Paris", currentPayload(t), forecastPayload(t, 9), &empty)
	require.NoError(t, err)
	assert.Nil(t, snapshot.Pollutants)
}

func TestSnapshotMissingConditionIsMalformed(t *testing.T) {
	current := currentPayload(t)
	current.Weather = nil

	_, err := Snapshot("Paris", current, forecastPayload(t, 9), nil)
	require.Error(t, err)
	assert.Equal(t, datasource.KindMalformedPayload, datasource.Kind(err))
}

func TestSnapshotEmptyForecastIsMalformed(t *testing.T) {
	var empty datasource.ForecastPayload
	_, err := Snapshot("Paris", currentPayload(t), &empty, nil)
	require.Error(t, err)
	assert.Equal(t, datasource.KindMalformedPayload, datasource.Kind(err))
}
