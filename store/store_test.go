package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "weather_data.json"))
}

func TestLoadMissingFileIsEmptyDocument(t *testing.T) {
	doc, err := newTestStore(t).Load()
	require.NoError(t, err)
	assert.Equal(t, Document{}, doc)
}

func TestSaveWeatherRoundTrip(t *testing.T) {
	st := newTestStore(t)

	rec := WeatherRecord{
		City:           "Paris",
		CurrentWeather: "🌡 Temperature: 32.5°C\n💧 Humidity: 10%\n",
		Forecast:       "📅 Forecast:\n",
		AirPollution:   "",
	}
	require.NoError(t, st.SaveWeather(rec))

	doc, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, rec, doc.Weather)
}

func TestMutationsPreserveOtherSections(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveWeather(WeatherRecord{City: "Paris"}))
	require.NoError(t, st.SaveSuggestions([]string{"☔ Bring an umbrella"}))
	require.NoError(t, st.SaveTodos([]string{"🍽️ eat lunch"}))

	// Each save was a whole-document read-modify-write; nothing got
	// clobbered along the way.
	doc, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "Paris", doc.Weather.City)
	assert.Equal(t, []string{"☔ Bring an umbrella"}, doc.Suggestions)
	assert.Equal(t, []string{"🍽️ eat lunch"}, doc.TodoItems)
}

func TestSaveOverwritesSection(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveTodos([]string{"one", "two"}))
	require.NoError(t, st.SaveTodos([]string{"three"}))

	doc, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"three"}, doc.TodoItems)
}

func TestDocumentIsIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather_data.json")
	st := New(path)
	require.NoError(t, st.SaveWeather(WeatherRecord{City: "Paris"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"weather\"")
}

func TestLoadCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(path).Load()
	assert.Error(t, err)
}
