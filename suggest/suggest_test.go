package suggest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-companion/classify"
	"weather-companion/models"
)

func snapshot(tempC, windMS float64) models.WeatherSnapshot {
	return models.WeatherSnapshot{
		City:         "Paris",
		TemperatureC: tempC,
		WindSpeedMS:  windMS,
	}
}

func TestTemperatureBandsAreMutuallyExclusive(t *testing.T) {
	got := ForSnapshot(snapshot(31, 2), classify.Default)

	assert.Contains(t, got, "🧊 Stay in shade and cool areas")
	assert.Contains(t, got, "🧴 Apply sunscreen regularly")
	assert.Contains(t, got, "🏊 Consider swimming if possible")

	// No other band may leak in.
	assert.NotContains(t, got, "🏞️ Nice weather for outdoor activities")
	assert.NotContains(t, got, "🧣 Bundle up with warm clothes")
	assert.NotContains(t, got, "🧥 Wear a light jacket")
}

func TestTemperatureBandBoundaries(t *testing.T) {
	tests := []struct {
		tempC float64
		want  string
	}{
		{30.1, "🧊 Stay in shade and cool areas"},
		{27, "🏞️ Nice weather for outdoor activities"},
		{4.9, "🧣 Bundle up with warm clothes"},
		{10, "🧥 Wear a light jacket"},
	}
	for _, tt := range tests {
		got := ForSnapshot(snapshot(tt.tempC, 2), classify.Default)
		assert.Contains(t, got, tt.want, "tempC %v", tt.tempC)
	}

	// 15-25 fires no temperature band at all.
	mild := ForSnapshot(snapshot(20, 2), classify.Default)
	for _, s := range mild {
		assert.NotContains(t, []string{
			"🧊 Stay in shade and cool areas",
			"🏞️ Nice weather for outdoor activities",
			"🧣 Bundle up with warm clothes",
			"🧥 Wear a light jacket",
		}, s)
	}
}

func TestWindBands(t *testing.T) {
	strong := ForSnapshot(snapshot(20, 11), classify.Default)
	assert.Contains(t, strong, "🪁 Secure loose items outdoors")
	assert.Contains(t, strong, "🌪️ Be cautious of strong winds")

	moderate := ForSnapshot(snapshot(20, 7), classify.Default)
	assert.Contains(t, moderate, "🧥 Wear windproof clothing")
	assert.NotContains(t, moderate, "🌪️ Be cautious of strong winds")

	calm := ForSnapshot(snapshot(20, 2), classify.Default)
	assert.Contains(t, calm, "🌬️ Be aware of wind conditions")
}

func TestTrailingSuggestionsAlwaysLast(t *testing.T) {
	for _, category := range []classify.Category{classify.Default, classify.Rain, classify.Snow, classify.Clear} {
		got := ForSnapshot(snapshot(31, 12), category)
		require.GreaterOrEqual(t, len(got), 2)
		assert.Equal(t, "📅 Plan activities according to weather", got[len(got)-2])
		assert.Equal(t, "📱 Check updates for weather changes", got[len(got)-1])
	}
}

func TestClearHotWindyScenarioOrder(t *testing.T) {
	// Clear category set, then the >30 band, then the >10 wind set,
	// then the trailing lines, in that fixed order.
	got := ForSnapshot(snapshot(32.5, 12), classify.Clear)

	want := []string{
		"😎 Wear sunglasses and sunscreen",
		"🏖️ Great day for outdoor activities",
		"🥤 Stay hydrated",
		"🧊 Stay in shade and cool areas",
		"🧴 Apply sunscreen regularly",
		"🏊 Consider swimming if possible",
		"🪁 Secure loose items outdoors",
		"🌪️ Be cautious of strong winds",
		"📅 Plan activities according to weather",
		"📱 Check updates for weather changes",
	}
	assert.Equal(t, want, got)
}

func TestRebuiltFromScratchEachCall(t *testing.T) {
	first := ForSnapshot(snapshot(31, 12), classify.Rain)
	second := ForSnapshot(snapshot(31, 12), classify.Rain)
	assert.Equal(t, first, second)
}

func TestNonFiniteInputsFallBackGenerically(t *testing.T) {
	got := ForSnapshot(snapshot(math.NaN(), math.Inf(1)), classify.Default)

	assert.Contains(t, got, "📱 Check weather updates regularly")
	assert.Contains(t, got, "🌬️ Be aware of wind conditions")
	assert.Equal(t, "📱 Check updates for weather changes", got[len(got)-1])
}

func TestCategoryRules(t *testing.T) {
	rain := ForSnapshot(snapshot(20, 2), classify.Rain)
	assert.Contains(t, rain, "☔ Bring an umbrella")
	assert.Contains(t, rain, "🧥 Wear waterproof clothing")
	assert.Contains(t, rain, "🏠 Indoor activities recommended")

	fog := ForSnapshot(snapshot(20, 2), classify.Fog)
	assert.Contains(t, fog, "🚗 Drive carefully - reduced visibility")
	assert.Contains(t, fog, "🔦 Use fog lights when driving")

	// Categories without a rule contribute nothing before the numeric
	// rules.
	wind := ForSnapshot(snapshot(20, 2), classify.Wind)
	assert.Equal(t, "🪁 Secure loose items outdoors", wind[0])
}
