// Package suggest derives activity suggestions from a weather snapshot
// by evaluating a fixed list of independent rules. The output is
// rebuilt from empty on every call and never merged with prior
// suggestions.
package suggest

import (
	"math"

	"weather-companion/classify"
	"weather-companion/models"
)

// genericFallback stands in for one numeric rule whose input turned
// out to be unusable, instead of aborting suggestion generation.
const genericFallback = "📱 Check weather updates regularly"

var categorySuggestions = map[classify.Category][]string{
	classify.Rain: {
		"☔ Bring an umbrella",
		"🧥 Wear waterproof clothing",
		"🏠 Indoor activities recommended",
	},
	classify.Snow: {
		"🧤 Wear warm gloves and hat",
		"🧣 Dress in layers for warmth",
		"⛄ Good day for winter activities",
	},
	classify.Clear: {
		"😎 Wear sunglasses and sunscreen",
		"🏖️ Great day for outdoor activities",
		"🥤 Stay hydrated",
	},
	classify.Cloud: {
		"📸 Good lighting for photography",
		"🚶 Pleasant day for walking",
	},
	classify.Fog: {
		"🚗 Drive carefully - reduced visibility",
		"🔦 Use fog lights when driving",
	},
}

var trailingSuggestions = []string{
	"📅 Plan activities according to weather",
	"📱 Check updates for weather changes",
}

// ForSnapshot produces the ordered suggestion list for a snapshot and
// its category: category rules first, then the temperature band, then
// the wind rule, then the two unconditional trailing suggestions.
// Thresholds read the snapshot's numeric fields directly; generated
// display text is never re-parsed.
func ForSnapshot(s models.WeatherSnapshot, category classify.Category) []string {
	var out []string

	out = append(out, categorySuggestions[category]...)
	out = append(out, temperatureSuggestions(s.TemperatureC)...)
	out = append(out, windSuggestions(s.WindSpeedMS)...)
	out = append(out, trailingSuggestions...)

	return out
}

// temperatureSuggestions evaluates the mutually exclusive temperature
// bands against degrees Celsius.
func temperatureSuggestions(tempC float64) []string {
	if math.IsNaN(tempC) || math.IsInf(tempC, 0) {
		return []string{genericFallback}
	}

	switch {
	case tempC > 30:
		return []string{
			"🧊 Stay in shade and cool areas",
			"🧴 Apply sunscreen regularly",
			"🏊 Consider swimming if possible",
		}
	case tempC > 25:
		return []string{
			"🏞️ Nice weather for outdoor activities",
			"🧢 Wear a hat for sun protection",
		}
	case tempC < 5:
		return []string{
			"🧣 Bundle up with warm clothes",
			"☕ Enjoy hot drinks",
		}
	case tempC < 15:
		return []string{"🧥 Wear a light jacket"}
	default:
		return nil
	}
}

// windSuggestions evaluates the wind bands against meters per second.
// Calm wind still yields the generic awareness line.
func windSuggestions(speedMS float64) []string {
	if math.IsNaN(speedMS) || math.IsInf(speedMS, 0) {
		return []string{"🌬️ Be aware of wind conditions"}
	}

	out := []string{"🪁 Secure loose items outdoors"}
	switch {
	case speedMS > 10:
		out = append(out, "🌪️ Be cautious of strong winds")
	case speedMS > 5:
		out = append(out, "🧥 Wear windproof clothing")
	default:
		out = append(out, "🌬️ Be aware of wind conditions")
	}
	return out
}
