package present

import (
	"weather-companion/classify"
)

// IconID names the decorative icon the UI shell should show.
type IconID string

const IconDefault IconID = "default"

// icons is keyed by category; categories not present fall back to
// IconDefault.
var icons = map[classify.Category]IconID{
	classify.Clear:   "clear",
	classify.Cloud:   "cloud",
	classify.Rain:    "rain",
	classify.Snow:    "snow",
	classify.Fog:     "fog",
	classify.Thunder: "thunder",
}

// symbols is the annotation emoji per category, with a Default entry.
var symbols = map[classify.Category]string{
	classify.Clear:   "☀️",
	classify.Cloud:   "☁️",
	classify.Rain:    "🌧️",
	classify.Snow:    "❄️",
	classify.Fog:     "🌫️",
	classify.Thunder: "⚡",
	classify.Wind:    "💨",
	classify.Hot:     "🔥",
	classify.Cold:    "🧊",
}

const defaultSymbol = "🌤️"

// IconFor returns the icon identifier for a category.
func IconFor(category classify.Category) IconID {
	if icon, ok := icons[category]; ok {
		return icon
	}
	return IconDefault
}

// SymbolFor returns the annotation emoji for a category.
func SymbolFor(category classify.Category) string {
	if symbol, ok := symbols[category]; ok {
		return symbol
	}
	return defaultSymbol
}
