package present

import (
	"weather-companion/classify"
)

// RGB is a simple 8-bit color triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Theme holds the color set the UI shell applies for a weather category.
type Theme struct {
	Background RGB `json:"background"`
	Foreground RGB `json:"foreground"`
	Accent     RGB `json:"accent"`
}

// defaultTheme is used for every category without a richer entry.
var defaultTheme = Theme{
	Background: RGB{238, 238, 238},
	Foreground: RGB{51, 51, 51},
	Accent:     RGB{0, 120, 215},
}

// themes is keyed by category; categories not present fall back to
// defaultTheme.
var themes = map[classify.Category]Theme{
	classify.Rain: {
		Background: RGB{220, 230, 240},
		Foreground: RGB{40, 50, 60},
		Accent:     RGB{30, 144, 255},
	},
	classify.Snow: {
		Background: RGB{245, 245, 255},
		Foreground: RGB{70, 70, 90},
		Accent:     RGB{120, 150, 230},
	},
	classify.Clear: {
		Background: RGB{255, 250, 230},
		Foreground: RGB{23, 22, 21},
		Accent:     RGB{253, 227, 5},
	},
	classify.Cloud: {
		Background: RGB{240, 240, 245},
		Foreground: RGB{60, 60, 70},
		Accent:     RGB{140, 160, 190},
	},
	classify.Fog: {
		Background: RGB{230, 230, 230},
		Foreground: RGB{80, 80, 80},
		Accent:     RGB{180, 180, 190},
	},
}

// ThemeFor returns the color theme for a category.
func ThemeFor(category classify.Category) Theme {
	if theme, ok := themes[category]; ok {
		return theme
	}
	return defaultTheme
}
