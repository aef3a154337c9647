// Package classify maps free-text condition strings to semantic weather
// categories, and short to-do texts to decorative symbols. Both use
// ordered first-match-wins substring tables; the two tables are
// unrelated domains that only share the matching shape.
package classify

import (
	"strings"
)

// Category is the semantic weather classification derived from
// free-text condition data. It is recomputed on demand, never stored.
type Category int

const (
	Default Category = iota
	Clear
	Cloud
	Rain
	Snow
	Fog
	Thunder
	Wind
	Hot
	Cold
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Clear:
		return "clear"
	case Cloud:
		return "cloud"
	case Rain:
		return "rain"
	case Snow:
		return "snow"
	case Fog:
		return "fog"
	case Thunder:
		return "thunder"
	case Wind:
		return "wind"
	case Hot:
		return "hot"
	case Cold:
		return "cold"
	default:
		return "default"
	}
}

// weatherRules is the ordered keyword table for weather conditions.
// Order is load-bearing: rain and shower come first so any condition
// mentioning them classifies as Rain; thunder and storm precede
// drizzle so "Thunderstorm - light drizzle" classifies as Thunder.
var weatherRules = []struct {
	keyword  string
	category Category
}{
	{"rain", Rain},
	{"shower", Rain},
	{"thunder", Thunder},
	{"storm", Thunder},
	{"drizzle", Rain},
	{"snow", Snow},
	{"clear", Clear},
	{"sunny", Clear},
	{"cloud", Cloud},
	{"mist", Fog},
	{"fog", Fog},
	{"wind", Wind},
	{"hot", Hot},
	{"cold", Cold},
}

// Condition returns the category for a free-text weather condition.
// It is total: any input, including the empty string, yields a
// category, with Default when no keyword matches.
func Condition(text string) Category {
	lower := strings.ToLower(text)
	for _, rule := range weatherRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.category
		}
	}
	return Default
}
