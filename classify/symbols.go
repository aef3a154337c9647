package classify

import (
	"math/rand"
	"strings"
)

// taskRules is the ordered keyword table for to-do item texts. First
// match wins, like the weather table, but the domains are otherwise
// unrelated.
var taskRules = []struct {
	keyword string
	symbol  string
}{
	// Food and drink
	{"eat", "🍽️"},
	{"food", "🍔"},
	{"cook", "🥘"},
	{"restaurant", "🍣"},
	{"drink", "🍹"},
	{"coffee", "☕"},

	// Activities
	{"walk", "🚶"},
	{"run", "🏃"},
	{"exercise", "💪"},
	{"gym", "🏋️"},
	{"bike", "🚲"},
	{"swim", "🏊"},
	{"hike", "🥾"},

	// Work and study
	{"work", "💼"},
	{"study", "📚"},
	{"meeting", "👥"},
	{"project", "📊"},
	{"report", "📝"},

	// Home and chores
	{"clean", "🧹"},
	{"laundry", "🧺"},
	{"groceries", "🛒"},
	{"garden", "🌱"},

	// Entertainment and leisure
	{"movie", "🎬"},
	{"music", "🎵"},
	{"read", "📖"},
	{"game", "🎮"},
	{"shop", "🛍️"},
	{"art", "🎨"},

	// Travel and outdoors
	{"travel", "✈️"},
	{"trip", "🧳"},
	{"vacation", "🏖️"},
	{"camp", "⛺"},

	// Personal care
	{"sleep", "😴"},
	{"relax", "🧘"},
	{"health", "❤️"},
	{"doctor", "🩺"},

	// Technology
	{"computer", "💻"},
	{"phone", "📱"},
	{"code", "💻"},
	{"email", "📧"},

	// General
	{"plan", "📅"},
	{"buy", "🛒"},
	{"go", "🚀"},
	{"check", "✅"},
}

// fallbackSymbols is the fixed pool used when no task keyword matches.
var fallbackSymbols = []string{
	"🌈", "🌟", "🍀", "🚀", "🔮", "🎲", "🧩", "🌻",
	"🦄", "🍁", "🌍", "🎈", "🦋", "🍄", "🎭",
}

// TaskSymbol returns the decorative symbol for a to-do item text,
// picking a random fallback symbol when no keyword matches.
func TaskSymbol(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range taskRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.symbol
		}
	}
	return fallbackSymbols[rand.Intn(len(fallbackSymbols))]
}
