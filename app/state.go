package app

import (
	"strings"

	"weather-companion/classify"
	"weather-companion/present"
	"weather-companion/store"
)

// State is the display state owned by the presentation layer. It has
// value semantics: every operation returns a new State instead of
// mutating shared fields.
type State struct {
	City        string
	Summary     string
	Icon        present.IconID
	Theme       present.Theme
	Suggestions []string
	Todos       []string
}

// FromDocument rebuilds the state shown on startup from the persisted
// document. The category is recovered by re-classifying the condition
// line of the saved weather text.
func FromDocument(doc store.Document) State {
	state := State{
		Icon:        present.IconDefault,
		Theme:       present.ThemeFor(classify.Default),
		Suggestions: append([]string(nil), doc.Suggestions...),
		Todos:       append([]string(nil), doc.TodoItems...),
	}

	if doc.Weather.City == "" {
		return state
	}

	category := classify.Condition(savedCondition(doc.Weather.CurrentWeather))
	state.City = doc.Weather.City
	state.Summary = present.Summary(doc.Weather.City, doc.Weather.CurrentWeather, doc.Weather.Forecast, doc.Weather.AirPollution)
	state.Icon = present.IconFor(category)
	state.Theme = present.ThemeFor(category)
	return state
}

// Apply folds a fetch result into the state, keeping the to-do list.
func (s State) Apply(result Result) State {
	next := s
	next.City = result.City
	next.Summary = result.Rendering.Summary
	next.Icon = result.Rendering.Icon
	next.Theme = result.Rendering.Theme
	next.Suggestions = append([]string(nil), result.Suggestions...)
	return next
}

// AddTodo appends a to-do item prefixed with its classified symbol.
// Blank input is ignored.
func (s State) AddTodo(text string) State {
	text = strings.TrimSpace(text)
	if text == "" {
		return s
	}
	next := s
	next.Todos = append(append([]string(nil), s.Todos...), classify.TaskSymbol(text)+" "+text)
	return next
}

// RemoveTodo drops the to-do item at index; out-of-range is a no-op.
func (s State) RemoveTodo(index int) State {
	if index < 0 || index >= len(s.Todos) {
		return s
	}
	next := s
	next.Todos = append(append([]string(nil), s.Todos[:index]...), s.Todos[index+1:]...)
	return next
}

// RemoveSuggestion drops the suggestion at index; out-of-range is a
// no-op.
func (s State) RemoveSuggestion(index int) State {
	if index < 0 || index >= len(s.Suggestions) {
		return s
	}
	next := s
	next.Suggestions = append(append([]string(nil), s.Suggestions[:index]...), s.Suggestions[index+1:]...)
	return next
}

// savedCondition extracts the condition text from a saved (possibly
// decorated) current weather section.
func savedCondition(currentWeather string) string {
	for _, line := range strings.Split(currentWeather, "\n") {
		if idx := strings.Index(line, "Condition:"); idx >= 0 {
			return strings.TrimSpace(line[idx+len("Condition:"):])
		}
	}
	return ""
}
