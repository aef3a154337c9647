// Package present derives display output from a normalized snapshot:
// an icon identifier, a color theme, and a decorated multi-line
// summary with per-field annotation symbols.
package present

import (
	"fmt"
	"strings"

	"weather-companion/classify"
	"weather-companion/models"
)

// Rendering is the display-ready output for one snapshot. The three
// section strings are persisted individually; Summary is their
// combined form with the location header.
type Rendering struct {
	Icon             IconID
	Theme            Theme
	Summary          string
	CurrentSection   string
	ForecastSection  string
	PollutionSection string
}

// Snapshot derives the full rendering for a snapshot and its category.
func Snapshot(s models.WeatherSnapshot, category classify.Category) Rendering {
	current := Decorate(currentSection(s), category)
	forecast := Decorate(forecastSection(s), category)
	pollution := Decorate(pollutionSection(s), category)

	return Rendering{
		Icon:             IconFor(category),
		Theme:            ThemeFor(category),
		Summary:          Summary(s.City, current, forecast, pollution),
		CurrentSection:   current,
		ForecastSection:  forecast,
		PollutionSection: pollution,
	}
}

// Summary combines the decorated sections under the location header.
// The pollution section may be empty, in which case no pollution lines
// appear at all.
func Summary(city, current, forecast, pollution string) string {
	return "📍 Location: " + city + "\n\n" + current + "\n" + forecast + "\n" + pollution
}

// currentSection renders the plain current weather lines.
func currentSection(s models.WeatherSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Temperature: %.1f°C\n", s.TemperatureC)
	fmt.Fprintf(&b, "Humidity: %d%%\n", s.HumidityPct)
	fmt.Fprintf(&b, "Wind: %.1f m/s\n", s.WindSpeedMS)
	fmt.Fprintf(&b, "Condition: %s\n", s.ConditionText)
	return b.String()
}

// forecastSection renders the plain forecast lines in snapshot order.
func forecastSection(s models.WeatherSnapshot) string {
	var b strings.Builder
	b.WriteString("Forecast:\n")
	for _, entry := range s.Forecast {
		fmt.Fprintf(&b, "  %s - %.1f°C - %s\n", entry.Timestamp, entry.TemperatureC, entry.ConditionText)
	}
	return b.String()
}

// pollutionSection renders the pollutant lines, or nothing when the
// reading is absent.
func pollutionSection(s models.WeatherSnapshot) string {
	if s.Pollutants == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("Air Pollution Data:\n")
	fmt.Fprintf(&b, "CO: %.2f μg/m³\n", s.Pollutants.CO)
	fmt.Fprintf(&b, "NO₂: %.2f μg/m³\n", s.Pollutants.NO2)
	fmt.Fprintf(&b, "SO₂: %.2f μg/m³\n", s.Pollutants.SO2)
	fmt.Fprintf(&b, "PM2.5: %.2f μg/m³\n", s.Pollutants.PM25)
	return b.String()
}

// Decorate prefixes each recognized line of text with its annotation
// symbol. The condition line gets the category's own symbol; forecast
// entry lines get the symbol of their own classified condition.
// Unrecognized lines pass through unchanged.
func Decorate(text string, category classify.Category) string {
	if text == "" {
		return ""
	}

	conditionSymbol := SymbolFor(category)

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		switch {
		case strings.Contains(line, "Temperature:"):
			b.WriteString("🌡 " + line)
		case strings.Contains(line, "Humidity:"):
			b.WriteString("💧 " + line)
		case strings.Contains(line, "Wind:"):
			b.WriteString("🌬 " + line)
		case strings.Contains(line, "Condition:"):
			b.WriteString(conditionSymbol + " " + line)
		case strings.Contains(line, "Forecast:"):
			b.WriteString("📅 " + line)
		case isForecastEntry(line):
			b.WriteString(forecastEntrySymbol(line) + " " + line)
		case strings.Contains(line, "Air Pollution Data:"):
			b.WriteString("🌍 " + line)
		case strings.Contains(line, "CO:"):
			b.WriteString("⚗️ " + line)
		case strings.Contains(line, "NO₂:"):
			b.WriteString("🧪 " + line)
		case strings.Contains(line, "SO₂:"):
			b.WriteString("💨 " + line)
		case strings.Contains(line, "PM2.5:"):
			b.WriteString("😷 " + line)
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// isForecastEntry reports whether a line is an indented forecast entry.
func isForecastEntry(line string) bool {
	return strings.HasPrefix(line, "  ") && strings.Contains(line, " - ")
}

// forecastEntrySymbol classifies the condition trailing the last dash
// of a forecast entry line.
func forecastEntrySymbol(line string) string {
	idx := strings.LastIndex(line, " - ")
	if idx < 0 {
		return "📆"
	}
	condition := strings.TrimSpace(line[idx+len(" - "):])
	return SymbolFor(classify.Condition(condition))
}
