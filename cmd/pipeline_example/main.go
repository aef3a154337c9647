package main

import (
	"encoding/json"
	"fmt"
	"log"

	"weather-companion/classify"
	"weather-companion/datasource"
	"weather-companion/normalize"
	"weather-companion/present"
	"weather-companion/suggest"
)

// Canned provider responses so the pipeline can be exercised without
// network access or an API key.
const currentJSON = `{
  "coord": {"lat": 48.85, "lon": 2.35},
  "main": {"temp": 32.5, "humidity": 10},
  "wind": {"speed": 12},
  "weather": [{"main": "Clear", "description": "clear sky"}],
  "name": "Paris"
}`

const forecastJSON = `{
  "list": [
    {"main": {"temp": 31.0}, "weather": [{"main": "Clear", "description": "clear sky"}], "dt_txt": "2026-09-01 12:00:00"},
    {"main": {"temp": 30.1}, "weather": [{"main": "Clear", "description": "few clouds"}], "dt_txt": "2026-09-01 15:00:00"},
    {"main": {"temp": 28.4}, "weather": [{"main": "Clouds", "description": "scattered clouds"}], "dt_txt": "2026-09-01 18:00:00"},
    {"main": {"temp": 25.2}, "weather": [{"main": "Clouds", "description": "broken clouds"}], "dt_txt": "2026-09-01 21:00:00"},
    {"main": {"temp": 22.8}, "weather": [{"main": "Clear", "description": "clear sky"}], "dt_txt": "2026-09-02 00:00:00"},
    {"main": {"temp": 21.5}, "weather": [{"main": "Clear", "description": "clear sky"}], "dt_txt": "2026-09-02 03:00:00"},
    {"main": {"temp": 24.9}, "weather": [{"main": "Clear", "description": "clear sky"}], "dt_txt": "2026-09-02 06:00:00"},
    {"main": {"temp": 29.3}, "weather": [{"main": "Clear", "description": "clear sky"}], "dt_txt": "2026-09-02 09:00:00"},
    {"main": {"temp": 33.0}, "weather": [{"main": "Rain", "description": "light rain"}], "dt_txt": "2026-09-02 12:00:00"}
  ]
}`

const pollutionJSON = `{
  "list": [{"components": {"co": 201.94, "no2": 13.9, "so2": 2.1, "pm2_5": 8.85}}]
}`

func main() {
	fmt.Println("=== Running Pipeline Example ===")
	fmt.Println("This runs the full fetch pipeline over canned payloads.")
	fmt.Println()

	var current datasource.CurrentPayload
	if err := json.Unmarshal([]byte(currentJSON), &current); err != nil {
		log.Fatalf("bad current payload: %v", err)
	}
	var forecast datasource.ForecastPayload
	if err := json.Unmarshal([]byte(forecastJSON), &forecast); err != nil {
		log.Fatalf("bad forecast payload: %v", err)
	}
	var pollution datasource.PollutionPayload
	if err := json.Unmarshal([]byte(pollutionJSON), &pollution); err != nil {
		log.Fatalf("bad pollution payload: %v", err)
	}

	snapshot, err := normalize.Snapshot("Paris", &current, &forecast, &pollution)
	if err != nil {
		log.Fatalf("normalization failed: %v", err)
	}

	category := classify.Condition(snapshot.ConditionText)
	rendering := present.Snapshot(snapshot, category)
	suggestions := suggest.ForSnapshot(snapshot, category)

	fmt.Printf("Category: %s, icon: %s\n", category, rendering.Icon)
	fmt.Printf("Theme accent: #%02x%02x%02x\n\n",
		rendering.Theme.Accent.R, rendering.Theme.Accent.G, rendering.Theme.Accent.B)
	fmt.Println(rendering.Summary)

	fmt.Println("Weather-Based Suggestions:")
	for _, suggestion := range suggestions {
		fmt.Printf("  %s\n", suggestion)
	}
}
