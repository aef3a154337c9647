package models

// WeatherSnapshot is one normalized weather reading for one city at one
// point in time. It is built once per successful fetch cycle and never
// mutated afterwards.
type WeatherSnapshot struct {
	City          string            `json:"city"`
	TemperatureC  float64           `json:"temperatureC"`  // in Celsius
	HumidityPct   int               `json:"humidityPct"`   // percentage
	WindSpeedMS   float64           `json:"windSpeedMS"`   // in m/s
	ConditionText string            `json:"conditionText"` // "<Main> - <description>"
	Forecast      []ForecastEntry   `json:"forecast"`      // provider order, at most 5 entries
	Pollutants    *PollutantReading `json:"pollutants,omitempty"` // nil means no data, not zero
}

// ForecastEntry is a single sampled forecast point, roughly one per day.
type ForecastEntry struct {
	Timestamp     string  `json:"timestamp"` // provider-supplied "YYYY-MM-DD HH:MM:SS", kept opaque
	TemperatureC  float64 `json:"temperatureC"`
	ConditionText string  `json:"conditionText"`
}

// PollutantReading holds pollutant concentrations in μg/m³. A nil
// reading means the air pollution fetch failed; it must never be
// replaced with a zeroed value.
type PollutantReading struct {
	CO   float64 `json:"co"`
	NO2  float64 `json:"no2"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm25"`
}
