// Package normalize converts raw provider payloads into the internal
// WeatherSnapshot representation.
package normalize

import (
	"fmt"

	"weather-companion/datasource"
	"weather-companion/models"
)

// forecastStride is the sampling step over the provider's 3-hour list:
// every 8th element is roughly one sample per day.
const forecastStride = 8

// maxForecastEntries caps the snapshot at 5 sampled days.
const maxForecastEntries = 5

// Snapshot builds a WeatherSnapshot from the three raw payloads. The
// city is the caller's display name and is carried verbatim. A missing
// current or forecast requirement is a hard MalformedPayload error;
// the pollution payload may be nil and then yields a nil reading.
func Snapshot(city string, current *datasource.CurrentPayload, forecast *datasource.ForecastPayload, pollution *datasource.PollutionPayload) (models.WeatherSnapshot, error) {
	if current == nil || len(current.Weather) == 0 {
		return models.WeatherSnapshot{}, &datasource.APIError{
			Kind: datasource.KindMalformedPayload,
			Err:  fmt.Errorf("current weather payload has no condition entry"),
		}
	}
	if forecast == nil || len(forecast.List) == 0 {
		return models.WeatherSnapshot{}, &datasource.APIError{
			Kind: datasource.KindMalformedPayload,
			Err:  fmt.Errorf("forecast payload has an empty list"),
		}
	}

	entries, err := sampleForecast(forecast)
	if err != nil {
		return models.WeatherSnapshot{}, err
	}

	return models.WeatherSnapshot{
		City:          city,
		TemperatureC:  current.Main.Temp,
		HumidityPct:   current.Main.Humidity,
		WindSpeedMS:   current.Wind.Speed,
		ConditionText: conditionText(current.Weather[0].Main, current.Weather[0].Description),
		Forecast:      entries,
		Pollutants:    pollutants(pollution),
	}, nil
}

// sampleForecast takes every 8th element of the provider list, up to 5
// entries, skipping indices past the end of the list. Provider order
// is preserved; entries are never reordered or deduplicated.
func sampleForecast(forecast *datasource.ForecastPayload) ([]models.ForecastEntry, error) {
	var entries []models.ForecastEntry
	for i := 0; i < maxForecastEntries; i++ {
		idx := i * forecastStride
		if idx >= len(forecast.List) {
			break
		}
		item := forecast.List[idx]
		if len(item.Weather) == 0 {
			return nil, &datasource.APIError{
				Kind: datasource.KindMalformedPayload,
				Err:  fmt.Errorf("forecast entry %d has no condition entry", idx),
			}
		}
		entries = append(entries, models.ForecastEntry{
			Timestamp:     item.DtTxt,
			TemperatureC:  item.Main.Temp,
			ConditionText: conditionText(item.Weather[0].Main, item.Weather[0].Description),
		})
	}
	return entries, nil
}

// pollutants projects the pollution payload into a reading, or nil
// when the payload is absent or empty. Absence means "no data" and is
// never represented as a zeroed reading.
func pollutants(pollution *datasource.PollutionPayload) *models.PollutantReading {
	if pollution == nil || len(pollution.List) == 0 {
		return nil
	}
	c := pollution.List[0].Components
	return &models.PollutantReading{
		CO:   c.CO,
		NO2:  c.NO2,
		SO2:  c.SO2,
		PM25: c.PM25,
	}
}

func conditionText(main, description string) string {
	return main + " - " + description
}
