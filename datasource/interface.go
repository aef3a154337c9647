package datasource

import (
	"context"
)

// Source is the interface for anything that can fetch the three raw
// weather payloads for a city. The air quality call takes coordinates
// because the pollution endpoint is coordinate-addressed; callers are
// expected to reuse the coordinates already present in the current
// weather payload rather than resolving them again.
type Source interface {
	// Name returns the source's name
	Name() string

	// FetchCurrent fetches the current weather payload for a city
	FetchCurrent(ctx context.Context, city string) (*CurrentPayload, error)

	// FetchForecast fetches the 5-day/3-hour forecast payload for a city
	FetchForecast(ctx context.Context, city string) (*ForecastPayload, error)

	// FetchAirQuality fetches the air pollution payload for coordinates
	FetchAirQuality(ctx context.Context, coord Coord) (*PollutionPayload, error)
}
