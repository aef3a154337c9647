package datasource

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedSource wraps a Source with rate limiting shared across
// all three endpoints, since the provider counts them against one quota.
type RateLimitedSource struct {
	source  Source
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedSource creates a new rate limited source
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedSource(source Source, rps float64, burst int) *RateLimitedSource {
	return &RateLimitedSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// Name returns the source name
func (r *RateLimitedSource) Name() string {
	return r.name
}

// FetchCurrent fetches current weather, respecting rate limits
func (r *RateLimitedSource) FetchCurrent(ctx context.Context, city string) (*CurrentPayload, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.source.FetchCurrent(ctx, city)
}

// FetchForecast fetches forecast data, respecting rate limits
func (r *RateLimitedSource) FetchForecast(ctx context.Context, city string) (*ForecastPayload, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.source.FetchForecast(ctx, city)
}

// FetchAirQuality fetches air pollution data, respecting rate limits
func (r *RateLimitedSource) FetchAirQuality(ctx context.Context, coord Coord) (*PollutionPayload, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.source.FetchAirQuality(ctx, coord)
}

// Verify that the rate limited source implements the required interface
var _ Source = (*RateLimitedSource)(nil)
