// Package app orchestrates one fetch cycle: fetch the three raw
// payloads, normalize, classify, derive presentation and suggestions,
// and persist the outcome.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"

	"weather-companion/classify"
	"weather-companion/datasource"
	"weather-companion/models"
	"weather-companion/normalize"
	"weather-companion/present"
	"weather-companion/store"
	"weather-companion/suggest"
)

// ErrEmptyCity is returned when a cycle is requested without a city.
var ErrEmptyCity = errors.New("no city given")

// Result is everything one successful fetch cycle produces.
type Result struct {
	City        string
	Snapshot    models.WeatherSnapshot
	Category    classify.Category
	Rendering   present.Rendering
	Suggestions []string
}

// App runs fetch cycles against one weather source and one store.
type App struct {
	source datasource.Source
	store  *store.Store
}

// New creates an App.
func New(source datasource.Source, st *store.Store) *App {
	return &App{source: source, store: st}
}

// RunCycle fetches, normalizes, and renders weather for a city, then
// persists the outcome. Current and forecast failures are hard errors;
// air quality failures degrade to an absent pollutant reading, and
// persistence failures are logged without failing the cycle.
func (a *App) RunCycle(ctx context.Context, city string) (Result, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Result{}, ErrEmptyCity
	}

	current, forecast, err := a.fetchBoth(ctx, city)
	if err != nil {
		return Result{}, err
	}

	// Reuse the coordinates from the current payload instead of
	// resolving them with a second current-weather call.
	pollution, err := a.source.FetchAirQuality(ctx, current.Coord)
	if err != nil {
		log.Printf("air quality fetch for %s failed, continuing without it: %v", city, err)
		pollution = nil
	}

	snapshot, err := normalize.Snapshot(city, current, forecast, pollution)
	if err != nil {
		return Result{}, err
	}

	category := classify.Condition(snapshot.ConditionText)
	rendering := present.Snapshot(snapshot, category)
	suggestions := suggest.ForSnapshot(snapshot, category)

	a.persist(city, rendering, suggestions)

	return Result{
		City:        city,
		Snapshot:    snapshot,
		Category:    category,
		Rendering:   rendering,
		Suggestions: suggestions,
	}, nil
}

// fetchBoth runs the current and forecast fetches concurrently and
// joins their errors; either failing fails the cycle.
func (a *App) fetchBoth(ctx context.Context, city string) (*datasource.CurrentPayload, *datasource.ForecastPayload, error) {
	var (
		wg       sync.WaitGroup
		current  *datasource.CurrentPayload
		forecast *datasource.ForecastPayload
		errCur   error
		errFc    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		current, errCur = a.source.FetchCurrent(ctx, city)
	}()
	go func() {
		defer wg.Done()
		forecast, errFc = a.source.FetchForecast(ctx, city)
	}()
	wg.Wait()

	var merr *multierror.Error
	if errCur != nil {
		merr = multierror.Append(merr, fmt.Errorf("current weather: %w", errCur))
	}
	if errFc != nil {
		merr = multierror.Append(merr, fmt.Errorf("forecast: %w", errFc))
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, nil, err
	}
	return current, forecast, nil
}

// persist writes the weather sections and suggestions. Failures here
// never block the in-memory result that already succeeded.
func (a *App) persist(city string, rendering present.Rendering, suggestions []string) {
	if a.store == nil {
		return
	}
	err := a.store.SaveWeather(store.WeatherRecord{
		City:           city,
		CurrentWeather: rendering.CurrentSection,
		Forecast:       rendering.ForecastSection,
		AirPollution:   rendering.PollutionSection,
	})
	if err != nil {
		log.Printf("failed to persist weather for %s: %v", city, err)
	}
	if err := a.store.SaveSuggestions(suggestions); err != nil {
		log.Printf("failed to persist suggestions for %s: %v", city, err)
	}
}

// UserMessage translates a cycle error into the text shown to the user.
func UserMessage(err error) string {
	switch datasource.Kind(err) {
	case datasource.KindNotFound:
		return "Location not found. Please check the spelling and try again."
	case datasource.KindAuthFailure:
		return "API key issue. Please check your API key configuration."
	case datasource.KindRateLimited:
		return "Too many requests. Please try again later."
	case datasource.KindTransportFailure:
		return "Network error. Please check your internet connection and try again."
	default:
		if errors.Is(err, ErrEmptyCity) {
			return "Please enter a location!"
		}
		return "Error: " + err.Error()
	}
}
