// Package openweather implements the weather provider port against the
// OpenWeatherMap current-weather API.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/ewilliams-labs/moodweather/internal/adapters/upstream"
	"github.com/ewilliams-labs/moodweather/internal/core/domain"
	"github.com/ewilliams-labs/moodweather/internal/core/ports"
)

// DefaultBaseURL is the public OpenWeatherMap API root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

const (
	msgCityEmpty    = "City parameter cannot be empty."
	msgCityTooShort = "City must be at least 2 characters."
	msgNotFound     = "City not found. Please check the city name."
	msgRateLimited  = "Weather API rate limit reached."
	msgServiceError = "Weather service error."
	msgUnexpected   = "Unexpected error while processing request."
)

// Client is an HTTP client for the OpenWeatherMap adapter.
type Client struct {
	upstream *upstream.Client
	apiKey   string
}

// compile-time interface assertion
var _ ports.WeatherProvider = (*Client)(nil)

// NewClient constructs a new OpenWeatherMap client. A nil httpClient gets
// the default upstream timeout.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		upstream: upstream.NewClient("openweather adapter", httpClient, baseURL),
		apiKey:   apiKey,
	}
}

// CurrentWeather fetches the current observation for city in metric units.
func (c *Client) CurrentWeather(ctx context.Context, city string) (domain.WeatherObservation, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.WeatherObservation{}, domain.InvalidInput(msgCityEmpty)
	}
	if len([]rune(city)) < 2 {
		return domain.WeatherObservation{}, domain.InvalidInput(msgCityTooShort)
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	resp, err := c.upstream.Get(ctx, "/weather", query)
	if err != nil {
		return domain.WeatherObservation{}, domain.Unavailable(msgServiceError, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		e := domain.Unavailable(msgRateLimited, fmt.Errorf("openweather adapter: status %d", resp.StatusCode))
		e.RetryAfter = upstream.RetryAfter(resp)
		return domain.WeatherObservation{}, e
	case resp.StatusCode == http.StatusNotFound:
		return domain.WeatherObservation{}, domain.NotFound(msgNotFound)
	case resp.StatusCode != http.StatusOK:
		return domain.WeatherObservation{}, domain.Unavailable(msgServiceError, fmt.Errorf("openweather adapter: status %d", resp.StatusCode))
	}

	var body currentWeather
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if upstream.IsTimeout(err) {
			return domain.WeatherObservation{}, domain.Unavailable(msgServiceError, err)
		}
		return domain.WeatherObservation{}, domain.Internal(msgUnexpected, fmt.Errorf("openweather adapter: decode: %w", err))
	}

	// The API has been seen to answer 200 with a "cod": "404" envelope.
	if body.Cod == http.StatusNotFound {
		return domain.WeatherObservation{}, domain.NotFound(msgNotFound)
	}

	if len(body.Weather) == 0 {
		log.Printf("WARN openweather adapter: no weather conditions for %q", city)
		return domain.WeatherObservation{}, domain.Internal(msgUnexpected, errors.New("openweather adapter: empty weather list"))
	}

	return domain.WeatherObservation{
		City:         body.Name,
		Condition:    body.Weather[0].Main,
		TemperatureC: body.Main.Temp,
	}, nil
}
