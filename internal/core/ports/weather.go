package ports

import (
	"context"

	"github.com/ewilliams-labs/moodweather/internal/core/domain"
)

// WeatherProvider looks up current weather for a city. Failures are returned
// as classified *domain.Error values.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (domain.WeatherObservation, error)
}
