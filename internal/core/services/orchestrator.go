package services

import (
	"context"
	"strings"

	"github.com/ewilliams-labs/moodweather/internal/core/domain"
	"github.com/ewilliams-labs/moodweather/internal/core/ports"
)

// Orchestrator coordinates weather and music lookups.
type Orchestrator struct {
	weather ports.WeatherProvider
	music   ports.MusicProvider
	moods   domain.MoodTable
}

// NewOrchestrator constructs an Orchestrator using the default mood table.
func NewOrchestrator(weather ports.WeatherProvider, music ports.MusicProvider) *Orchestrator {
	return &Orchestrator{
		weather: weather,
		music:   music,
		moods:   domain.DefaultMoodTable(),
	}
}

// Weather returns the current weather for city.
func (o *Orchestrator) Weather(ctx context.Context, city string) (domain.WeatherObservation, error) {
	return o.weather.CurrentWeather(ctx, strings.TrimSpace(city))
}

// TracksByMood returns up to limit tracks tagged with mood.
func (o *Orchestrator) TracksByMood(ctx context.Context, mood string, limit int) ([]domain.Track, error) {
	return o.music.TracksByMood(ctx, strings.TrimSpace(mood), limit)
}

// PopularMoods returns the provider's popular tags.
func (o *Orchestrator) PopularMoods(ctx context.Context, limit int) ([]string, error) {
	return o.music.PopularTags(ctx, limit)
}

// Match decides whether mood fits the current weather in city and, when it
// does, suggests a track. Provider failures are returned unchanged.
func (o *Orchestrator) Match(ctx context.Context, mood, city string) (domain.MatchResult, error) {
	mood = strings.TrimSpace(mood)
	city = strings.TrimSpace(city)
	if mood == "" {
		return domain.MatchResult{}, domain.InvalidInput("Mood parameter cannot be empty.")
	}
	if city == "" {
		return domain.MatchResult{}, domain.InvalidInput("City parameter cannot be empty.")
	}

	// 1. Weather is always fetched, exactly once.
	obs, err := o.weather.CurrentWeather(ctx, city)
	if err != nil {
		return domain.MatchResult{}, err
	}

	// 2. No music call unless the mood fits.
	if !o.moods.Matches(mood, obs.Condition) {
		return domain.NewMismatch(obs.Condition), nil
	}

	// 3. Single-item lookup for the suggestion.
	tracks, err := o.music.TracksByMood(ctx, mood, 1)
	if err != nil {
		return domain.MatchResult{}, err
	}
	if len(tracks) == 0 {
		return domain.MatchResult{}, domain.NotFound("No songs found for this mood.")
	}

	return domain.NewMatch(obs.Condition, tracks[0]), nil
}
