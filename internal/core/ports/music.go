package ports

import (
	"context"

	"github.com/ewilliams-labs/moodweather/internal/core/domain"
)

// Track limit bounds accepted by MusicProvider.TracksByMood.
const (
	MinTrackLimit = 1
	MaxTrackLimit = 10
)

// DefaultTagLimit is used by PopularTags when no positive limit is given.
const DefaultTagLimit = 25

// MusicProvider ranks tracks by tag and lists popular tags.
type MusicProvider interface {
	// TracksByMood returns at most limit tracks for the mood tag in the
	// provider's ranking order.
	TracksByMood(ctx context.Context, mood string, limit int) ([]domain.Track, error)
	// PopularTags returns the provider's most used tags, most popular first.
	PopularTags(ctx context.Context, limit int) ([]string, error)
}
