package lastfm

import "github.com/ewilliams-labs/moodweather/internal/core/domain"

// mapTracksToDomain reduces provider tracks to domain tracks, keeping the
// provider's ranking and at most limit entries.
func mapTracksToDomain(tracks []lastfmTrack, limit int) []domain.Track {
	if limit > 0 && len(tracks) > limit {
		tracks = tracks[:limit]
	}
	out := make([]domain.Track, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, domain.Track{
			Title:  t.Name,
			Artist: t.Artist.Name,
			URL:    t.URL,
		})
	}
	return out
}

// popularTagNames keeps tags used more than minTagCount times, in provider
// order, truncated to limit.
func popularTagNames(tags []lastfmTag, limit int) []string {
	names := make([]string, 0, limit)
	for _, tag := range tags {
		if len(names) == limit {
			break
		}
		if int(tag.Count) > minTagCount {
			names = append(names, tag.Name)
		}
	}
	return names
}
