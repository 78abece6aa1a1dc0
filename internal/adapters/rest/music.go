package rest

import (
	"net/http"

	"github.com/ewilliams-labs/moodweather/internal/core/domain"
)

type trackResponse struct {
	Track  string `json:"track"`
	Artist string `json:"artist"`
	URL    string `json:"url"`
}

func toTrackResponse(t domain.Track) trackResponse {
	return trackResponse{Track: t.Title, Artist: t.Artist, URL: t.URL}
}

// GetMusic handles GET /music?mood=&limit=
func (h *Handler) GetMusic(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mood, err := moodParam(q)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	limit, err := limitParam(q)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	tracks, err := h.svc.TracksByMood(r.Context(), mood, limit)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	out := make([]trackResponse, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, toTrackResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}
