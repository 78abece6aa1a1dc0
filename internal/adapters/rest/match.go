package rest

import "net/http"

type matchResponse struct {
	Match   bool           `json:"match"`
	Weather string         `json:"weather"`
	Song    *trackResponse `json:"song,omitempty"`
	Message string         `json:"message,omitempty"`
}

// GetMatch handles GET /match?mood=&city=
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mood, err := moodParam(q)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	city, err := cityParam(q)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	result, err := h.svc.Match(r.Context(), mood, city)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	resp := matchResponse{
		Match:   result.IsMatch,
		Weather: result.Condition,
		Message: result.Message,
	}
	if result.Track != nil {
		song := toTrackResponse(*result.Track)
		resp.Song = &song
	}
	writeJSON(w, http.StatusOK, resp)
}
