package rest

import (
	"log"
	"net/http"

	"github.com/ewilliams-labs/moodweather/internal/core/ports"
)

type moodsResponse struct {
	SupportedMoods []string `json:"supported_moods"`
}

// GetMoods handles GET /moods. A provider failure degrades to an empty list.
func (h *Handler) GetMoods(w http.ResponseWriter, r *http.Request) {
	moods, err := h.svc.PopularMoods(r.Context(), ports.DefaultTagLimit)
	if err != nil {
		log.Printf("WARN rest: [%s] listing moods: %v", RequestIDFromContext(r.Context()), err)
		moods = nil
	}
	if moods == nil {
		moods = []string{}
	}
	writeJSON(w, http.StatusOK, moodsResponse{SupportedMoods: moods})
}
