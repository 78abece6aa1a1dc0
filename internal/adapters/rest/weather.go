package rest

import "net/http"

type weatherResponse struct {
	City        string  `json:"city"`
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
}

// GetWeather handles GET /weather?city=
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request) {
	city, err := cityParam(r.URL.Query())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	obs, err := h.svc.Weather(r.Context(), city)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, weatherResponse{
		City:        obs.City,
		Condition:   obs.Condition,
		Temperature: obs.TemperatureC,
	})
}
