package rest

import (
	"net/http"

	"github.com/ewilliams-labs/moodweather/internal/core/services"
)

// APIPrefix is the versioned mount point. Every route is also served at the
// root.
const APIPrefix = "/api/v1"

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc    *services.Orchestrator // Dependency on the Core Service
	router *http.ServeMux         // Standard library router
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Orchestrator) *Handler {
	h := &Handler{
		svc:    svc,
		router: http.NewServeMux(),
	}

	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	for _, prefix := range []string{"", APIPrefix} {
		h.router.HandleFunc("GET "+prefix+"/health", h.HealthCheck)
		h.router.HandleFunc("GET "+prefix+"/weather", h.GetWeather)
		h.router.HandleFunc("GET "+prefix+"/music", h.GetMusic)
		h.router.HandleFunc("GET "+prefix+"/match", h.GetMatch)
		h.router.HandleFunc("GET "+prefix+"/moods", h.GetMoods)
	}
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
