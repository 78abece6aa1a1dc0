package rest

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/ewilliams-labs/moodweather/internal/core/domain"
)

// Stable error codes returned in the "code" field.
const (
	errCodeInvalidInput = "INVALID_INPUT"
	errCodeNotFound     = "NOT_FOUND"
	errCodeUnavailable  = "SERVICE_UNAVAILABLE"
	errCodeInternal     = "INTERNAL"
	errCodeRateLimited  = "RATE_LIMITED"
)

const msgInternal = "Unexpected error while processing request."

type errorResponse struct {
	Detail    string `json:"detail"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("WARN rest: encode response: %v", err)
	}
}

func writeErrorWithCode(w http.ResponseWriter, r *http.Request, status int, detail, code string) {
	writeJSON(w, status, errorResponse{
		Detail:    detail,
		Code:      code,
		RequestID: RequestIDFromContext(r.Context()),
	})
}

// writeDomainError maps a classified error to its HTTP status. Internal
// failures never expose their message.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	de := domain.AsError(err)
	reqID := RequestIDFromContext(r.Context())

	switch {
	case errors.Is(de, domain.ErrInvalidInput):
		writeErrorWithCode(w, r, http.StatusBadRequest, de.Message, errCodeInvalidInput)
	case errors.Is(de, domain.ErrNotFound):
		writeErrorWithCode(w, r, http.StatusNotFound, de.Message, errCodeNotFound)
	case errors.Is(de, domain.ErrUnavailable):
		log.Printf("WARN rest: [%s] upstream unavailable: %v", reqID, de)
		if de.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(de.RetryAfter.Seconds()))))
		}
		writeErrorWithCode(w, r, http.StatusServiceUnavailable, de.Message, errCodeUnavailable)
	default:
		log.Printf("ERROR rest: [%s] %v", reqID, de)
		writeErrorWithCode(w, r, http.StatusInternalServerError, msgInternal, errCodeInternal)
	}
}
