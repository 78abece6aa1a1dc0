package rest

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ewilliams-labs/moodweather/internal/core/domain"
	"github.com/ewilliams-labs/moodweather/internal/core/ports"
)

// Query parameter bounds.
const (
	minCityLen   = 2
	maxCityLen   = 50
	minMoodLen   = 2
	maxMoodLen   = 20
	defaultLimit = 1
)

// textParam reads a trimmed string parameter and checks its length in runes.
func textParam(q url.Values, key, label string, minLen, maxLen int) (string, error) {
	v := strings.TrimSpace(q.Get(key))
	n := utf8.RuneCountInString(v)
	switch {
	case n == 0:
		return "", domain.InvalidInput(fmt.Sprintf("%s parameter cannot be empty.", label))
	case n < minLen:
		return "", domain.InvalidInput(fmt.Sprintf("%s must be at least %d characters.", label, minLen))
	case n > maxLen:
		return "", domain.InvalidInput(fmt.Sprintf("%s must be at most %d characters.", label, maxLen))
	}
	return v, nil
}

func cityParam(q url.Values) (string, error) {
	return textParam(q, "city", "City", minCityLen, maxCityLen)
}

func moodParam(q url.Values) (string, error) {
	return textParam(q, "mood", "Mood", minMoodLen, maxMoodLen)
}

func limitParam(q url.Values) (int, error) {
	raw := strings.TrimSpace(q.Get("limit"))
	if raw == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.InvalidInput("Limit must be an integer.")
	}
	if n < ports.MinTrackLimit {
		return 0, domain.InvalidInput(fmt.Sprintf("Limit must be greater than or equal to %d.", ports.MinTrackLimit))
	}
	if n > ports.MaxTrackLimit {
		return 0, domain.InvalidInput(fmt.Sprintf("Limit must be less than or equal to %d.", ports.MaxTrackLimit))
	}
	return n, nil
}
