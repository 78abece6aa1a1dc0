package domain

import (
	"sort"
	"strings"
)

// MoodTable maps a mood keyword to the weather keywords it is compatible with.
// It is immutable after construction and safe for concurrent use.
type MoodTable struct {
	compatible map[string][]string
}

// NewMoodTable builds a table from entries, lowercasing keys and keywords.
func NewMoodTable(entries map[string][]string) MoodTable {
	compatible := make(map[string][]string, len(entries))
	for mood, keywords := range entries {
		key := strings.ToLower(strings.TrimSpace(mood))
		for _, kw := range keywords {
			compatible[key] = append(compatible[key], strings.ToLower(kw))
		}
	}
	return MoodTable{compatible: compatible}
}

var defaultMoodTable = NewMoodTable(map[string][]string{
	"happy":    {"clear", "sunny"},
	"sad":      {"rain", "drizzle"},
	"angry":    {"thunderstorm"},
	"calm":     {"clouds", "mist", "haze"},
	"chill":    {"clouds", "snow"},
	"romantic": {"clear", "snow"},
})

// DefaultMoodTable returns the built-in mood/weather table.
func DefaultMoodTable() MoodTable {
	return defaultMoodTable
}

// Matches reports whether condition contains any keyword compatible with mood.
// Both inputs are compared case-insensitively. Containment, not equality, is
// required so "light rain" matches "rain". Unknown moods match nothing.
func (t MoodTable) Matches(mood, condition string) bool {
	condition = strings.ToLower(condition)
	for _, kw := range t.compatible[strings.ToLower(mood)] {
		if strings.Contains(condition, kw) {
			return true
		}
	}
	return false
}

// Moods returns the known moods in sorted order.
func (t MoodTable) Moods() []string {
	moods := make([]string, 0, len(t.compatible))
	for m := range t.compatible {
		moods = append(moods, m)
	}
	sort.Strings(moods)
	return moods
}
