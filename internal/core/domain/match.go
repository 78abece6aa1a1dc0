package domain

// MismatchMessage is reported when a mood does not fit the current weather.
const MismatchMessage = "Mood and weather don't align."

// MatchResult is the outcome of comparing a mood with a city's weather.
// A positive match always carries a Track and no Message; a negative match
// always carries a Message and no Track.
type MatchResult struct {
	IsMatch   bool
	Condition string
	Track     *Track
	Message   string
}

// NewMatch builds a positive result suggesting track.
func NewMatch(condition string, track Track) MatchResult {
	return MatchResult{IsMatch: true, Condition: condition, Track: &track}
}

// NewMismatch builds a negative result.
func NewMismatch(condition string) MatchResult {
	return MatchResult{IsMatch: false, Condition: condition, Message: MismatchMessage}
}
