package lastfm

import "github.com/ewilliams-labs/moodweather/internal/adapters/upstream"

// apiError is the error envelope Last.fm returns for any method.
type apiError struct {
	Code    upstream.FlexInt `json:"error"`
	Message string           `json:"message"`
}

// Last.fm error codes we classify explicitly.
const (
	errCodeInvalidParameters = 6
	errCodeOperationFailed   = 8
	errCodeServiceOffline    = 11
	errCodeTemporaryError    = 16
	errCodeRateLimitExceeded = 29
)

type topTracksResponse struct {
	apiError
	Tracks struct {
		Track []lastfmTrack `json:"track"`
	} `json:"tracks"`
}

type lastfmTrack struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Artist struct {
		Name string `json:"name"`
	} `json:"artist"`
}

type topTagsResponse struct {
	apiError
	TopTags struct {
		Tag []lastfmTag `json:"tag"`
	} `json:"toptags"`
}

type lastfmTag struct {
	Name  string           `json:"name"`
	Count upstream.FlexInt `json:"count"`
}
