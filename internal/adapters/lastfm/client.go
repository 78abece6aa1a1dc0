// Package lastfm implements the music provider port against the Last.fm
// tag API.
package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ewilliams-labs/moodweather/internal/adapters/upstream"
	"github.com/ewilliams-labs/moodweather/internal/core/domain"
	"github.com/ewilliams-labs/moodweather/internal/core/ports"
)

// DefaultBaseURL is the public Last.fm API root.
const DefaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

// minTagCount is the usage count a tag must exceed to be listed as a mood.
const minTagCount = 1000

const (
	msgNoSongs       = "No songs found for this mood."
	msgRateLimited   = "Music API rate limit reached."
	msgServiceError  = "Music service error."
	msgUnexpected    = "Unexpected error while processing request."
	msgMoodsFailed   = "Unable to load supported moods."
	msgMoodEmpty     = "Mood parameter cannot be empty."
	msgLimitTooSmall = "Limit must be greater than or equal to 1."
	msgLimitTooLarge = "Limit must be less than or equal to 10."
)

// Client is an HTTP client for the Last.fm adapter.
type Client struct {
	upstream *upstream.Client
	apiKey   string
}

// compile-time interface assertion
var _ ports.MusicProvider = (*Client)(nil)

// NewClient constructs a new Last.fm client. A nil httpClient gets the
// default upstream timeout.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		upstream: upstream.NewClient("lastfm adapter", httpClient, baseURL),
		apiKey:   apiKey,
	}
}

// TracksByMood returns the top tracks for the mood tag in Last.fm ranking
// order.
func (c *Client) TracksByMood(ctx context.Context, mood string, limit int) ([]domain.Track, error) {
	if mood == "" {
		return nil, domain.InvalidInput(msgMoodEmpty)
	}
	if limit < ports.MinTrackLimit {
		return nil, domain.InvalidInput(msgLimitTooSmall)
	}
	if limit > ports.MaxTrackLimit {
		return nil, domain.InvalidInput(msgLimitTooLarge)
	}

	query := c.query("tag.gettoptracks")
	query.Set("tag", mood)
	query.Set("limit", strconv.Itoa(limit))

	resp, err := c.upstream.Get(ctx, "/", query)
	if err != nil {
		return nil, domain.Unavailable(msgServiceError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		e := domain.Unavailable(msgRateLimited, fmt.Errorf("lastfm adapter: status %d", resp.StatusCode))
		e.RetryAfter = upstream.RetryAfter(resp)
		return nil, e
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Unavailable(msgServiceError, fmt.Errorf("lastfm adapter: read body: %w", err))
	}

	var body topTracksResponse
	decodeErr := json.Unmarshal(raw, &body)

	// Last.fm reports method errors in a JSON envelope, sometimes with a 4xx
	// status and sometimes with 200.
	if decodeErr == nil && body.Code != 0 {
		return nil, classifyAPIError(body.apiError, mood)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, domain.Unavailable(msgServiceError, fmt.Errorf("lastfm adapter: status %d", resp.StatusCode))
	}
	if decodeErr != nil {
		return nil, domain.Internal(msgUnexpected, fmt.Errorf("lastfm adapter: decode: %w", decodeErr))
	}

	if len(body.Tracks.Track) == 0 {
		return nil, domain.NotFound(msgNoSongs)
	}

	return mapTracksToDomain(body.Tracks.Track, limit), nil
}

// PopularTags lists the globally most used tags whose count exceeds
// minTagCount. Every failure is reported as internal.
func (c *Client) PopularTags(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = ports.DefaultTagLimit
	}

	resp, err := c.upstream.Get(ctx, "/", c.query("tag.getTopTags"))
	if err != nil {
		return nil, domain.Internal(msgMoodsFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.Internal(msgMoodsFailed, fmt.Errorf("lastfm adapter: status %d", resp.StatusCode))
	}

	var body topTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, domain.Internal(msgMoodsFailed, fmt.Errorf("lastfm adapter: decode: %w", err))
	}
	if body.Code != 0 {
		return nil, domain.Internal(msgMoodsFailed, fmt.Errorf("lastfm adapter: error %d: %s", body.Code, body.Message))
	}

	return popularTagNames(body.TopTags.Tag, limit), nil
}

func (c *Client) query(method string) url.Values {
	query := url.Values{}
	query.Set("method", method)
	query.Set("api_key", c.apiKey)
	query.Set("format", "json")
	return query
}

// classifyAPIError maps a Last.fm error envelope onto the domain taxonomy.
// An unrecognized tag is reported as not found rather than invalid input.
func classifyAPIError(apiErr apiError, mood string) error {
	cause := fmt.Errorf("lastfm adapter: error %d: %s", apiErr.Code, apiErr.Message)
	switch apiErr.Code {
	case errCodeInvalidParameters:
		log.Printf("DEBUG lastfm adapter: tag %q rejected: %s", mood, apiErr.Message)
		return domain.NotFound(msgNoSongs)
	case errCodeRateLimitExceeded:
		return domain.Unavailable(msgRateLimited, cause)
	case errCodeOperationFailed, errCodeServiceOffline, errCodeTemporaryError:
		return domain.Unavailable(msgServiceError, cause)
	default:
		log.Printf("WARN lastfm adapter: unexpected error %d: %s", apiErr.Code, apiErr.Message)
		return domain.Unavailable(msgServiceError, cause)
	}
}
