package lastfm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewilliams-labs/moodweather/internal/core/domain"
)

func newTestServer(t *testing.T, status int, body string, header http.Header, calls *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		for k, v := range header {
			w.Header()[k] = v
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTracksByMood(t *testing.T) {
	threeTracks := `{"tracks":{"track":[
		{"name":"Walking on Sunshine","url":"https://www.last.fm/music/Katrina/_/Walking","artist":{"name":"Katrina and the Waves"}},
		{"name":"Happy","url":"https://www.last.fm/music/Pharrell/_/Happy","artist":{"name":"Pharrell Williams"}},
		{"name":"Good Day Sunshine","url":"https://www.last.fm/music/Beatles/_/Good","artist":{"name":"The Beatles"}}
	],"@attr":{"tag":"happy"}}}`

	tests := []struct {
		name        string
		mood        string
		limit       int
		status      int
		response    string
		header      http.Header
		expected    []domain.Track
		wantKind    error
		wantMessage string
		wantRetry   time.Duration
		wantCalls   int
	}{
		{
			name:     "returns tracks in provider order",
			mood:     "happy",
			limit:    3,
			status:   http.StatusOK,
			response: threeTracks,
			expected: []domain.Track{
				{Title: "Walking on Sunshine", Artist: "Katrina and the Waves", URL: "https://www.last.fm/music/Katrina/_/Walking"},
				{Title: "Happy", Artist: "Pharrell Williams", URL: "https://www.last.fm/music/Pharrell/_/Happy"},
				{Title: "Good Day Sunshine", Artist: "The Beatles", URL: "https://www.last.fm/music/Beatles/_/Good"},
			},
			wantCalls: 1,
		},
		{
			name:     "truncates to limit when provider over-delivers",
			mood:     "happy",
			limit:    1,
			status:   http.StatusOK,
			response: threeTracks,
			expected: []domain.Track{
				{Title: "Walking on Sunshine", Artist: "Katrina and the Waves", URL: "https://www.last.fm/music/Katrina/_/Walking"},
			},
			wantCalls: 1,
		},
		{
			name:        "empty result is not found",
			mood:        "happy",
			limit:       1,
			status:      http.StatusOK,
			response:    `{"tracks":{"track":[],"@attr":{"tag":"happy"}}}`,
			wantKind:    domain.ErrNotFound,
			wantMessage: "No songs found for this mood.",
			wantCalls:   1,
		},
		{
			name:        "invalid tag is not found",
			mood:        "unknownmood",
			limit:       3,
			status:      http.StatusBadRequest,
			response:    `{"error":6,"message":"Invalid tag specified"}`,
			wantKind:    domain.ErrNotFound,
			wantMessage: "No songs found for this mood.",
			wantCalls:   1,
		},
		{
			name:      "invalid tag with 200 status is not found",
			mood:      "unknownmood",
			limit:     3,
			status:    http.StatusOK,
			response:  `{"error":6,"message":"Invalid tag specified"}`,
			wantKind:  domain.ErrNotFound,
			wantCalls: 1,
		},
		{
			name:        "http 429 is unavailable with retry hint",
			mood:        "happy",
			limit:       1,
			status:      http.StatusTooManyRequests,
			response:    ``,
			header:      http.Header{"Retry-After": {"12"}},
			wantKind:    domain.ErrUnavailable,
			wantMessage: "Music API rate limit reached.",
			wantRetry:   12 * time.Second,
			wantCalls:   1,
		},
		{
			name:        "lastfm rate limit code is unavailable",
			mood:        "happy",
			limit:       1,
			status:      http.StatusOK,
			response:    `{"error":29,"message":"Rate Limit Exceeded"}`,
			wantKind:    domain.ErrUnavailable,
			wantMessage: "Music API rate limit reached.",
			wantCalls:   1,
		},
		{
			name:        "service offline is unavailable",
			mood:        "happy",
			limit:       1,
			status:      http.StatusServiceUnavailable,
			response:    `{"error":11,"message":"Service Offline"}`,
			wantKind:    domain.ErrUnavailable,
			wantMessage: "Music service error.",
			wantCalls:   1,
		},
		{
			name:        "plain 5xx is unavailable",
			mood:        "happy",
			limit:       1,
			status:      http.StatusBadGateway,
			response:    `<html>bad gateway</html>`,
			wantKind:    domain.ErrUnavailable,
			wantMessage: "Music service error.",
			wantCalls:   1,
		},
		{
			name:      "malformed body is internal",
			mood:      "happy",
			limit:     1,
			status:    http.StatusOK,
			response:  `{"tracks":`,
			wantKind:  domain.ErrInternal,
			wantCalls: 1,
		},
		{
			name:        "limit below range",
			mood:        "happy",
			limit:       0,
			wantKind:    domain.ErrInvalidInput,
			wantMessage: "Limit must be greater than or equal to 1.",
			wantCalls:   0,
		},
		{
			name:        "limit above range",
			mood:        "happy",
			limit:       11,
			wantKind:    domain.ErrInvalidInput,
			wantMessage: "Limit must be less than or equal to 10.",
			wantCalls:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := newTestServer(t, tt.status, tt.response, tt.header, &calls)
			client := NewClient(srv.Client(), srv.URL, "test-key")

			got, err := client.TracksByMood(context.Background(), tt.mood, tt.limit)

			assert.Equal(t, tt.wantCalls, calls, "upstream calls")
			if tt.wantKind != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantKind), "expected %v, got %v", tt.wantKind, err)
				de := domain.AsError(err)
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, de.Message)
				}
				assert.Equal(t, tt.wantRetry, de.RetryAfter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTracksByMood_SendsQuery(t *testing.T) {
	var method, tag, limit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		method, tag, limit = q.Get("method"), q.Get("tag"), q.Get("limit")
		_, _ = w.Write([]byte(`{"tracks":{"track":[{"name":"a","url":"u","artist":{"name":"b"}}]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "test-key")
	_, err := client.TracksByMood(context.Background(), "calm", 4)

	require.NoError(t, err)
	assert.Equal(t, "tag.gettoptracks", method)
	assert.Equal(t, "calm", tag)
	assert.Equal(t, "4", limit)
}

func TestPopularTags(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		status   int
		response string
		expected []string
		wantErr  bool
	}{
		{
			name:     "filters tags below threshold",
			limit:    25,
			status:   http.StatusOK,
			response: `{"toptags":{"tag":[{"name":"rock","count":5000},{"name":"x","count":10}]}}`,
			expected: []string{"rock"},
		},
		{
			name:     "string counts and exact threshold",
			limit:    25,
			status:   http.StatusOK,
			response: `{"toptags":{"tag":[{"name":"rock","count":"4000"},{"name":"edge","count":"1000"},{"name":"pop","count":"1001"}]}}`,
			expected: []string{"rock", "pop"},
		},
		{
			name:     "truncates to limit keeping order",
			limit:    2,
			status:   http.StatusOK,
			response: `{"toptags":{"tag":[{"name":"rock","count":5000},{"name":"pop","count":4000},{"name":"jazz","count":3000}]}}`,
			expected: []string{"rock", "pop"},
		},
		{
			name:     "default limit when non-positive",
			limit:    0,
			status:   http.StatusOK,
			response: `{"toptags":{"tag":[{"name":"rock","count":5000}]}}`,
			expected: []string{"rock"},
		},
		{
			name:     "nothing clears threshold",
			limit:    25,
			status:   http.StatusOK,
			response: `{"toptags":{"tag":[{"name":"x","count":10}]}}`,
			expected: []string{},
		},
		{
			name:     "provider error is internal",
			limit:    25,
			status:   http.StatusOK,
			response: `{"error":10,"message":"Invalid API key"}`,
			wantErr:  true,
		},
		{
			name:     "rate limit is internal",
			limit:    25,
			status:   http.StatusTooManyRequests,
			response: ``,
			wantErr:  true,
		},
		{
			name:     "malformed body is internal",
			limit:    25,
			status:   http.StatusOK,
			response: `not json`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := newTestServer(t, tt.status, tt.response, nil, &calls)
			client := NewClient(srv.Client(), srv.URL, "test-key")

			got, err := client.PopularTags(context.Background(), tt.limit)

			assert.Equal(t, 1, calls)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInternal)
				assert.Equal(t, "Unable to load supported moods.", domain.AsError(err).Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPopularTags_DefaultLimitCaps(t *testing.T) {
	tags := make([]lastfmTag, 40)
	for i := range tags {
		tags[i] = lastfmTag{Name: string(rune('a' + i%26)), Count: 2000}
	}
	assert.Len(t, popularTagNames(tags, 25), 25)
}
