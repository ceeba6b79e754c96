// Package feed loads the member message feed: a plain HTTP GET returning the
// full message collection, optionally backed by a local snapshot so the
// service can come up while the feed is down. A fetch either yields the whole
// collection or fails; malformed records never produce a partial result.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/rs82696/Memeber-qa-Service/internal/model"
)

// Source yields the current message collection.
type Source interface {
	Fetch(ctx context.Context) ([]model.Message, error)
}

// HTTPSource fetches the feed over HTTP.
type HTTPSource struct {
	client *resty.Client
	url    string
	log    zerolog.Logger
}

// NewHTTPSource creates a source for the given feed URL.
func NewHTTPSource(feedURL string, timeout time.Duration, log zerolog.Logger) *HTTPSource {
	c := resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &HTTPSource{client: c, url: feedURL, log: log}
}

// Fetch downloads and parses the whole feed. Any transport failure, non-200
// status or malformed record fails the fetch as a unit, wrapped in
// model.ErrFeedUnavailable.
func (s *HTTPSource) Fetch(ctx context.Context) ([]model.Message, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", model.ErrFeedUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", model.ErrFeedUnavailable, resp.StatusCode())
	}

	msgs, err := decodeFeed(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFeedUnavailable, err)
	}

	s.log.Info().Int("messages", len(msgs)).Msg("fetched message feed")
	return msgs, nil
}

// parseTimestamp accepts RFC3339 and the common ISO-8601 shapes (with or
// without zone, space-separated, date-only). Anything else is an error —
// a message must never be stamped with "now" in place of its real send time.
func parseTimestamp(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if dt, err := strfmt.ParseDateTime(raw); err == nil {
		return time.Time(dt), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", raw)
}
