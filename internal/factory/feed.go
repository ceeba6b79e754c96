package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rs82696/Memeber-qa-Service/internal/config"
	"github.com/rs82696/Memeber-qa-Service/internal/feed"
)

// NewFeedSource returns the message feed source. With a snapshot path
// configured the HTTP source is wrapped so fetches are persisted and the
// last good snapshot serves as a fallback when the feed is down.
func NewFeedSource(cfg *config.Config, log zerolog.Logger) (feed.Source, error) {
	live := feed.NewHTTPSource(cfg.FeedURL, cfg.FeedTimeout(), log)
	if cfg.SnapshotPath == "" {
		return live, nil
	}

	store, err := feed.OpenSnapshotStore(cfg.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("open feed snapshot store: %w", err)
	}
	log.Info().Str("path", cfg.SnapshotPath).Msg("feed snapshot store enabled")
	return feed.NewCachingSource(live, store, log), nil
}
