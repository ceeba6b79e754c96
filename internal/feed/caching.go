package feed

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rs82696/Memeber-qa-Service/internal/model"
)

// CachingSource wraps a live Source and keeps the last good result in a
// SnapshotStore. When the live fetch fails it serves the stored copy, so a
// restart does not depend on the feed being up.
type CachingSource struct {
	live  Source
	store *SnapshotStore
	log   zerolog.Logger
}

// NewCachingSource combines a live source with a snapshot store.
func NewCachingSource(live Source, store *SnapshotStore, log zerolog.Logger) *CachingSource {
	return &CachingSource{live: live, store: store, log: log}
}

// Fetch prefers the live feed and falls back to the stored snapshot. A failed
// snapshot write never fails the fetch; a missing snapshot surfaces the live
// error unchanged.
func (c *CachingSource) Fetch(ctx context.Context) ([]model.Message, error) {
	msgs, liveErr := c.live.Fetch(ctx)
	if liveErr == nil {
		if err := c.store.Save(ctx, msgs, time.Now().UTC()); err != nil {
			c.log.Warn().Err(err).Msg("failed to persist feed snapshot")
		}
		return msgs, nil
	}

	cached, savedAt, err := c.store.Load(ctx)
	if err != nil {
		return nil, liveErr
	}
	c.log.Warn().
		Err(liveErr).
		Time("saved_at", savedAt).
		Int("messages", len(cached)).
		Msg("live feed unavailable, serving stored snapshot")
	return cached, nil
}
