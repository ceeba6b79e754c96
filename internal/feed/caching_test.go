package feed

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rs82696/Memeber-qa-Service/internal/model"
)

type fakeSource struct {
	msgs  []model.Message
	err   error
	calls int
}

func (f *fakeSource) Fetch(ctx context.Context) ([]model.Message, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.msgs, nil
}

func TestCachingSource_SavesLiveResult(t *testing.T) {
	store := openTestStore(t)
	sentAt := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	live := &fakeSource{msgs: []model.Message{storeMsg("m1", "u1", "Layla Kawaguchi", "hello", sentAt)}}

	src := NewCachingSource(live, store, zerolog.Nop())
	got, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 1 || got[0].ID != "m1" {
		t.Fatalf("unexpected live result: %+v", got)
	}

	cached, _, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("expected snapshot persisted, load failed: %v", err)
	}
	if len(cached) != 1 || cached[0].ID != "m1" {
		t.Fatalf("unexpected persisted snapshot: %+v", cached)
	}
}

func TestCachingSource_ServesSnapshotWhenLiveFails(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	sentAt := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	if err := store.Save(ctx, []model.Message{storeMsg("m1", "u1", "Layla Kawaguchi", "cached", sentAt)}, sentAt); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	live := &fakeSource{err: fmt.Errorf("%w: connection refused", model.ErrFeedUnavailable)}
	src := NewCachingSource(live, store, zerolog.Nop())

	got, err := src.Fetch(ctx)
	if err != nil {
		t.Fatalf("expected snapshot fallback, got error: %v", err)
	}
	if len(got) != 1 || got[0].Text != "cached" {
		t.Fatalf("unexpected fallback result: %+v", got)
	}
	if live.calls != 1 {
		t.Fatalf("expected exactly one live attempt, got %d", live.calls)
	}
}

func TestCachingSource_NoSnapshotSurfacesLiveError(t *testing.T) {
	store := openTestStore(t)
	liveErr := fmt.Errorf("%w: connection refused", model.ErrFeedUnavailable)
	src := NewCachingSource(&fakeSource{err: liveErr}, store, zerolog.Nop())

	_, err := src.Fetch(context.Background())
	if !errors.Is(err, model.ErrFeedUnavailable) {
		t.Fatalf("expected the live error to surface, got %v", err)
	}
}
