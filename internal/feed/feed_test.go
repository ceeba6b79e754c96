package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rs82696/Memeber-qa-Service/internal/model"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"rfc3339 utc", "2025-06-02T09:30:00Z", time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), false},
		{"rfc3339 with offset", "2025-06-02T09:30:00+02:00", time.Date(2025, 6, 2, 7, 30, 0, 0, time.UTC), false},
		{"rfc3339 fractional", "2025-06-02T09:30:00.250Z", time.Date(2025, 6, 2, 9, 30, 0, 250000000, time.UTC), false},
		{"iso without zone", "2025-06-02T09:30:00", time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), false},
		{"space separated", "2025-06-02 09:30:00", time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), false},
		{"date only", "2025-06-02", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "next friday-ish", time.Time{}, true},
		{"slash format unsupported", "02/06/2025", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimestamp(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTimestamp(%q): %v", tt.raw, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("parseTimestamp(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecodeFeed(t *testing.T) {
	valid := `{"id":"m1","user_id":"u1","user_name":"Layla Kawaguchi","timestamp":"2025-06-02T09:30:00Z","message":"hello"}`

	t.Run("envelope shape", func(t *testing.T) {
		msgs, err := decodeFeed([]byte(`{"total":1,"items":[` + valid + `]}`))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(msgs) != 1 || msgs[0].ID != "m1" || msgs[0].AuthorName != "Layla Kawaguchi" {
			t.Fatalf("unexpected messages: %+v", msgs)
		}
	})

	t.Run("bare array", func(t *testing.T) {
		msgs, err := decodeFeed([]byte(`[` + valid + `]`))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(msgs) != 1 {
			t.Fatalf("expected 1 message, got %d", len(msgs))
		}
	})

	t.Run("empty items", func(t *testing.T) {
		msgs, err := decodeFeed([]byte(`{"total":0,"items":[]}`))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(msgs) != 0 {
			t.Fatalf("expected no messages, got %d", len(msgs))
		}
	})

	t.Run("object without items", func(t *testing.T) {
		if _, err := decodeFeed([]byte(`{"total":3}`)); err == nil {
			t.Fatalf("expected error for object without items")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := decodeFeed([]byte(`{nope`)); err == nil {
			t.Fatalf("expected error for invalid json")
		}
	})

	t.Run("missing id fails the whole decode", func(t *testing.T) {
		body := `[{"user_id":"u1","user_name":"A","timestamp":"2025-06-02T09:30:00Z","message":"x"}]`
		if _, err := decodeFeed([]byte(body)); err == nil {
			t.Fatalf("expected error for missing id")
		}
	})

	t.Run("missing user_id fails the whole decode", func(t *testing.T) {
		body := `[{"id":"m1","user_name":"A","timestamp":"2025-06-02T09:30:00Z","message":"x"}]`
		if _, err := decodeFeed([]byte(body)); err == nil {
			t.Fatalf("expected error for missing user_id")
		}
	})

	t.Run("empty user_name is permitted", func(t *testing.T) {
		body := `[{"id":"m1","user_id":"u1","user_name":"","timestamp":"2025-06-02T09:30:00Z","message":"x"}]`
		msgs, err := decodeFeed([]byte(body))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if msgs[0].AuthorName != "" {
			t.Fatalf("expected empty author name, got %q", msgs[0].AuthorName)
		}
	})

	t.Run("one bad timestamp poisons the batch", func(t *testing.T) {
		body := `[` + valid + `,{"id":"m2","user_id":"u2","user_name":"B","timestamp":"whenever","message":"y"}]`
		if _, err := decodeFeed([]byte(body)); err == nil {
			t.Fatalf("expected error for unparseable timestamp")
		}
	})
}

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total":2,"items":[
			{"id":"m1","user_id":"u1","user_name":"Layla Kawaguchi","timestamp":"2025-06-02T09:30:00Z","message":"I booked an aisle seat"},
			{"id":"m2","user_id":"u2","user_name":"Lily Chen","timestamp":"2025-06-03T10:00:00Z","message":"I prefer window seats"}
		]}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, 5*time.Second, zerolog.Nop())
	msgs, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].AuthorID != "u1" || msgs[1].AuthorID != "u2" {
		t.Fatalf("collection order not preserved: %+v", msgs)
	}
	if !msgs[0].SentAt.Equal(time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected sent_at: %v", msgs[0].SentAt)
	}
}

func TestHTTPSource_FetchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, 5*time.Second, zerolog.Nop())
	_, err := src.Fetch(context.Background())
	if !errors.Is(err, model.ErrFeedUnavailable) {
		t.Fatalf("expected ErrFeedUnavailable, got %v", err)
	}
}

func TestHTTPSource_FetchMalformedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total":1,"items":[{"id":"m1","user_id":"u1","user_name":"A","timestamp":"not a time","message":"x"}]}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, 5*time.Second, zerolog.Nop())
	_, err := src.Fetch(context.Background())
	if !errors.Is(err, model.ErrFeedUnavailable) {
		t.Fatalf("expected ErrFeedUnavailable for malformed feed, got %v", err)
	}
}

func TestHTTPSource_FetchConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	src := NewHTTPSource(url, time.Second, zerolog.Nop())
	_, err := src.Fetch(context.Background())
	if !errors.Is(err, model.ErrFeedUnavailable) {
		t.Fatalf("expected ErrFeedUnavailable for dead feed, got %v", err)
	}
}
