// Package corpus holds the loaded message collection and the member index
// derived from it. A Snapshot is immutable once built; reloads build a fresh
// Snapshot and swap it in atomically so readers never observe a partial index.
package corpus

import (
	"sort"
	"strings"
	"time"

	"github.com/rs82696/Memeber-qa-Service/internal/model"
)

// Snapshot is one immutable view of the corpus: every message in collection
// order, the distinct member identities observed in it, and the per-author
// message groups. Members is sorted by (full name, author id) so detector
// iteration order is stable across rebuilds of the same data.
type Snapshot struct {
	Messages []model.Message
	Members  []model.Member
	LoadedAt time.Time

	byAuthor map[string][]model.Message
}

// Build scans messages once and derives the member index. Duplicate
// (author id, author name) pairs collapse into one identity; the same name
// under two distinct ids stays two identities. Zero messages produce an
// empty, servable snapshot.
func Build(messages []model.Message, loadedAt time.Time) *Snapshot {
	s := &Snapshot{
		Messages: messages,
		LoadedAt: loadedAt,
		byAuthor: make(map[string][]model.Message),
	}

	type identity struct{ id, name string }
	seen := make(map[identity]bool)
	for _, m := range messages {
		s.byAuthor[m.AuthorID] = append(s.byAuthor[m.AuthorID], m)

		key := identity{id: m.AuthorID, name: m.AuthorName}
		if seen[key] {
			continue
		}
		seen[key] = true
		s.Members = append(s.Members, model.Member{
			AuthorID:  m.AuthorID,
			FullName:  m.AuthorName,
			FirstName: firstName(m.AuthorName),
		})
	}

	sort.Slice(s.Members, func(i, j int) bool {
		if s.Members[i].FullName != s.Members[j].FullName {
			return s.Members[i].FullName < s.Members[j].FullName
		}
		return s.Members[i].AuthorID < s.Members[j].AuthorID
	})
	return s
}

// ByAuthor returns the member's messages in original collection order.
// Callers must not mutate the returned slice.
func (s *Snapshot) ByAuthor(authorID string) []model.Message {
	return s.byAuthor[authorID]
}

// Info summarizes the snapshot for health and reload responses.
func (s *Snapshot) Info() model.CorpusInfo {
	return model.CorpusInfo{
		Messages: len(s.Messages),
		Members:  len(s.Members),
		LoadedAt: s.LoadedAt,
	}
}

// firstName is the first whitespace-delimited token of full, or "" when full
// has none.
func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
