package retrieval

import (
	"strings"

	"github.com/rs82696/Memeber-qa-Service/internal/fuzzy"
	"github.com/rs82696/Memeber-qa-Service/internal/model"
)

// matchThreshold is the minimum partial-ratio score accepted as a member
// mention. Below it the question is treated as not being about any single
// member, which keeps generic questions on the global pool.
const matchThreshold = 70

// DetectMember returns the member the question most plausibly mentions, or
// nil when no identity reaches matchThreshold. Each identity is rated by the
// better of its full-name and first-name partial-ratio match against the
// lowercased question. Ties at the best score keep the earliest identity in
// index order (sorted by full name, then author id) — an arbitrary but
// deterministic policy. Detection is a soft filter: it narrows the candidate
// pool and never answers the question by itself.
func DetectMember(question string, members []model.Member) *model.Member {
	q := strings.ToLower(question)

	var best *model.Member
	bestScore := 0
	for i := range members {
		m := &members[i]
		score := fuzzy.PartialRatio(strings.ToLower(m.FullName), q)
		if s := fuzzy.PartialRatio(strings.ToLower(m.FirstName), q); s > score {
			score = s
		}
		if score > bestScore {
			bestScore = score
			best = m
		}
	}

	if bestScore < matchThreshold {
		return nil
	}
	return best
}
