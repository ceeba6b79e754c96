package retrieval

import (
	"sort"

	"github.com/rs82696/Memeber-qa-Service/internal/corpus"
	"github.com/rs82696/Memeber-qa-Service/internal/model"
)

// DefaultWindowSize bounds the context window when no size is configured.
const DefaultWindowSize = 10

// Selection is the outcome of one retrieval pass: the member the question
// was judged to be about (nil when none), the bounded context window, and
// whether the member-restricted pool was abandoned for the global one.
type Selection struct {
	Member   *model.Member
	Items    []model.ContextItem
	Fallback bool
}

// Selector builds context windows of at most windowSize items.
type Selector struct {
	windowSize int
}

// NewSelector returns a Selector; non-positive sizes fall back to
// DefaultWindowSize.
func NewSelector(windowSize int) *Selector {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &Selector{windowSize: windowSize}
}

type scoredCandidate struct {
	msg   model.Message
	score int
}

// Select runs the retrieval sequence: detect the member, score the narrowed
// pool, widen to the full collection when the narrowed pool carries no token
// overlap at all, then sort and truncate. The sort is stable so equal scores
// keep original collection order and repeated calls return identical windows.
// An empty question or an empty collection yields an empty window, not an
// error.
func (s *Selector) Select(question string, snap *corpus.Snapshot) Selection {
	member := DetectMember(question, snap.Members)
	qTokens := Tokenize(question)

	sel := Selection{Member: member}

	var scored []scoredCandidate
	if member != nil {
		scored = scorePool(qTokens, snap.ByAuthor(member.AuthorID), member)
		// Every candidate in a member pool carries the authorship bonus, so a
		// best score at or below the bonus means zero token overlap anywhere
		// in the pool. A confident member match must not starve retrieval
		// when the answer lives in someone else's message: widen to the full
		// collection, scored without the bonus.
		if maxScore(scored) <= authorBonus {
			scored = scorePool(qTokens, snap.Messages, nil)
			sel.Fallback = true
		}
	} else {
		scored = scorePool(qTokens, snap.Messages, nil)
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > s.windowSize {
		scored = scored[:s.windowSize]
	}

	for _, c := range scored {
		sel.Items = append(sel.Items, model.ContextItem{
			AuthorName: c.msg.AuthorName,
			SentAt:     c.msg.SentAt,
			Text:       c.msg.Text,
		})
	}
	return sel
}

// scorePool scores every candidate and keeps the positively scored ones in
// pool order.
func scorePool(qTokens map[string]struct{}, pool []model.Message, member *model.Member) []scoredCandidate {
	var kept []scoredCandidate
	for _, m := range pool {
		if sc := Score(qTokens, m, member); sc > 0 {
			kept = append(kept, scoredCandidate{msg: m, score: sc})
		}
	}
	return kept
}

func maxScore(scored []scoredCandidate) int {
	best := 0
	for _, c := range scored {
		if c.score > best {
			best = c.score
		}
	}
	return best
}
