package retrieval

import "github.com/rs82696/Memeber-qa-Service/internal/model"

// authorBonus is added when the candidate was authored by the detected
// member, so the member's own messages rank ahead of equal-overlap messages
// by other authors.
const authorBonus = 1

// Score rates one candidate against the question token set: the number of
// shared content tokens, plus authorBonus when member is non-nil and authored
// the message. Zero is an ordinary score, not a failure.
func Score(questionTokens map[string]struct{}, msg model.Message, member *model.Member) int {
	overlap := 0
	for tok := range Tokenize(msg.Text) {
		if _, ok := questionTokens[tok]; ok {
			overlap++
		}
	}

	score := overlap
	if member != nil && msg.AuthorID == member.AuthorID {
		score += authorBonus
	}
	return score
}
