// Package answer defines the generative collaborator that turns a question
// and its selected context window into the final reply.
package answer

import (
	"context"

	"github.com/rs82696/Memeber-qa-Service/internal/model"
)

// Provider synthesizes an answer from the question and the context items, in
// the order given. Implementations must answer only from the supplied
// context and reply with InsufficientContext when it does not hold the
// answer.
type Provider interface {
	Answer(ctx context.Context, question string, items []model.ContextItem) (string, error)
}
