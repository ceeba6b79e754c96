package answer

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs82696/Memeber-qa-Service/internal/model"
)

// InsufficientContext is the fixed sentinel reply for questions the supplied
// messages cannot answer.
const InsufficientContext = "I can't tell from the available messages."

// SystemPrompt pins the model to the supplied messages and the sentinel
// reply. Timestamps are included in the context so relative dates inside a
// message stay interpretable.
const SystemPrompt = `You are a precise assistant that answers questions about member messages.
You are given a list of messages with timestamps.
- Only use the information in those messages.
- If the answer is not clearly stated, respond with:
  "I can't tell from the available messages."
- If a message uses relative dates like "this Friday" or "next month", interpret them relative to the message timestamp.
- Answer in one or two short sentences.`

// BuildUserPrompt renders the question and the numbered context block. Every
// item carries its author and verbatim send time.
func BuildUserPrompt(question string, items []model.ContextItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\nMessages:\n", question)
	for i, it := range items {
		fmt.Fprintf(&b, "[%d] user=%s timestamp=%s text=%s\n",
			i+1, it.AuthorName, it.SentAt.Format(time.RFC3339), it.Text)
	}
	b.WriteString("\nAnswer the question using only the messages above.")
	return b.String()
}
