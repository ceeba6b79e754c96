package feed

import (
	"encoding/json"
	"fmt"

	"github.com/rs82696/Memeber-qa-Service/internal/model"
)

// feedItem is one raw record of the upstream feed.
type feedItem struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// feedEnvelope is the documented feed shape: {"total": n, "items": [...]}.
type feedEnvelope struct {
	Total int         `json:"total"`
	Items *[]feedItem `json:"items"`
}

// decodeFeed parses the feed body, accepting either the envelope shape or a
// bare array of records, and converts every record. The first bad record
// fails the whole decode.
func decodeFeed(body []byte) ([]model.Message, error) {
	var items []feedItem

	var env feedEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Items == nil {
			return nil, fmt.Errorf("feed object has no items field")
		}
		items = *env.Items
	} else {
		if aerr := json.Unmarshal(body, &items); aerr != nil {
			return nil, fmt.Errorf("feed is neither an items object nor an array: %v", err)
		}
	}

	msgs := make([]model.Message, 0, len(items))
	for i, it := range items {
		m, err := it.toMessage()
		if err != nil {
			return nil, fmt.Errorf("feed item %d: %v", i, err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// toMessage validates the record and converts it. id and user_id are
// required; user_name and message may be empty strings.
func (it feedItem) toMessage() (model.Message, error) {
	if it.ID == "" {
		return model.Message{}, fmt.Errorf("missing id")
	}
	if it.UserID == "" {
		return model.Message{}, fmt.Errorf("missing user_id")
	}
	sentAt, err := parseTimestamp(it.Timestamp)
	if err != nil {
		return model.Message{}, err
	}
	return model.Message{
		ID:         it.ID,
		AuthorID:   it.UserID,
		AuthorName: it.UserName,
		SentAt:     sentAt,
		Text:       it.Message,
	}, nil
}
