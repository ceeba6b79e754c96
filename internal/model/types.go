package model

import "time"

// Message is one immutable record from the member message feed.
// SentAt is the original authoring time and must travel with the message
// wherever it is surfaced; relative dates in Text ("this Friday") are only
// interpretable against it.
type Message struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	SentAt     time.Time `json:"sentAt"`
	Text       string    `json:"text"`
}

// Member is a derived identity: one distinct (author id, author name) pair
// observed in the loaded feed. FirstName is the substring of FullName before
// the first whitespace. Members are rebuilt with the corpus, never mutated.
type Member struct {
	AuthorID  string `json:"authorId"`
	FullName  string `json:"fullName"`
	FirstName string `json:"firstName"`
}

// ContextItem is one entry of the bounded context window handed to the
// answer provider: author display name, verbatim send time, raw text.
type ContextItem struct {
	AuthorName string    `json:"authorName"`
	SentAt     time.Time `json:"sentAt"`
	Text       string    `json:"text"`
}

// CorpusInfo summarizes the currently served snapshot for /health and
// /reload responses.
type CorpusInfo struct {
	Messages int       `json:"messagesLoaded"`
	Members  int       `json:"members"`
	LoadedAt time.Time `json:"loadedAt"`
}
