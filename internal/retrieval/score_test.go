package retrieval

import (
	"testing"
	"time"

	"github.com/rs82696/Memeber-qa-Service/internal/model"
)

func scoreMsg(authorID, text string) model.Message {
	return model.Message{
		ID:         "m-" + authorID,
		AuthorID:   authorID,
		AuthorName: "Member " + authorID,
		SentAt:     time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		Text:       text,
	}
}

func TestScore_CountsExactTokenOverlap(t *testing.T) {
	q := Tokenize("What seat does Layla prefer?")

	tests := []struct {
		name string
		text string
		want int
	}{
		{"single shared token", "I prefer window seats", 1}, // "seats" is not "seat"
		{"two shared tokens", "My seat preference? I prefer aisles.", 2},
		{"no shared tokens", "Lunch was great today", 0},
		{"stopwords never count", "I have a the on in", 0},
		{"empty text", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(q, scoreMsg("u9", tt.text), nil)
			if got != tt.want {
				t.Fatalf("Score(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestScore_AuthorBonusOutranksSameOverlap(t *testing.T) {
	q := Tokenize("What seat does Layla prefer?")
	detected := &model.Member{AuthorID: "u1", FullName: "Layla Kawaguchi", FirstName: "Layla"}

	authored := Score(q, scoreMsg("u1", "I prefer aisle seats"), detected)
	other := Score(q, scoreMsg("u2", "I prefer aisle seats"), detected)

	if authored <= other {
		t.Fatalf("expected authored message to score strictly higher: %d vs %d", authored, other)
	}
	if authored != other+1 {
		t.Fatalf("expected a bonus of exactly 1, got %d vs %d", authored, other)
	}
}

func TestScore_NoBonusWithoutDetectedMember(t *testing.T) {
	q := Tokenize("What seat does Layla prefer?")

	got := Score(q, scoreMsg("u1", "I prefer aisle seats"), nil)
	want := Score(q, scoreMsg("u2", "I prefer aisle seats"), nil)
	if got != want {
		t.Fatalf("expected identical scores without a detected member: %d vs %d", got, want)
	}
}

func TestScore_BonusAppliesAtZeroOverlap(t *testing.T) {
	q := Tokenize("What seat does Layla prefer?")
	detected := &model.Member{AuthorID: "u1", FullName: "Layla Kawaguchi", FirstName: "Layla"}

	if got := Score(q, scoreMsg("u1", "Lunch was great today"), detected); got != 1 {
		t.Fatalf("expected bonus-only score 1, got %d", got)
	}
	if got := Score(q, scoreMsg("u2", "Lunch was great today"), detected); got != 0 {
		t.Fatalf("expected 0 for unrelated author with zero overlap, got %d", got)
	}
}
