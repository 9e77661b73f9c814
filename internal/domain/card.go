package domain

import (
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/blake2b"
)

// MaxContentRunes bounds the length of a card's prompt and answer.
const MaxContentRunes = 2000

// cardIDBytes is the truncated digest length; 16 bytes (32 hex chars)
// is plenty for deck-scale collision resistance.
const cardIDBytes = 16

// CardID is a stable, content-derived card identifier. Two cards with
// the same normalized prompt and answer share an ID, so reordering and
// filtering a deck never invalidate identity.
type CardID string

func (id CardID) String() string { return string(id) }

// NewCardID derives the identifier from normalized card text. The
// separator byte cannot appear in normalized content, so distinct
// (prompt, answer) pairs never collide by concatenation.
func NewCardID(prompt, answer string) CardID {
	sum := blake2b.Sum256([]byte(prompt + "\x1f" + answer))
	return CardID(hex.EncodeToString(sum[:cardIDBytes]))
}

// CardContent is the raw material of one flashcard.
type CardContent struct {
	Prompt string
	Answer string
}

// Validate checks the content after normalization.
func (c CardContent) Validate() error {
	var errs []FieldError

	prompt := NormalizeContent(c.Prompt)
	answer := NormalizeContent(c.Answer)

	if prompt == "" {
		errs = append(errs, FieldError{Field: "prompt", Message: "must not be empty"})
	} else if n := utf8.RuneCountInString(prompt); n > MaxContentRunes {
		errs = append(errs, FieldError{Field: "prompt", Message: fmt.Sprintf("must be at most %d characters, got %d", MaxContentRunes, n)})
	}

	if answer == "" {
		errs = append(errs, FieldError{Field: "answer", Message: "must not be empty"})
	} else if n := utf8.RuneCountInString(answer); n > MaxContentRunes {
		errs = append(errs, FieldError{Field: "answer", Message: fmt.Sprintf("must be at most %d characters, got %d", MaxContentRunes, n)})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Card is an immutable deck member: normalized content plus its
// derived identifier.
type Card struct {
	ID CardID
	CardContent
}

// DroppedCard reports one input entry rejected during deck construction.
type DroppedCard struct {
	Index  int
	Reason string
}

// NewDeck builds an ordered deck from raw content. Invalid entries are
// dropped and reported, never fatal on their own; entries whose
// identifier duplicates an earlier card collapse to the first
// occurrence. Returns ErrEmptyDeck when nothing survives.
func NewDeck(contents []CardContent) ([]Card, []DroppedCard, error) {
	cards := make([]Card, 0, len(contents))
	var dropped []DroppedCard
	seen := make(map[CardID]struct{}, len(contents))

	for i, c := range contents {
		if err := c.Validate(); err != nil {
			dropped = append(dropped, DroppedCard{Index: i, Reason: err.Error()})
			continue
		}
		normalized := CardContent{
			Prompt: NormalizeContent(c.Prompt),
			Answer: NormalizeContent(c.Answer),
		}
		id := NewCardID(normalized.Prompt, normalized.Answer)
		if _, ok := seen[id]; ok {
			dropped = append(dropped, DroppedCard{Index: i, Reason: "duplicate of an earlier card"})
			continue
		}
		seen[id] = struct{}{}
		cards = append(cards, Card{ID: id, CardContent: normalized})
	}

	if len(cards) == 0 {
		return nil, dropped, ErrEmptyDeck
	}
	return cards, dropped, nil
}
