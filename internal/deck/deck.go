// Package deck loads card content from deck files. A deck file is a
// JSON array of objects with "prompt" and "answer" fields.
package deck

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
)

// entry is the wire shape of one card in a deck file.
type entry struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// Load reads a deck file and returns its raw card contents in file
// order. Per-card validation and deduplication happen later, in
// domain.NewDeck, so a file with some broken entries still loads; only
// an unreadable file, malformed JSON, or an empty array is an error
// here.
func Load(path string) ([]domain.CardContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse deck %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("deck %s: %w", path, domain.ErrEmptyDeck)
	}

	contents := make([]domain.CardContent, len(entries))
	for i, e := range entries {
		contents[i] = domain.CardContent{Prompt: e.Prompt, Answer: e.Answer}
	}
	return contents, nil
}
