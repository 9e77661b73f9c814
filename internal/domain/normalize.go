package domain

import (
	"strings"
	"unicode"
)

// NormalizeContent prepares card text for storage and identity hashing:
//   - trims leading/trailing whitespace
//   - compresses internal whitespace runs (spaces, tabs, newlines) into
//     one space
//   - drops non-whitespace control characters
//
// Case, diacritics, and punctuation are preserved; card text is shown
// to the learner as-is.
func NormalizeContent(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
