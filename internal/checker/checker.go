// Package checker runs the spelling engine over whole documents:
// tokenize, correct each unknown token, and rebuild the text with the
// original casing and punctuation preserved.
package checker

import (
	"strings"

	"speller/internal/spell"
	"speller/internal/tokenize"
)

// maxSuggestions caps the alternatives reported per token.
const maxSuggestions = 8

// Correction describes one token the checker replaced or flagged.
// Corrected is empty when no candidate was reachable.
type Correction struct {
	Original    string             `json:"original"`
	Corrected   string             `json:"corrected,omitempty"`
	Offset      int                `json:"offset"`
	Suggestions []spell.Suggestion `json:"suggestions,omitempty"`
}

// Result is the outcome of checking one text.
type Result struct {
	Original    string       `json:"original"`
	Corrected   string       `json:"corrected"`
	Corrections []Correction `json:"corrections,omitempty"`
}

// Checker applies a corrector token by token.
type Checker struct {
	corrector *spell.Corrector
}

// New creates a Checker over corrector.
func New(corrector *spell.Corrector) *Checker {
	return &Checker{corrector: corrector}
}

// Check corrects every unknown token of text and rebuilds it around
// the untouched spans. Tokens with no reachable candidate are reported
// but left in place.
func (c *Checker) Check(text string) Result {
	result := Result{Original: text}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, tok := range tokenize.Tokens(text) {
		b.WriteString(text[last:tok.Start])
		last = tok.End

		replacement, correction := c.checkToken(tok)
		b.WriteString(replacement)
		if correction != nil {
			result.Corrections = append(result.Corrections, *correction)
		}
	}
	b.WriteString(text[last:])

	result.Corrected = b.String()
	return result
}

func (c *Checker) checkToken(tok tokenize.Token) (string, *Correction) {
	best, ok := c.corrector.Correction(tok.Text)
	if !ok {
		return tok.Text, &Correction{Original: tok.Text, Offset: tok.Start}
	}
	// known and uncheckable tokens come back unchanged
	if best == tok.Text {
		return tok.Text, nil
	}

	suggestions := c.corrector.Suggestions(tok.Text)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	replacement := applyCase(tok.Text, best)
	return replacement, &Correction{
		Original:    tok.Text,
		Corrected:   replacement,
		Offset:      tok.Start,
		Suggestions: suggestions,
	}
}
