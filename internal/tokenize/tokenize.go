// Package tokenize splits free text into the word tokens the spelling
// engine consumes. A word is a run of letters, digits, marks or
// underscores, with apostrophes allowed inside but not at the edges,
// so "don't" stays one token while quoted text sheds its quotes.
package tokenize

import "regexp"

var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_][\p{L}\p{M}\p{N}_']*[\p{L}\p{M}\p{N}_]|[\p{L}\p{M}\p{N}_]`)

// Token is a single word occurrence with its byte offsets in the
// source text, End exclusive.
type Token struct {
	Text  string
	Start int
	End   int
}

// Words returns the word tokens of text in order of appearance.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// Tokens returns the word tokens of text together with their byte
// offsets, for callers that rewrite the text in place.
func Tokens(text string) []Token {
	spans := wordPattern.FindAllStringIndex(text, -1)
	tokens := make([]Token, 0, len(spans))
	for _, span := range spans {
		tokens = append(tokens, Token{Text: text[span[0]:span[1]], Start: span[0], End: span[1]})
	}
	return tokens
}
