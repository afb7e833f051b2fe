package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain sentence",
			text: "The quick brown fox",
			want: []string{"The", "quick", "brown", "fox"},
		},
		{
			name: "punctuation between words",
			text: "hello,world;and: more!",
			want: []string{"hello", "world", "and", "more"},
		},
		{
			name: "inner apostrophe kept",
			text: "don't shan't o'clock",
			want: []string{"don't", "shan't", "o'clock"},
		},
		{
			name: "edge apostrophes dropped",
			text: "'round the dogs' bowls'",
			want: []string{"round", "the", "dogs", "bowls"},
		},
		{
			name: "digits and underscores",
			text: "var_1 = 42",
			want: []string{"var_1", "42"},
		},
		{
			name: "single letters",
			text: "a b c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "cyrillic",
			text: "привет, мир",
			want: []string{"привет", "мир"},
		},
		{
			name: "accented",
			text: "café naïve",
			want: []string{"café", "naïve"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "only punctuation",
			text: "... !!! ???",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.text))
		})
	}
}

func TestTokensOffsets(t *testing.T) {
	text := "no, wait"
	tokens := Tokens(text)
	assert.Equal(t, []Token{
		{Text: "no", Start: 0, End: 2},
		{Text: "wait", Start: 4, End: 8},
	}, tokens)
}

func TestTokensOffsetsMultibyte(t *testing.T) {
	// offsets are byte positions, so multibyte runes shift later tokens
	text := "мир ok"
	tokens := Tokens(text)
	assert.Equal(t, []Token{
		{Text: "мир", Start: 0, End: 6},
		{Text: "ok", Start: 7, End: 9},
	}, tokens)
}

func TestTokensSliceBackIntoText(t *testing.T) {
	text := "Good morninh, friend!"
	for _, tok := range Tokens(text) {
		assert.Equal(t, tok.Text, text[tok.Start:tok.End])
	}
}

func BenchmarkWords(b *testing.B) {
	text := "The quick brown fox jumps over the lazy dog, doesn't it? Again and again and again."
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Words(text)
	}
}
