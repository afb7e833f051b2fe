package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speller/internal/spell"
)

func buildChecker(t *testing.T, counts map[string]int64) *Checker {
	t.Helper()
	wf := spell.NewWordFrequency()
	require.NoError(t, wf.LoadCounts(counts))
	return New(spell.NewCorrector(wf))
}

func TestCheckCorrectsTokens(t *testing.T) {
	c := buildChecker(t, map[string]int64{"good": 30, "morning": 50})

	result := c.Check("Good morninh!")

	assert.Equal(t, "Good morninh!", result.Original)
	assert.Equal(t, "Good morning!", result.Corrected)
	require.Len(t, result.Corrections, 1)

	corr := result.Corrections[0]
	assert.Equal(t, "morninh", corr.Original)
	assert.Equal(t, "morning", corr.Corrected)
	assert.Equal(t, 5, corr.Offset)
	require.NotEmpty(t, corr.Suggestions)
	assert.Equal(t, "morning", corr.Suggestions[0].Term)
}

func TestCheckPreservesCase(t *testing.T) {
	c := buildChecker(t, map[string]int64{"morning": 50})

	result := c.Check("Morninh MORNINH")

	assert.Equal(t, "Morning MORNING", result.Corrected)
	require.Len(t, result.Corrections, 2)
	assert.Equal(t, "Morning", result.Corrections[0].Corrected)
	assert.Equal(t, "MORNING", result.Corrections[1].Corrected)
}

func TestCheckKeepsUnknownWithoutCandidates(t *testing.T) {
	c := buildChecker(t, map[string]int64{"morning": 50})

	result := c.Check("xyzzyplugh morning")

	assert.Equal(t, "xyzzyplugh morning", result.Corrected)
	require.Len(t, result.Corrections, 1)
	assert.Equal(t, "xyzzyplugh", result.Corrections[0].Original)
	assert.Empty(t, result.Corrections[0].Corrected)
	assert.Empty(t, result.Corrections[0].Suggestions)
}

func TestCheckSkipsNumbers(t *testing.T) {
	c := buildChecker(t, map[string]int64{"room": 10})

	result := c.Check("room 101, room 3.14!")

	assert.Equal(t, "room 101, room 3.14!", result.Corrected)
	assert.Empty(t, result.Corrections)
}

func TestCheckKeepsApostropheWords(t *testing.T) {
	c := buildChecker(t, map[string]int64{"don't": 5, "worry": 3})

	result := c.Check("Don't worry")

	assert.Equal(t, "Don't worry", result.Corrected)
	assert.Empty(t, result.Corrections)
}

func TestCheckReportsEveryOffset(t *testing.T) {
	c := buildChecker(t, map[string]int64{"cat": 5, "dog": 5})

	result := c.Check("cta dgo")

	assert.Equal(t, "cat dog", result.Corrected)
	require.Len(t, result.Corrections, 2)
	assert.Equal(t, 0, result.Corrections[0].Offset)
	assert.Equal(t, 4, result.Corrections[1].Offset)
}

func TestCheckEmptyText(t *testing.T) {
	c := buildChecker(t, map[string]int64{"cat": 5})

	result := c.Check("")

	assert.Equal(t, "", result.Corrected)
	assert.Empty(t, result.Corrections)
}

func TestApplyCase(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		corrected string
		want      string
	}{
		{name: "lower", original: "hello", corrected: "world", want: "world"},
		{name: "title", original: "Hello", corrected: "world", want: "World"},
		{name: "upper", original: "HELLO", corrected: "world", want: "WORLD"},
		{name: "mixed stays lower", original: "hELLO", corrected: "world", want: "world"},
		{name: "single letter", original: "H", corrected: "x", want: "X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, applyCase(tt.original, tt.corrected))
		})
	}
}

func BenchmarkCheck(b *testing.B) {
	wf := spell.NewWordFrequency()
	_ = wf.LoadCounts(map[string]int64{
		"the": 100, "quick": 40, "brown": 30, "fox": 20,
		"jumps": 15, "over": 60, "lazy": 10, "dog": 25,
	})
	c := New(spell.NewCorrector(wf))
	text := "The qiuck brown fxo jumps ovre the lzay dog"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Check(text)
	}
}
