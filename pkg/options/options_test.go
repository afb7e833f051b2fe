package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, 2, DefaultOptions.EditDistance)
	assert.False(t, DefaultOptions.CaseSensitive)
	assert.Equal(t, 3, DefaultOptions.LengthMargin)
	assert.Equal(t, int64(0), DefaultOptions.Threshold)
	assert.Empty(t, DefaultOptions.Alphabet)
}

func TestWithOverrides(t *testing.T) {
	opts := DefaultOptions
	for _, o := range []Options{
		WithEditDistance(1),
		WithCaseSensitive(),
		WithLengthMargin(5),
		WithThreshold(10),
		WithAlphabet("abc"),
	} {
		o.Apply(&opts)
	}

	assert.Equal(t, 1, opts.EditDistance)
	assert.True(t, opts.CaseSensitive)
	assert.Equal(t, 5, opts.LengthMargin)
	assert.Equal(t, int64(10), opts.Threshold)
	assert.Equal(t, "abc", opts.Alphabet)
}

func TestApplyLeavesOtherFieldsAlone(t *testing.T) {
	opts := DefaultOptions
	WithEditDistance(1).Apply(&opts)

	assert.Equal(t, 1, opts.EditDistance)
	assert.Equal(t, DefaultOptions.LengthMargin, opts.LengthMargin)
	assert.Equal(t, DefaultOptions.Threshold, opts.Threshold)
}
