package corpus

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromReader(t *testing.T) {
	text := "The cat sat.\nThe CAT ran!\ncat, dog; cat"
	counts, err := FromReader(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"the": 2,
		"cat": 4,
		"sat": 1,
		"ran": 1,
		"dog": 1,
	}, counts)
}

func TestFromReaderKeepsApostrophes(t *testing.T) {
	counts, err := FromReader(strings.NewReader("Don't don't DON'T"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"don't": 3}, counts)
}

func TestFromReaderEmpty(t *testing.T) {
	counts, err := FromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestFromFrequencyList(t *testing.T) {
	list := `
the 23135851162
of 13151942776
Day 5
bad-line
float 12.0
zero 0
`
	counts, err := FromFrequencyList(strings.NewReader(list))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"the":   23135851162,
		"of":    13151942776,
		"day":   5,
		"float": 12,
	}, counts)
}

func TestFromFrequencyListFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freq.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha 3\nbeta 2\n"), 0o644))

	counts, err := FromFrequencyListFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"alpha": 3, "beta": 2}, counts)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha beta alpha"), 0o644))

	counts, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"alpha": 2, "beta": 1}, counts)
}

func TestFromFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("gamma gamma delta"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	counts, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"gamma": 2, "delta": 1}, counts)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	dst := map[string]int64{"a": 1, "b": 2}
	got := Merge(dst, map[string]int64{"b": 3, "c": 4})
	assert.Equal(t, map[string]int64{"a": 1, "b": 5, "c": 4}, got)
}

func TestTrim(t *testing.T) {
	counts := map[string]int64{"rare": 1, "edge": 5, "common": 6}
	Trim(counts, 5)
	assert.Equal(t, map[string]int64{"edge": 5, "common": 6}, counts)
}

func TestTrimDisabled(t *testing.T) {
	counts := map[string]int64{"rare": 1}
	Trim(counts, 0)
	assert.Equal(t, map[string]int64{"rare": 1}, counts)
}
