package spell

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"

	"speller/pkg/options"
)

// WordFrequency owns the vocabulary: a word to occurrence-count map, the
// running total of all counts, and the set of distinct letters seen across
// keys. The letter set doubles as the default alphabet for candidate
// generation. Counts only grow through Add/Load calls and only shrink
// through the Remove family; total stays equal to the sum of all counts
// throughout.
type WordFrequency struct {
	counts        map[string]int64
	total         int64
	letters       mapset.Set[rune]
	longest       int
	caseSensitive bool
	threshold     int64
}

// NewWordFrequency returns an empty store. Case sensitivity and the
// compaction threshold are fixed here and cannot change afterwards.
func NewWordFrequency(opts ...options.Options) *WordFrequency {
	conf := options.DefaultOptions
	for _, o := range opts {
		o.Apply(&conf)
	}
	return &WordFrequency{
		counts:        make(map[string]int64),
		letters:       mapset.NewThreadUnsafeSet[rune](),
		caseSensitive: conf.CaseSensitive,
		threshold:     conf.Threshold,
	}
}

// normalize folds case unless the store is case sensitive. Normalizing an
// already normalized word is a no-op.
func (wf *WordFrequency) normalize(word string) string {
	if wf.caseSensitive {
		return word
	}
	return strings.ToLower(word)
}

// Query returns the stored count for the normalized word, or 0 if absent.
func (wf *WordFrequency) Query(word string) int64 {
	return wf.counts[wf.normalize(word)]
}

// Contains reports whether the normalized word is present.
func (wf *WordFrequency) Contains(word string) bool {
	return wf.Query(word) > 0
}

// Add increments the word's count, creating the entry when absent.
// Non-positive counts are rejected with ErrInvalidCount.
func (wf *WordFrequency) Add(word string, count int64) error {
	if count <= 0 {
		return fmt.Errorf("add %q with count %d: %w", word, count, ErrInvalidCount)
	}
	wf.insert(wf.normalize(word), count)
	return nil
}

func (wf *WordFrequency) insert(word string, count int64) {
	wf.counts[word] += count
	wf.total += count
	for _, r := range word {
		wf.letters.Add(r)
	}
	if n := utf8.RuneCountInString(word); n > wf.longest {
		wf.longest = n
	}
}

// LoadCounts bulk-seeds the store from a word to count mapping, the same
// shape Export produces. All values are validated before any is applied,
// so a bad mapping leaves the store untouched.
func (wf *WordFrequency) LoadCounts(counts map[string]int64) error {
	for word, count := range counts {
		if count <= 0 {
			return fmt.Errorf("load %q with count %d: %w", word, count, ErrInvalidCount)
		}
	}
	for word, count := range counts {
		wf.insert(wf.normalize(word), count)
	}
	return nil
}

// LoadWords ingests a flat token sequence; every occurrence of a word adds
// one to its count, so repeated tokens accumulate.
func (wf *WordFrequency) LoadWords(words []string) {
	for _, w := range words {
		wf.insert(wf.normalize(w), 1)
	}
}

// Remove deletes the word's entry entirely, not just a decrement, and
// subtracts its count from the total. Absent words are a no-op. Letters
// contributed by the word are kept; other words may still use them.
func (wf *WordFrequency) Remove(word string) {
	w := wf.normalize(word)
	count, ok := wf.counts[w]
	if !ok {
		return
	}
	delete(wf.counts, w)
	wf.total -= count
}

// RemoveWords applies Remove to each element.
func (wf *WordFrequency) RemoveWords(words []string) {
	for _, w := range words {
		wf.Remove(w)
	}
}

// RemoveByThreshold purges every entry whose count is strictly below min.
func (wf *WordFrequency) RemoveByThreshold(min int64) {
	for word, count := range wf.counts {
		if count < min {
			delete(wf.counts, word)
			wf.total -= count
		}
	}
}

// Compact purges entries below the threshold configured at construction.
// Without a configured threshold it does nothing.
func (wf *WordFrequency) Compact() {
	if wf.threshold > 0 {
		wf.RemoveByThreshold(wf.threshold)
	}
}

// WordUsageFrequency returns the word's share of all observed occurrences,
// 0.0 for an empty store.
func (wf *WordFrequency) WordUsageFrequency(word string) float64 {
	if wf.total == 0 {
		return 0.0
	}
	return float64(wf.Query(word)) / float64(wf.total)
}

// Total returns the sum of all counts.
func (wf *WordFrequency) Total() int64 { return wf.total }

// UniqueWords returns the number of distinct words stored.
func (wf *WordFrequency) UniqueWords() int { return len(wf.counts) }

// LongestWordLength returns the rune length of the longest word ever
// inserted. It does not shrink on Remove.
func (wf *WordFrequency) LongestWordLength() int { return wf.longest }

// CaseSensitive reports the normalization policy fixed at construction.
func (wf *WordFrequency) CaseSensitive() bool { return wf.caseSensitive }

// Letters returns the distinct runes observed across all keys, sorted.
func (wf *WordFrequency) Letters() []rune {
	letters := wf.letters.ToSlice()
	slices.Sort(letters)
	return letters
}

// Words iterates over the stored words in sorted order, so downstream
// output is reproducible within a run and across runs.
func (wf *WordFrequency) Words() iter.Seq[string] {
	keys := slices.Sorted(maps.Keys(wf.counts))
	return func(yield func(string) bool) {
		for _, w := range keys {
			if !yield(w) {
				return
			}
		}
	}
}

// Items iterates over (word, count) pairs in sorted key order.
func (wf *WordFrequency) Items() iter.Seq2[string, int64] {
	keys := slices.Sorted(maps.Keys(wf.counts))
	return func(yield func(string, int64) bool) {
		for _, w := range keys {
			if !yield(w, wf.counts[w]) {
				return
			}
		}
	}
}

// Export returns a snapshot copy of the word to count mapping in the shape
// LoadCounts accepts, enabling round-trip persistence.
func (wf *WordFrequency) Export() map[string]int64 {
	return maps.Clone(wf.counts)
}
