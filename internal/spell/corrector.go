// Package spell implements a frequency-ranked spelling corrector: unknown
// words are matched against the vocabulary through their single and double
// edit neighborhoods, and the known survivors are ranked by how often they
// occur in the corpus the dictionary was built from.
package spell

import (
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hbollon/go-edlib"

	"speller/pkg/options"
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Corrector proposes corrections for misspelled words. It holds a
// reference to the WordFrequency it consults, never a copy, so external
// mutation through the store is visible to subsequent queries. The
// corrector itself carries no per-query state.
type Corrector struct {
	wf           *WordFrequency
	distance     int
	lengthMargin int
	alphabet     []rune
}

// NewCorrector wires a corrector to its vocabulary. WithEditDistance,
// WithLengthMargin, and WithAlphabet apply here; an empty alphabet option
// means the dictionary's own letter set is used per query.
func NewCorrector(wf *WordFrequency, opts ...options.Options) *Corrector {
	conf := options.DefaultOptions
	for _, o := range opts {
		o.Apply(&conf)
	}
	c := &Corrector{
		wf:           wf,
		lengthMargin: conf.LengthMargin,
	}
	if conf.Alphabet != "" {
		c.alphabet = []rune(conf.Alphabet)
	}
	c.SetDistance(conf.EditDistance)
	return c
}

// WordFrequency exposes the underlying vocabulary for mutation.
func (c *Corrector) WordFrequency() *WordFrequency { return c.wf }

// Distance returns the maximum edit distance used by queries.
func (c *Corrector) Distance() int { return c.distance }

// SetDistance changes the maximum edit distance for subsequent queries
// only; the vocabulary is untouched. Values outside {1, 2} fall back to 2.
func (c *Corrector) SetDistance(distance int) {
	if distance < 1 || distance > 2 {
		distance = 2
	}
	c.distance = distance
}

func (c *Corrector) letters() []rune {
	if c.alphabet != nil {
		return c.alphabet
	}
	return c.wf.Letters()
}

// shouldCheck reports whether a word is worth spell checking at all.
// Single punctuation characters, anything that parses as a number, and
// words more than lengthMargin runes longer than the longest dictionary
// word are passed through untouched.
func (c *Corrector) shouldCheck(word string) bool {
	runes := []rune(word)
	if len(runes) == 1 && strings.ContainsRune(punctuation, runes[0]) {
		return false
	}
	if len(runes) > c.wf.LongestWordLength()+c.lengthMargin {
		return false
	}
	if _, err := strconv.ParseFloat(word, 64); err == nil {
		return false
	}
	return true
}

// Known returns the normalized members of words present in the
// vocabulary. Duplicates in the input collapse; uncheckable words are
// dropped.
func (c *Corrector) Known(words []string) mapset.Set[string] {
	out := mapset.NewThreadUnsafeSet[string]()
	for _, w := range words {
		n := c.wf.normalize(w)
		if c.wf.Contains(n) && c.shouldCheck(n) {
			out.Add(n)
		}
	}
	return out
}

// Unknown returns the normalized members of words absent from the
// vocabulary. Uncheckable words (numbers, bare punctuation, over-long
// strings) appear in neither the Known nor the Unknown view.
func (c *Corrector) Unknown(words []string) mapset.Set[string] {
	out := mapset.NewThreadUnsafeSet[string]()
	for _, w := range words {
		n := c.wf.normalize(w)
		if c.shouldCheck(n) && !c.wf.Contains(n) {
			out.Add(n)
		}
	}
	return out
}

// Candidates returns the known words reachable from word within the
// configured edit distance. The boolean is false when nothing reachable
// exists; a true result containing the query itself means the word is
// already correct or was skipped as uncheckable. At distance 2 the result
// always unions the distance-1 and distance-2 hits, so a closer match is
// never displaced by the wider search. At distance 1 an empty first pass
// triggers one last-resort pass at distance 2 before giving up.
func (c *Corrector) Candidates(word string) (mapset.Set[string], bool) {
	norm := c.wf.normalize(word)
	if c.wf.Contains(norm) {
		return mapset.NewThreadUnsafeSet(word), true
	}
	if !c.shouldCheck(norm) {
		return mapset.NewThreadUnsafeSet(word), true
	}
	alphabet := c.letters()
	edits := Edits1(norm, alphabet)
	known1 := c.knownIn(edits)
	if c.distance == 1 && !known1.IsEmpty() {
		return known1, true
	}
	result := known1.Union(c.knownExpansion(edits, alphabet))
	if result.IsEmpty() {
		return nil, false
	}
	return result, true
}

// Correction returns the single most probable spelling for word, or false
// when no candidate exists. Frequency ties resolve to the
// lexicographically smallest candidate so repeat queries against an
// unchanged vocabulary are reproducible.
func (c *Corrector) Correction(word string) (string, bool) {
	candidates, ok := c.Candidates(word)
	if !ok {
		return "", false
	}
	ordered := candidates.ToSlice()
	slices.Sort(ordered)
	best := ordered[0]
	bestCount := c.wf.Query(best)
	for _, cand := range ordered[1:] {
		if count := c.wf.Query(cand); count > bestCount {
			best, bestCount = cand, count
		}
	}
	return best, true
}

// Suggestion is one ranked correction candidate.
type Suggestion struct {
	Term      string `json:"term"`
	Distance  int    `json:"distance"`
	Frequency int64  `json:"frequency"`
}

// Suggestions returns the candidate set ranked for display: closest edit
// distance first, then higher frequency, then lexicographic order. Nil
// means no candidate exists.
func (c *Corrector) Suggestions(word string) []Suggestion {
	candidates, ok := c.Candidates(word)
	if !ok {
		return nil
	}
	norm := c.wf.normalize(word)
	out := make([]Suggestion, 0, candidates.Cardinality())
	candidates.Each(func(term string) bool {
		out = append(out, Suggestion{
			Term:      term,
			Distance:  edlib.OSADamerauLevenshteinDistance(norm, term),
			Frequency: c.wf.Query(term),
		})
		return false
	})
	slices.SortFunc(out, func(a, b Suggestion) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		if a.Frequency != b.Frequency {
			if a.Frequency > b.Frequency {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Term, b.Term)
	})
	return out
}

// knownIn filters a candidate set down to checkable vocabulary members.
func (c *Corrector) knownIn(words mapset.Set[string]) mapset.Set[string] {
	out := mapset.NewThreadUnsafeSet[string]()
	words.Each(func(w string) bool {
		if c.wf.Contains(w) && c.shouldCheck(w) {
			out.Add(w)
		}
		return false
	})
	return out
}

// knownExpansion walks the distance-2 neighborhood member by member,
// collecting only known words, so the full distance-2 set is never
// materialized.
func (c *Corrector) knownExpansion(edits mapset.Set[string], alphabet []rune) mapset.Set[string] {
	out := mapset.NewThreadUnsafeSet[string]()
	buf := mapset.NewThreadUnsafeSet[string]()
	edits.Each(func(e1 string) bool {
		if !c.shouldCheck(e1) {
			return false
		}
		buf.Clear()
		appendEdits1(e1, alphabet, buf)
		buf.Each(func(e2 string) bool {
			if c.wf.Contains(e2) && c.shouldCheck(e2) {
				out.Add(e2)
			}
			return false
		})
		return false
	})
	return out
}
