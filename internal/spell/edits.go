package spell

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Edits1 returns every string reachable from word by exactly one edit:
// deleting one character, transposing two adjacent characters, replacing
// one character with an alphabet letter, or inserting an alphabet letter
// at any position including both ends. For a word of n runes and an
// alphabet of a letters that is up to n + (n-1) + n*a + (n+1)*a strings
// before deduplication. An empty word yields only insertions; a
// single-character word yields the empty string as its sole deletion.
func Edits1(word string, alphabet []rune) mapset.Set[string] {
	out := mapset.NewThreadUnsafeSet[string]()
	appendEdits1(word, alphabet, out)
	return out
}

// Edits2 returns the union of Edits1 over every member of Edits1(word),
// covering everything within two edits. For long words this set reaches
// tens of thousands of strings; callers that only need the known subset
// should expand member by member instead of materializing it.
func Edits2(word string, alphabet []rune) mapset.Set[string] {
	first := Edits1(word, alphabet)
	out := mapset.NewThreadUnsafeSet[string]()
	first.Each(func(e1 string) bool {
		appendEdits1(e1, alphabet, out)
		return false
	})
	return out
}

func appendEdits1(word string, alphabet []rune, out mapset.Set[string]) {
	runes := []rune(word)
	n := len(runes)
	for i := 0; i <= n; i++ {
		left := string(runes[:i])
		if i < n {
			rest := string(runes[i+1:])
			out.Add(left + rest)
			if i+1 < n {
				out.Add(left + string(runes[i+1]) + string(runes[i]) + string(runes[i+2:]))
			}
			for _, c := range alphabet {
				out.Add(left + string(c) + rest)
			}
		}
		right := string(runes[i:])
		for _, c := range alphabet {
			out.Add(left + string(c) + right)
		}
	}
}
