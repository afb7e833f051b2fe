package spell

import "errors"

// ErrInvalidCount reports an attempt to add or bulk-load a word with a
// non-positive occurrence count.
var ErrInvalidCount = errors.New("word count must be a positive integer")
