package options

var DefaultOptions = SpellerOptions{
	EditDistance:  2,
	CaseSensitive: false,
	LengthMargin:  3,
	Threshold:     0,
	Alphabet:      "",
}

type SpellerOptions struct {
	EditDistance  int    // maximum edit distance for candidate search, 1 or 2
	CaseSensitive bool   // keep the case of dictionary keys and queries as-is
	LengthMargin  int    // words longer than longest dictionary word plus margin are not checked
	Threshold     int64  // minimum count kept by Compact; 0 disables compaction
	Alphabet      string // replacement/insertion letters; empty derives them from the dictionary
}

type Options interface {
	Apply(options *SpellerOptions)
}

type FuncConfig struct {
	ops func(options *SpellerOptions)
}

func (w FuncConfig) Apply(conf *SpellerOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SpellerOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithEditDistance(distance int) Options {
	return NewFuncOption(func(options *SpellerOptions) {
		options.EditDistance = distance
	})
}

func WithCaseSensitive() Options {
	return NewFuncOption(func(options *SpellerOptions) {
		options.CaseSensitive = true
	})
}

func WithLengthMargin(margin int) Options {
	return NewFuncOption(func(options *SpellerOptions) {
		options.LengthMargin = margin
	})
}

func WithThreshold(threshold int64) Options {
	return NewFuncOption(func(options *SpellerOptions) {
		options.Threshold = threshold
	})
}

func WithAlphabet(letters string) Options {
	return NewFuncOption(func(options *SpellerOptions) {
		options.Alphabet = letters
	})
}
