package vocab

import "github.com/agentstation/wordchipper"

// Index is the common read surface shared by every vocabulary component
// (ByteMapVocab, PairMapVocab, SpanMapVocab, SpecialVocab), letting the
// pretrained registry and the top-level facade treat them uniformly
// without type-switching.
type Index[T wordchipper.TokenID] interface {
	Tokens() []T
	Len() int
	IsEmpty() bool
	MaxToken() T
}

// PatternKind discriminates how a TextSpanningConfig's word pattern should
// be realized: a plain RE2-compatible pattern, a lookahead/possessive
// "fancy" pattern, or one with a known precompiled accelerated lexer.
type PatternKind int

const (
	// Basic patterns compile under Go's stdlib RE2 engine.
	Basic PatternKind = iota
	// Fancy patterns need backtracking (lookahead, possessive quantifiers)
	// and are driven by a backtracking-capable engine.
	Fancy
	// Adaptive patterns have a known hand-built accelerated lexer whose
	// output is guaranteed byte-identical to the Fancy regex path.
	Adaptive
)

// TextSpanningConfig bundles the word-split pattern with the special
// vocabulary a TextSpanner consults before falling back to the word lexer.
type TextSpanningConfig[T wordchipper.TokenID] struct {
	Pattern     string
	PatternKind PatternKind
	Special     *SpecialVocab[T]
}

// NewTextSpanningConfig builds a spanning configuration. special may be nil,
// meaning no special tokens are recognized.
func NewTextSpanningConfig[T wordchipper.TokenID](pattern string, kind PatternKind, special *SpecialVocab[T]) TextSpanningConfig[T] {
	if special == nil {
		special = NewSpecialVocab[T]()
	}
	return TextSpanningConfig[T]{Pattern: pattern, PatternKind: kind, Special: special}
}

// UnifiedTokenVocab owns the byte alphabet, merge table, span dictionary
// and spanning configuration that together define one trained vocabulary.
type UnifiedTokenVocab[T wordchipper.TokenID] struct {
	Bytes    *ByteMapVocab[T]
	Pairs    *PairMapVocab[T]
	Spans    *SpanMapVocab[T]
	Spanning TextSpanningConfig[T]
}

// NewUnifiedTokenVocab assembles a unified vocabulary, verifying that every
// component shares the same underlying byte alphabet.
func NewUnifiedTokenVocab[T wordchipper.TokenID](pairs *PairMapVocab[T], spans *SpanMapVocab[T], spanning TextSpanningConfig[T]) (*UnifiedTokenVocab[T], error) {
	if !pairs.Bytes().Equal(spans.bytes) {
		return nil, &wordchipper.VocabConflictError{Op: "NewUnifiedTokenVocab", Message: "merge table and span map do not share a byte alphabet"}
	}
	if err := ValidateSize[T](uint64(spans.MaxToken()) + 1); err != nil {
		return nil, err
	}
	return &UnifiedTokenVocab[T]{
		Bytes:    pairs.Bytes(),
		Pairs:    pairs,
		Spans:    spans,
		Spanning: spanning,
	}, nil
}

// MaxToken returns the maximum token id across every constituent vocabulary,
// including special tokens.
func (u *UnifiedTokenVocab[T]) MaxToken() T {
	max := u.Spans.MaxToken()
	if u.Pairs.MaxToken() > max {
		max = u.Pairs.MaxToken()
	}
	if u.Spanning.Special.MaxToken() > max {
		max = u.Spanning.Special.MaxToken()
	}
	return max
}
