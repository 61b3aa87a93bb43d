package vocab

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agentstation/wordchipper"
)

// SpecialVocab is a byte-sequence to token map for sentinel strings (for
// example "<|endoftext|>") that bypass BPE entirely. It is disjoint from
// the normal span map; special token ids are strictly greater than any
// learned merge token id.
type SpecialVocab[T wordchipper.TokenID] struct {
	spanToTok map[string]T
	tokToSpan map[T][]byte
}

// NewSpecialVocab creates an empty special-token map.
func NewSpecialVocab[T wordchipper.TokenID]() *SpecialVocab[T] {
	return &SpecialVocab[T]{
		spanToTok: make(map[string]T),
		tokToSpan: make(map[T][]byte),
	}
}

// Insert adds a special token string mapped to token.
func (v *SpecialVocab[T]) Insert(text string, token T) error {
	if existing, ok := v.spanToTok[text]; ok && existing != token {
		return &wordchipper.VocabConflictError{Op: "SpecialVocab.Insert", Message: "duplicate special text mapped to a different token"}
	}
	v.spanToTok[text] = token
	v.tokToSpan[token] = []byte(text)
	return nil
}

// Lookup returns the token id for an exact special-token string.
func (v *SpecialVocab[T]) Lookup(text []byte) (T, bool) {
	t, ok := v.spanToTok[string(text)]
	return t, ok
}

// Span returns the special text for a token id.
func (v *SpecialVocab[T]) Span(token T) ([]byte, bool) {
	s, ok := v.tokToSpan[token]
	return s, ok
}

// Len reports the number of registered special tokens.
func (v *SpecialVocab[T]) Len() int { return len(v.spanToTok) }

// IsEmpty reports whether no special tokens are registered.
func (v *SpecialVocab[T]) IsEmpty() bool { return len(v.spanToTok) == 0 }

// Tokens returns every registered special token id, in undefined order.
func (v *SpecialVocab[T]) Tokens() []T {
	out := make([]T, 0, len(v.tokToSpan))
	for t := range v.tokToSpan {
		out = append(out, t)
	}
	return out
}

// MaxToken returns the largest registered special token id, or the zero
// value if no special tokens are registered.
func (v *SpecialVocab[T]) MaxToken() T {
	var max T
	for t := range v.tokToSpan {
		if t > max {
			max = t
		}
	}
	return max
}

// Texts returns every special token string, sorted longest-first and then
// lexicographically, the order SpecialPattern relies on to make "ties
// broken by longest match" hold without backtracking games.
func (v *SpecialVocab[T]) Texts() []string {
	out := make([]string, 0, len(v.spanToTok))
	for t := range v.spanToTok {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// SpecialPattern builds the alternation regex matching any registered
// special token, with alternatives sorted longest-first so that a leftmost
// match is automatically also the longest match at that position. Returns
// false if no special tokens are registered.
func (v *SpecialVocab[T]) SpecialPattern() (string, bool) {
	texts := v.Texts()
	if len(texts) == 0 {
		return "", false
	}
	parts := make([]string, len(texts))
	for i, t := range texts {
		parts[i] = regexp.QuoteMeta(t)
	}
	return strings.Join(parts, "|"), true
}
