package vocab

import (
	"sort"

	"github.com/agentstation/wordchipper"
)

// SpanMapVocab is the flattened span dictionary: for every token id, the
// full byte sequence it expands to. This is the decoder's only lookup
// table. Byte spans of length 1 agree with the underlying ByteMapVocab.
type SpanMapVocab[T wordchipper.TokenID] struct {
	bytes     *ByteMapVocab[T]
	spanToTok map[string]T
	tokToSpan map[T][]byte
	maxTok    T
}

// NewSpanMapVocab seeds a span map with the single-byte spans of the given
// alphabet.
func NewSpanMapVocab[T wordchipper.TokenID](bytes *ByteMapVocab[T]) *SpanMapVocab[T] {
	v := &SpanMapVocab[T]{
		bytes:     bytes,
		spanToTok: make(map[string]T),
		tokToSpan: make(map[T][]byte),
	}
	for b := 0; b < 256; b++ {
		tok := bytes.Token(byte(b))
		span := []byte{byte(b)}
		v.spanToTok[string(span)] = tok
		v.tokToSpan[tok] = span
		if tok > v.maxTok {
			v.maxTok = tok
		}
	}
	return v
}

// Insert records that span expands to token. It returns VocabConflictError
// if span or token is already assigned to a different value, matching the
// "duplicate token id / duplicate span" negative test.
func (v *SpanMapVocab[T]) Insert(span []byte, token T) error {
	key := string(span)
	if existing, ok := v.spanToTok[key]; ok && existing != token {
		return &wordchipper.VocabConflictError{Op: "Insert", Message: "duplicate span mapped to a different token"}
	}
	if existing, ok := v.tokToSpan[token]; ok && string(existing) != key {
		return &wordchipper.VocabConflictError{Op: "Insert", Message: "duplicate token id mapped to a different span"}
	}
	v.spanToTok[key] = token
	cp := make([]byte, len(span))
	copy(cp, span)
	v.tokToSpan[token] = cp
	if token > v.maxTok {
		v.maxTok = token
	}
	return nil
}

// Lookup returns the token id for an exact byte span, if present. This is
// the "whole-span dictionary shortcut" consulted before falling back to
// BPE merges.
func (v *SpanMapVocab[T]) Lookup(span []byte) (T, bool) {
	t, ok := v.spanToTok[string(span)]
	return t, ok
}

// Span returns the byte sequence a token expands to.
func (v *SpanMapVocab[T]) Span(token T) ([]byte, bool) {
	s, ok := v.tokToSpan[token]
	return s, ok
}

// Len reports the number of entries in the span map.
func (v *SpanMapVocab[T]) Len() int { return len(v.spanToTok) }

// IsEmpty reports whether the span map holds no entries (never true once
// constructed via NewSpanMapVocab, which always seeds the byte alphabet).
func (v *SpanMapVocab[T]) IsEmpty() bool { return len(v.spanToTok) == 0 }

// MaxToken returns the largest token id in the span map.
func (v *SpanMapVocab[T]) MaxToken() T { return v.maxTok }

// Tokens returns every token id in the span map, sorted ascending.
func (v *SpanMapVocab[T]) Tokens() []T {
	out := make([]T, 0, len(v.tokToSpan))
	for t := range v.tokToSpan {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BuildSpanMapFromPairMap expands a merge table into its flattened span
// dictionary. Every merge's byte sequence is the concatenation of its two
// parents' byte sequences, so the expansion walks merges in ascending
// result-token order (topological, since a merge's parents always have a
// smaller token id than the merge itself).
func BuildSpanMapFromPairMap[T wordchipper.TokenID](pairs *PairMapVocab[T]) (*SpanMapVocab[T], error) {
	sm := NewSpanMapVocab(pairs.Bytes())

	type mergeEntry struct{ a, b, result T }
	var merges []mergeEntry
	pairs.Pairs(func(a, b, result T) bool {
		merges = append(merges, mergeEntry{a, b, result})
		return true
	})
	sort.Slice(merges, func(i, j int) bool { return merges[i].result < merges[j].result })

	for _, m := range merges {
		left, ok := sm.Span(m.a)
		if !ok {
			return nil, &wordchipper.VocabConflictError{Op: "BuildSpanMapFromPairMap", Message: "merge references an unknown left token"}
		}
		right, ok := sm.Span(m.b)
		if !ok {
			return nil, &wordchipper.VocabConflictError{Op: "BuildSpanMapFromPairMap", Message: "merge references an unknown right token"}
		}
		span := make([]byte, 0, len(left)+len(right))
		span = append(span, left...)
		span = append(span, right...)
		if err := sm.Insert(span, m.result); err != nil {
			return nil, err
		}
	}
	return sm, nil
}

// BuildPairMapFromSpanMap factors every non-byte span into the pair of
// already-present shorter spans whose token ids together are minimal. If
// no such factorization exists for some span, the vocabulary is ill-formed
// and this returns VocabConflictError.
func BuildPairMapFromSpanMap[T wordchipper.TokenID](spans *SpanMapVocab[T]) (*PairMapVocab[T], error) {
	pm := NewPairMapVocab(spans.bytes)

	tokens := spans.Tokens()
	// byBytes lets us test "is this prefix itself a known span" in O(1).
	byBytes := make(map[string]T, len(tokens))
	for _, t := range tokens {
		span, _ := spans.Span(t)
		byBytes[string(span)] = t
	}

	for _, t := range tokens {
		span, _ := spans.Span(t)
		if len(span) <= 1 {
			continue // byte alphabet, no merge to record
		}
		found := false
		var bestLeft, bestRight T
		var bestSum uint64
		for splitAt := 1; splitAt < len(span); splitAt++ {
			leftTok, leftOK := byBytes[string(span[:splitAt])]
			rightTok, rightOK := byBytes[string(span[splitAt:])]
			if !leftOK || !rightOK {
				continue
			}
			sum := uint64(leftTok) + uint64(rightTok)
			if !found || sum < bestSum {
				found = true
				bestSum = sum
				bestLeft, bestRight = leftTok, rightTok
			}
		}
		if !found {
			return nil, &wordchipper.VocabConflictError{
				Op:      "BuildPairMapFromSpanMap",
				Message: "span has no factorization into two known shorter spans",
			}
		}
		if err := pm.AddMerge(bestLeft, bestRight, t); err != nil {
			return nil, err
		}
	}
	return pm, nil
}
