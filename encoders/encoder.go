// Package encoders implements the four interchangeable byte-pair-encoding
// merge algorithms (tail-sweep, buffer-sweep, merge-heap, priority-merge)
// and the composed TokenSpanEncoder that drives them from a text spanner.
package encoders

import (
	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/vocab"
)

// SpanEncoder turns one Word byte-span into its ranked-merge token
// sequence for a fixed vocabulary. Implementations must all produce
// byte-identical output (§8 property 2, cross-implementation equivalence);
// they differ only in performance characteristics.
type SpanEncoder[T wordchipper.TokenID] interface {
	// EncodeAppend appends span's BPE token sequence onto out and returns
	// the extended slice.
	EncodeAppend(v *vocab.UnifiedTokenVocab[T], span []byte, out []T) ([]T, error)
}

// wholeSpanShortcut checks the mandatory whole-span dictionary shortcut:
// if span is itself a key of the span dictionary, its token is emitted
// directly rather than running BPE. This is both faster and required for
// correctness when a span's BPE factorization would be ambiguous.
func wholeSpanShortcut[T wordchipper.TokenID](v *vocab.UnifiedTokenVocab[T], span []byte) (T, bool) {
	return v.Spans.Lookup(span)
}

// minMergeablePair scans tokens for the adjacent pair with the minimum
// merge-result token id (lower id = earlier-learned = higher priority),
// ties broken by leftmost position. Returns the left index and the merge
// result, or ok=false if no adjacent pair is mergeable.
func minMergeablePair[T wordchipper.TokenID](v *vocab.UnifiedTokenVocab[T], tokens []T) (idx int, result T, ok bool) {
	best := false
	var bestResult T
	bestIdx := -1
	for i := 0; i+1 < len(tokens); i++ {
		r, found := v.Pairs.Lookup(tokens[i], tokens[i+1])
		if !found {
			continue
		}
		if !best || r < bestResult {
			best = true
			bestResult = r
			bestIdx = i
		}
	}
	return bestIdx, bestResult, best
}
