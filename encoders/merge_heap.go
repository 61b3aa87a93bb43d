package encoders

import (
	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/vocab"
)

// mergeRankSentinel marks a pair position with no valid merge in the
// parallel rank array below.
const mergeRankSentinel = ^uint64(0)

// MergeHeapEncoder maintains a parallel array of pair ranks alongside the
// token slice, updating only the two neighbors of a merge instead of
// rescanning the whole window each step. Despite the name it does not use
// container/heap -- "heap" here names the rank array it maintains, per the
// source design's own naming; PriorityMergeEncoder is the variant that
// uses an actual priority queue.
type MergeHeapEncoder[T wordchipper.TokenID] struct {
	tokens []T
	ranks  []uint64
}

// NewMergeHeapEncoder returns an encoder with empty working state.
func NewMergeHeapEncoder[T wordchipper.TokenID]() *MergeHeapEncoder[T] {
	return &MergeHeapEncoder[T]{}
}

func rankOf[T wordchipper.TokenID](v *vocab.UnifiedTokenVocab[T], a, b T) uint64 {
	if r, ok := v.Pairs.Lookup(a, b); ok {
		return uint64(r)
	}
	return mergeRankSentinel
}

// EncodeAppend implements SpanEncoder.
func (e *MergeHeapEncoder[T]) EncodeAppend(v *vocab.UnifiedTokenVocab[T], span []byte, out []T) ([]T, error) {
	if tok, ok := wholeSpanShortcut(v, span); ok {
		return append(out, tok), nil
	}

	e.tokens = e.tokens[:0]
	e.tokens = v.Bytes.AppendTokens(span, e.tokens)
	n := len(e.tokens)
	if n <= 1 {
		return append(out, e.tokens...), nil
	}

	e.ranks = append(e.ranks[:0], make([]uint64, n-1)...)
	for i := 0; i < n-1; i++ {
		e.ranks[i] = rankOf(v, e.tokens[i], e.tokens[i+1])
	}

	for len(e.tokens) > 1 {
		minIdx := -1
		var minRank uint64 = mergeRankSentinel
		for i, r := range e.ranks {
			if r < minRank {
				minRank = r
				minIdx = i
			}
		}
		if minIdx < 0 {
			break
		}

		merged, _ := v.Pairs.Lookup(e.tokens[minIdx], e.tokens[minIdx+1])
		copy(e.tokens[minIdx+1:], e.tokens[minIdx+2:])
		e.tokens[minIdx] = merged
		e.tokens = e.tokens[:len(e.tokens)-1]

		if minIdx+2 <= len(e.ranks) {
			copy(e.ranks[minIdx+1:], e.ranks[minIdx+2:])
		}
		e.ranks = e.ranks[:len(e.ranks)-1]

		if minIdx > 0 {
			e.ranks[minIdx-1] = rankOf(v, e.tokens[minIdx-1], e.tokens[minIdx])
		}
		if minIdx < len(e.ranks) {
			e.ranks[minIdx] = rankOf(v, e.tokens[minIdx], e.tokens[minIdx+1])
		}
	}
	return append(out, e.tokens...), nil
}
