package encoders

import (
	"container/heap"

	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/vocab"
)

// mergeNode is one position in the doubly-linked token list being merged.
type mergeNode[T wordchipper.TokenID] struct {
	origPos   int
	token     T
	mergeRank float64 // lower is higher priority
	mergeTo   T
	prev      *mergeNode[T]
	next      *mergeNode[T]
	deleted   bool
	heapIndex int
}

type mergeQueue[T wordchipper.TokenID] []*mergeNode[T]

func (q mergeQueue[T]) Len() int { return len(q) }
func (q mergeQueue[T]) Less(i, j int) bool {
	return q[i].mergeRank < q[j].mergeRank
}
func (q mergeQueue[T]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].heapIndex = i
	q[j].heapIndex = j
}
func (q *mergeQueue[T]) Push(x any) {
	n := *q
	node := x.(*mergeNode[T])
	node.heapIndex = len(n)
	*q = append(n, node)
}
func (q *mergeQueue[T]) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.heapIndex = -1
	*q = old[:n-1]
	return node
}

// PriorityMergeEncoder is the production-default span encoder: a
// doubly-linked list of tokens with a min-heap, keyed on
// (rank, position), giving the next merge in sublinear time. Stale heap
// entries are filtered on pop via the node's deleted flag.
type PriorityMergeEncoder[T wordchipper.TokenID] struct{}

// NewPriorityMergeEncoder returns a stateless priority-merge encoder.
func NewPriorityMergeEncoder[T wordchipper.TokenID]() *PriorityMergeEncoder[T] {
	return &PriorityMergeEncoder[T]{}
}

// EncodeAppend implements SpanEncoder.
func (e *PriorityMergeEncoder[T]) EncodeAppend(v *vocab.UnifiedTokenVocab[T], span []byte, out []T) ([]T, error) {
	if tok, ok := wholeSpanShortcut(v, span); ok {
		return append(out, tok), nil
	}

	tokens := v.Bytes.AppendTokens(span, nil)
	if len(tokens) <= 1 {
		return append(out, tokens...), nil
	}

	q := &mergeQueue[T]{}
	heap.Init(q)

	spanLen := len(span)
	first := &mergeNode[T]{origPos: 0, token: tokens[0]}
	prev := first
	for i := 1; i < len(tokens); i++ {
		curr := &mergeNode[T]{origPos: i, token: tokens[i], prev: prev}
		prev.next = curr
		addCandidate(v, prev, q, spanLen)
		prev = curr
	}

	for q.Len() > 0 {
		left := heap.Pop(q).(*mergeNode[T])
		if left.deleted || left.next == nil || left.next.deleted {
			continue
		}
		left.deleted = true
		left.next.deleted = true

		if left.prev != nil {
			oldPrev := left.prev
			oldPrev.deleted = true
			newPrev := &mergeNode[T]{
				origPos: oldPrev.origPos,
				token:   oldPrev.token,
				prev:    oldPrev.prev,
				next:    oldPrev.next,
			}
			left.prev = newPrev
			if newPrev.prev != nil {
				newPrev.prev.next = newPrev
			} else {
				first = newPrev
			}
		}

		merged := &mergeNode[T]{
			origPos: left.origPos,
			token:   left.mergeTo,
			prev:    left.prev,
			next:    left.next.next,
		}
		if merged.prev != nil {
			merged.prev.next = merged
			addCandidate(v, merged.prev, q, spanLen)
		} else {
			first = merged
		}
		if merged.next != nil {
			merged.next.prev = merged
			addCandidate(v, merged, q, spanLen)
		}
	}

	for n := first; n != nil; n = n.next {
		out = append(out, n.token)
	}
	return out, nil
}

// addCandidate evaluates the pair (left, left.next) for a merge and, if
// one exists, pushes left onto the heap with a position-biased priority so
// equal-rank merges still resolve left-to-right.
func addCandidate[T wordchipper.TokenID](v *vocab.UnifiedTokenVocab[T], left *mergeNode[T], q *mergeQueue[T], spanLen int) {
	if left.next == nil {
		return
	}
	result, ok := v.Pairs.Lookup(left.token, left.next.token)
	if !ok {
		return
	}
	left.mergeRank = float64(result) + float64(left.origPos)/float64(spanLen)
	left.mergeTo = result
	heap.Push(q, left)
}
