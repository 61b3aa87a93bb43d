package encoders

import (
	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/vocab"
)

// TailSweepEncoder appends per-byte tokens to the output tail, then
// repeatedly rescans the full window for the best mergeable pair. Simplest
// of the four algorithms; O(n^2) worst case.
type TailSweepEncoder[T wordchipper.TokenID] struct{}

// NewTailSweepEncoder returns a stateless tail-sweep encoder; one instance
// may be shared across goroutines since it holds no mutable fields.
func NewTailSweepEncoder[T wordchipper.TokenID]() *TailSweepEncoder[T] {
	return &TailSweepEncoder[T]{}
}

// EncodeAppend implements SpanEncoder.
func (e *TailSweepEncoder[T]) EncodeAppend(v *vocab.UnifiedTokenVocab[T], span []byte, out []T) ([]T, error) {
	if tok, ok := wholeSpanShortcut(v, span); ok {
		return append(out, tok), nil
	}

	base := len(out)
	out = v.Bytes.AppendTokens(span, out)
	for {
		idx, result, ok := minMergeablePair(v, out[base:])
		if !ok {
			break
		}
		idx += base
		copy(out[idx+1:], out[idx+2:])
		out[idx] = result
		out = out[:len(out)-1]
	}
	return out, nil
}
