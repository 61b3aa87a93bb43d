package encoders

import (
	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/vocab"
)

// BufferSweepEncoder runs the same algorithm as TailSweepEncoder but over
// an encoder-local working buffer that persists across calls, copying the
// result onto the output only at the end. It is stateful and not safe for
// concurrent use; callers pool instances one-per-worker (see Pool).
type BufferSweepEncoder[T wordchipper.TokenID] struct {
	buf []T
}

// NewBufferSweepEncoder returns a buffer-sweep encoder with an empty
// working buffer.
func NewBufferSweepEncoder[T wordchipper.TokenID]() *BufferSweepEncoder[T] {
	return &BufferSweepEncoder[T]{}
}

// EncodeAppend implements SpanEncoder.
func (e *BufferSweepEncoder[T]) EncodeAppend(v *vocab.UnifiedTokenVocab[T], span []byte, out []T) ([]T, error) {
	if tok, ok := wholeSpanShortcut(v, span); ok {
		return append(out, tok), nil
	}

	e.buf = e.buf[:0]
	e.buf = v.Bytes.AppendTokens(span, e.buf)

	for {
		idx, result, ok := minMergeablePair(v, e.buf)
		if !ok {
			break
		}
		// Shift the tail left over the consumed slot in place; the
		// working buffer never reallocates once it reaches this call's
		// high-water mark.
		copy(e.buf[idx+1:], e.buf[idx+2:])
		e.buf[idx] = result
		e.buf = e.buf[:len(e.buf)-1]
	}
	return append(out, e.buf...), nil
}
