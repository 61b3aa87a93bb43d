package encoders

import (
	"sync"

	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/concurrency"
	"github.com/agentstation/wordchipper/vocab"
)

// guardedEncoder pairs a mutable SpanEncoder with the mutex protecting its
// working buffers. A caller holds the lock only for the duration of one
// EncodeAppend call, so contention is negligible in practice, per §4.4's
// "Span-encoder pool" design note.
type guardedEncoder[T wordchipper.TokenID] struct {
	mu  sync.Mutex
	enc SpanEncoder[T]
}

// Pool is the composed TokenSpanEncoder's span-encoder pool: N boxed
// encoder instances, one per worker, selected by ThreadHashedPool and
// locked for the duration of a single call.
type Pool[T wordchipper.TokenID] struct {
	pool *concurrency.ThreadHashedPool[guardedEncoder[T]]
}

// NewPool builds a pool of size n (resolved by the caller via
// concurrency.ResolveMaxPool), each slot running its own instance of the
// algorithm named by selector.
func NewPool[T wordchipper.TokenID](n int, selector wordchipper.SpanEncoderSelector) *Pool[T] {
	return &Pool[T]{
		pool: concurrency.New(n, func() guardedEncoder[T] {
			return guardedEncoder[T]{enc: newSpanEncoder[T](selector)}
		}),
	}
}

// EncodeAppend claims a pool slot, locks it, and delegates to its encoder.
func (p *Pool[T]) EncodeAppend(v *vocab.UnifiedTokenVocab[T], span []byte, out []T) ([]T, error) {
	slot := p.pool.Get()
	slot.mu.Lock()
	defer slot.mu.Unlock()
	return slot.enc.EncodeAppend(v, span, out)
}
