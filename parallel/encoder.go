// Package parallel implements data-parallel batch wrappers over any
// TokenEncoder or TokenDecoder: thin adapters that replace the batch
// methods with a work-stealing-pool map, collecting results in input
// order. Per-element methods are unchanged, and no mutable state crosses
// element boundaries because the wrapped encoder's pooled slots are
// already per-worker (see the encoders package).
package parallel

import (
	"github.com/sourcegraph/conc/iter"

	"github.com/agentstation/wordchipper"
)

// Encoder wraps a TokenEncoder[T], parallelizing TryEncodeBatch across a
// work-stealing pool while delegating single-item calls unchanged.
type Encoder[T wordchipper.TokenID] struct {
	inner wordchipper.TokenEncoder[T]
}

// NewEncoder wraps inner for parallel batch encoding.
func NewEncoder[T wordchipper.TokenID](inner wordchipper.TokenEncoder[T]) *Encoder[T] {
	return &Encoder[T]{inner: inner}
}

// TryEncodeAppend delegates unchanged; single-item calls never spawn.
func (e *Encoder[T]) TryEncodeAppend(text string, tokens []T) ([]T, error) {
	return e.inner.TryEncodeAppend(text, tokens)
}

// TryEncode delegates unchanged.
func (e *Encoder[T]) TryEncode(text string) ([]T, error) {
	return e.inner.TryEncode(text)
}

// TryEncodeBatch maps each element of texts through TryEncode on a
// work-stealing pool, returning results in input order (§8 property 9,
// parallel idempotence: this must equal the sequential map).
func (e *Encoder[T]) TryEncodeBatch(texts []string) ([][]T, error) {
	type result struct {
		tokens []T
		err    error
	}
	results := iter.Map(texts, func(text *string) result {
		tokens, err := e.inner.TryEncode(*text)
		return result{tokens: tokens, err: err}
	})

	out := make([][]T, len(results))
	for i, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		out[i] = r.tokens
	}
	return out, nil
}
