package parallel

import (
	"github.com/sourcegraph/conc/iter"

	"github.com/agentstation/wordchipper"
)

// Decoder wraps a TokenDecoder[T], parallelizing TryDecodeBatchToBytes
// across a work-stealing pool while delegating single-item calls
// unchanged.
type Decoder[T wordchipper.TokenID] struct {
	inner wordchipper.TokenDecoder[T]
}

// NewDecoder wraps inner for parallel batch decoding.
func NewDecoder[T wordchipper.TokenID](inner wordchipper.TokenDecoder[T]) *Decoder[T] {
	return &Decoder[T]{inner: inner}
}

// TryDecodeToBytes delegates unchanged; single-item calls never spawn.
func (d *Decoder[T]) TryDecodeToBytes(tokens []T) (wordchipper.DecodeResult[[]byte], error) {
	return d.inner.TryDecodeToBytes(tokens)
}

// TryDecodeToString delegates unchanged.
func (d *Decoder[T]) TryDecodeToString(tokens []T) (wordchipper.DecodeResult[string], error) {
	return d.inner.TryDecodeToString(tokens)
}

// TryDecodeBatchToBytes maps each entry of batches through TryDecodeToBytes
// on a work-stealing pool, returning results in input order (§8 property
// 9, parallel idempotence: this must equal the sequential map).
func (d *Decoder[T]) TryDecodeBatchToBytes(batches [][]T) ([]wordchipper.DecodeResult[[]byte], error) {
	type result struct {
		value wordchipper.DecodeResult[[]byte]
		err   error
	}
	results := iter.Map(batches, func(tokens *[]T) result {
		v, err := d.inner.TryDecodeToBytes(*tokens)
		return result{value: v, err: err}
	})

	out := make([]wordchipper.DecodeResult[[]byte], len(results))
	for i, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		out[i] = r.value
	}
	return out, nil
}
