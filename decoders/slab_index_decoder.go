// Package decoders implements the inverse dictionary-lookup decoders: the
// dense slab-index decoder (the main path) and a pair-expansion reference
// decoder used to cross-check it.
package decoders

import (
	"strings"

	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/vocab"
)

type slabRange struct {
	start, end int
}

// SlabIndexDecoder holds a flat byte slab and a dense index of
// (start, end) ranges sized max_token+1. Lookup is a bounds check and a
// slice; sparse token ids (unused in the middle of the range) get the
// (0, 0) sentinel and decode as "not found." Structurally ported from the
// source crate's SlabIndexDecoder.
type SlabIndexDecoder[T wordchipper.TokenID] struct {
	slab  []byte
	index []slabRange
	opts  wordchipper.TokenDecoderOptions
}

// NewSlabIndexDecoder builds the slab and index by iterating span's tokens
// in ascending order and concatenating their byte sequences.
func NewSlabIndexDecoder[T wordchipper.TokenID](span *vocab.SpanMapVocab[T], opts wordchipper.TokenDecoderOptions) *SlabIndexDecoder[T] {
	tokens := span.Tokens()
	maxTok := span.MaxToken()

	d := &SlabIndexDecoder[T]{
		index: make([]slabRange, int(maxTok)+1),
		opts:  opts,
	}
	for _, t := range tokens {
		b, _ := span.Span(t)
		start := len(d.slab)
		d.slab = append(d.slab, b...)
		d.index[int(t)] = slabRange{start: start, end: len(d.slab)}
	}
	return d
}

func (d *SlabIndexDecoder[T]) lookup(t T) ([]byte, bool) {
	idx := int(t)
	if idx < 0 || idx >= len(d.index) {
		return nil, false
	}
	r := d.index[idx]
	if r.end == r.start {
		// Every real span is non-empty, so a zero-width range
		// unambiguously means "no entry at this token id."
		return nil, false
	}
	return d.slab[r.start:r.end], true
}

// TryDecodeToBytes walks tokens, appending each one's byte span, stopping
// at the first token with no span. The returned Remaining is the count of
// tokens from that point on, inclusive, that were not consumed.
func (d *SlabIndexDecoder[T]) TryDecodeToBytes(tokens []T) (wordchipper.DecodeResult[[]byte], error) {
	bytesPerToken := d.opts.BytesPerToken
	if bytesPerToken <= 0 {
		bytesPerToken = wordchipper.DefaultBytesPerToken
	}
	out := make([]byte, 0, wordchipper.PredictedByteBufferSize(len(tokens), bytesPerToken))

	for i, t := range tokens {
		span, ok := d.lookup(t)
		if !ok {
			return wordchipper.DecodeResult[[]byte]{Value: out, Remaining: len(tokens) - i}, nil
		}
		out = append(out, span...)
	}
	return wordchipper.DecodeResult[[]byte]{Value: out, Remaining: 0}, nil
}

// TryDecodeToString is TryDecodeToBytes followed by a lossy UTF-8
// conversion; invalid byte sequences become the replacement character.
func (d *SlabIndexDecoder[T]) TryDecodeToString(tokens []T) (wordchipper.DecodeResult[string], error) {
	r, err := d.TryDecodeToBytes(tokens)
	if err != nil {
		return wordchipper.DecodeResult[string]{}, err
	}
	s := strings.ToValidUTF8(string(r.Value), "�")
	return wordchipper.DecodeResult[string]{Value: s, Remaining: r.Remaining}, nil
}

// TryDecodeBatchToBytes is sequential at this level; the parallel package
// parallelizes across batch entries.
func (d *SlabIndexDecoder[T]) TryDecodeBatchToBytes(batches [][]T) ([]wordchipper.DecodeResult[[]byte], error) {
	out := make([]wordchipper.DecodeResult[[]byte], len(batches))
	for i, b := range batches {
		r, err := d.TryDecodeToBytes(b)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
