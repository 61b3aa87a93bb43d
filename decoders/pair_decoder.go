package decoders

import (
	"strings"

	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/vocab"
)

// PairDecoder expands each token by recursively unfolding merge pairs back
// to byte alphabet entries, rather than consulting a flattened slab. It
// exists to cross-check SlabIndexDecoder (§8 property 1, round-trip) and
// as the "pair-expansion decoder (reference)" spec.md names alongside the
// slab decoder. Unlike SlabIndexDecoder it does no precomputation: every
// call walks the merge table from scratch, trading speed for an
// independent implementation path worth cross-checking against.
type PairDecoder[T wordchipper.TokenID] struct {
	pairs        *vocab.PairMapVocab[T]
	spans        *vocab.SpanMapVocab[T] // only consulted for whole-span fast path
	resultToPair map[T]wordchipper.Pair[T]
	opts         wordchipper.TokenDecoderOptions
}

// NewPairDecoder builds a reference decoder over a merge table, optionally
// short-circuiting through a span map when one is available. spans may be
// nil, in which case every token is resolved purely by recursive merge-pair
// expansion.
func NewPairDecoder[T wordchipper.TokenID](pairs *vocab.PairMapVocab[T], spans *vocab.SpanMapVocab[T], opts wordchipper.TokenDecoderOptions) *PairDecoder[T] {
	resultToPair := make(map[T]wordchipper.Pair[T], pairs.Len())
	pairs.Pairs(func(a, b, result T) bool {
		resultToPair[result] = wordchipper.Pair[T]{Left: a, Right: b}
		return true
	})
	return &PairDecoder[T]{pairs: pairs, spans: spans, resultToPair: resultToPair, opts: opts}
}

// expand recursively resolves a token to its byte sequence via the byte
// alphabet and merge table, consulting the span map first only as a
// shortcut when one is available.
func (d *PairDecoder[T]) expand(t T, out []byte) ([]byte, bool) {
	if d.spans != nil {
		if span, ok := d.spans.Span(t); ok {
			return append(out, span...), true
		}
	}
	if b, ok := d.pairs.Bytes().Byte(t); ok {
		return append(out, b), true
	}
	if pair, ok := d.resultToPair[t]; ok {
		out, ok = d.expand(pair.Left, out)
		if !ok {
			return out, false
		}
		return d.expand(pair.Right, out)
	}
	return out, false
}

// TryDecodeToBytes mirrors SlabIndexDecoder's partial-decode contract: it
// stops at the first token that fails to expand and reports the remaining
// count.
func (d *PairDecoder[T]) TryDecodeToBytes(tokens []T) (wordchipper.DecodeResult[[]byte], error) {
	bytesPerToken := d.opts.BytesPerToken
	if bytesPerToken <= 0 {
		bytesPerToken = wordchipper.DefaultBytesPerToken
	}
	out := make([]byte, 0, wordchipper.PredictedByteBufferSize(len(tokens), bytesPerToken))

	for i, t := range tokens {
		next, ok := d.expand(t, out)
		if !ok {
			return wordchipper.DecodeResult[[]byte]{Value: out, Remaining: len(tokens) - i}, nil
		}
		out = next
	}
	return wordchipper.DecodeResult[[]byte]{Value: out, Remaining: 0}, nil
}

// TryDecodeToString is TryDecodeToBytes with a lossy UTF-8 conversion.
func (d *PairDecoder[T]) TryDecodeToString(tokens []T) (wordchipper.DecodeResult[string], error) {
	r, err := d.TryDecodeToBytes(tokens)
	if err != nil {
		return wordchipper.DecodeResult[string]{}, err
	}
	s := strings.ToValidUTF8(string(r.Value), "�")
	return wordchipper.DecodeResult[string]{Value: s, Remaining: r.Remaining}, nil
}

// TryDecodeBatchToBytes is sequential; see the parallel package for the
// data-parallel wrapper.
func (d *PairDecoder[T]) TryDecodeBatchToBytes(batches [][]T) ([]wordchipper.DecodeResult[[]byte], error) {
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
