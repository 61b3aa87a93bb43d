package parallel

import (
	"strings"
	"testing"

	"github.com/agentstation/wordchipper"
)

// stubEncoder implements wordchipper.TokenEncoder[uint32] by counting
// words, letting tests check parallel batch results against a trivially
// computable sequential baseline without building a real vocabulary.
type stubEncoder struct{}

func (stubEncoder) TryEncodeAppend(text string, tokens []uint32) ([]uint32, error) {
	return append(tokens, uint32(len(strings.Fields(text)))), nil
}

func (e stubEncoder) TryEncode(text string) ([]uint32, error) {
	return e.TryEncodeAppend(text, nil)
}

func (e stubEncoder) TryEncodeBatch(texts []string) ([][]uint32, error) {
	out := make([][]uint32, len(texts))
	for i, t := range texts {
		tokens, err := e.TryEncode(t)
		if err != nil {
			return nil, err
		}
		out[i] = tokens
	}
	return out, nil
}

func TestParallelEncoderMatchesSequential(t *testing.T) {
	texts := []string{
		"one",
		"two words",
		"three little words",
		"",
		"a b c d e f g",
	}

	inner := stubEncoder{}
	want, err := inner.TryEncodeBatch(texts)
	if err != nil {
		t.Fatalf("sequential batch: %v", err)
	}

	par := NewEncoder[uint32](inner)
	got, err := par.TryEncodeBatch(texts)
	if err != nil {
		t.Fatalf("parallel batch: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i := range want {
		if len(got[i]) != len(want[i]) || got[i][0] != want[i][0] {
			t.Fatalf("result %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// stubDecoder decodes a token sequence by treating each token as a byte.
type stubDecoder struct{}

func (stubDecoder) TryDecodeToBytes(tokens []uint32) (wordchipper.DecodeResult[[]byte], error) {
	out := make([]byte, len(tokens))
	for i, t := range tokens {
		out[i] = byte(t)
	}
	return wordchipper.DecodeResult[[]byte]{Value: out, Remaining: 0}, nil
}

func (d stubDecoder) TryDecodeToString(tokens []uint32) (wordchipper.DecodeResult[string], error) {
	r, err := d.TryDecodeToBytes(tokens)
	if err != nil {
		return wordchipper.DecodeResult[string]{}, err
	}
	return wordchipper.DecodeResult[string]{Value: string(r.Value), Remaining: r.Remaining}, nil
}

func (d stubDecoder) TryDecodeBatchToBytes(batches [][]uint32) ([]wordchipper.DecodeResult[[]byte], error) {
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

func TestParallelDecoderMatchesSequential(t *testing.T) {
	batches := [][]uint32{
		{'a', 'b', 'c'},
		{'x'},
		{},
		{'h', 'e', 'l', 'l', 'o'},
	}

	inner := stubDecoder{}
	want, err := inner.TryDecodeBatchToBytes(batches)
	if err != nil {
		t.Fatalf("sequential batch: %v", err)
	}

	par := NewDecoder[uint32](inner)
	got, err := par.TryDecodeBatchToBytes(batches)
	if err != nil {
		t.Fatalf("parallel batch: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i := range want {
		if string(got[i].Value) != string(want[i].Value) {
			t.Fatalf("result %d Value = %q, want %q", i, got[i].Value, want[i].Value)
		}
	}
}
