package decoders

import (
	"testing"

	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/vocab"
)

func buildTestSpans(t *testing.T) *vocab.SpanMapVocab[uint32] {
	t.Helper()
	bytesVocab := vocab.NewByteMapVocab[uint32]()
	pairs := vocab.NewPairMapVocab(bytesVocab)
	if err := pairs.AddMerge('l', 'o', 256); err != nil {
		t.Fatal(err)
	}
	if err := pairs.AddMerge(256, 'w', 257); err != nil {
		t.Fatal(err)
	}
	spans, err := vocab.BuildSpanMapFromPairMap(pairs)
	if err != nil {
		t.Fatalf("BuildSpanMapFromPairMap: %v", err)
	}
	return spans
}

func TestSlabIndexDecoderRoundTrip(t *testing.T) {
	spans := buildTestSpans(t)
	d := NewSlabIndexDecoder(spans, wordchipper.DefaultTokenDecoderOptions())

	res, err := d.TryDecodeToBytes([]uint32{257, 'c', 'a', 't'})
	if err != nil {
		t.Fatalf("TryDecodeToBytes: %v", err)
	}
	if !res.Complete() {
		t.Fatalf("expected a complete decode, Remaining=%d", res.Remaining)
	}
	if string(res.Value) != "lowcat" {
		t.Fatalf("decoded %q, want %q", res.Value, "lowcat")
	}
}

func TestSlabIndexDecoderPartialDecode(t *testing.T) {
	spans := buildTestSpans(t)
	d := NewSlabIndexDecoder(spans, wordchipper.DefaultTokenDecoderOptions())

	res, err := d.TryDecodeToBytes([]uint32{257, 999999, 'x'})
	if err != nil {
		t.Fatalf("TryDecodeToBytes: %v", err)
	}
	if res.Complete() {
		t.Fatal("expected an incomplete decode for an unknown token id")
	}
	if res.Remaining != 2 {
		t.Fatalf("Remaining = %d, want 2 (the unknown token and everything after it)", res.Remaining)
	}
	if string(res.Value) != "low" {
		t.Fatalf("decoded prefix %q, want %q", res.Value, "low")
	}
}

func TestSlabIndexDecoderBatch(t *testing.T) {
	spans := buildTestSpans(t)
	d := NewSlabIndexDecoder(spans, wordchipper.DefaultTokenDecoderOptions())

	results, err := d.TryDecodeBatchToBytes([][]uint32{{257}, {'c', 'a', 't'}})
	if err != nil {
		t.Fatalf("TryDecodeBatchToBytes: %v", err)
	}
	if len(results) != 2 || string(results[0].Value) != "low" || string(results[1].Value) != "cat" {
		t.Fatalf("batch results = %+v", results)
	}
}

func TestPairDecoderAgreesWithSlabIndexDecoder(t *testing.T) {
	bytesVocab := vocab.NewByteMapVocab[uint32]()
	pairs := vocab.NewPairMapVocab(bytesVocab)
	if err := pairs.AddMerge('l', 'o', 256); err != nil {
		t.Fatal(err)
	}
	if err := pairs.AddMerge(256, 'w', 257); err != nil {
		t.Fatal(err)
	}
	spans, err := vocab.BuildSpanMapFromPairMap(pairs)
	if err != nil {
		t.Fatal(err)
	}

	slab := NewSlabIndexDecoder(spans, wordchipper.DefaultTokenDecoderOptions())
	// Pass a nil span map so PairDecoder is forced down its independent
	// recursive merge-pair expansion path rather than the span shortcut.
	pairDec := NewPairDecoder(pairs, nil, wordchipper.DefaultTokenDecoderOptions())

	tokens := []uint32{257, 'c', 'a', 't', 256}
	slabRes, err := slab.TryDecodeToBytes(tokens)
	if err != nil {
		t.Fatalf("slab: %v", err)
	}
	pairRes, err := pairDec.TryDecodeToBytes(tokens)
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	if string(slabRes.Value) != string(pairRes.Value) {
		t.Fatalf("slab decoded %q, pair decoded %q, want equal", slabRes.Value, pairRes.Value)
	}
	if slabRes.Remaining != pairRes.Remaining {
		t.Fatalf("slab Remaining=%d, pair Remaining=%d, want equal", slabRes.Remaining, pairRes.Remaining)
	}
}

func TestPairDecoderUnresolvableToken(t *testing.T) {
	bytesVocab := vocab.NewByteMapVocab[uint32]()
	pairs := vocab.NewPairMapVocab(bytesVocab)
	pairDec := NewPairDecoder(pairs, nil, wordchipper.DefaultTokenDecoderOptions())

	res, err := pairDec.TryDecodeToBytes([]uint32{'a', 999999})
	if err != nil {
		t.Fatalf("TryDecodeToBytes: %v", err)
	}
	if res.Remaining != 1 || string(res.Value) != "a" {
		t.Fatalf("got Value=%q Remaining=%d, want Value=\"a\" Remaining=1", res.Value, res.Remaining)
	}
}

func TestTryDecodeToStringLossyConversion(t *testing.T) {
	spans := buildTestSpans(t)
	d := NewSlabIndexDecoder(spans, wordchipper.DefaultTokenDecoderOptions())
	// Token 0xff decodes to the lone byte 0xff, which is not valid UTF-8.
	res, err := d.TryDecodeToString([]uint32{257, 0xff})
	if err != nil {
		t.Fatalf("TryDecodeToString: %v", err)
	}
	if res.Value != "low�" {
		t.Fatalf("decoded string = %q, want %q", res.Value, "low�")
	}
}
