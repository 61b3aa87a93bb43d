package vocab

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agentstation/wordchipper"
)

func TestByteMapVocabDefaultBijection(t *testing.T) {
	v := NewByteMapVocab[uint32]()
	if v.Len() != 256 {
		t.Fatalf("Len() = %d, want 256", v.Len())
	}
	for b := 0; b < 256; b++ {
		tok := v.Token(byte(b))
		if uint32(tok) != uint32(b) {
			t.Fatalf("Token(%d) = %d, want %d", b, tok, b)
		}
		got, ok := v.Byte(tok)
		if !ok || got != byte(b) {
			t.Fatalf("Byte(%d) = (%d, %v), want (%d, true)", tok, got, ok, b)
		}
	}
}

func TestByteMapVocabAppendTokens(t *testing.T) {
	v := NewByteMapVocab[uint32]()
	out := v.AppendTokens([]byte("ab"), nil)
	want := []uint32{'a', 'b'}
	if len(out) != len(want) || out[0] != want[0] || out[1] != want[1] {
		t.Fatalf("AppendTokens = %v, want %v", out, want)
	}
}

func TestByteMapVocabEqual(t *testing.T) {
	a := NewByteMapVocab[uint32]()
	b := NewByteMapVocab[uint32]()
	if !a.Equal(b) {
		t.Fatal("two default byte alphabets should be equal")
	}
	if a.Equal(nil) {
		t.Fatal("Equal(nil) should be false")
	}
}

func TestPairMapVocabAddMergeConflict(t *testing.T) {
	bytes := NewByteMapVocab[uint32]()
	pm := NewPairMapVocab(bytes)

	if err := pm.AddMerge('a', 'b', 256); err != nil {
		t.Fatalf("AddMerge: %v", err)
	}
	if err := pm.AddMerge('a', 'b', 256); err != nil {
		t.Fatalf("idempotent AddMerge: %v", err)
	}
	if err := pm.AddMerge('a', 'b', 257); err == nil {
		t.Fatal("expected VocabConflictError for contradictory merge")
	} else if _, ok := err.(*wordchipper.VocabConflictError); !ok {
		t.Fatalf("expected *VocabConflictError, got %T", err)
	}
}

func TestPairMapVocabLookupAndMaxToken(t *testing.T) {
	bytes := NewByteMapVocab[uint32]()
	pm := NewPairMapVocab(bytes)
	if err := pm.AddMerge('h', 'e', 256); err != nil {
		t.Fatal(err)
	}
	if r, ok := pm.Lookup('h', 'e'); !ok || r != 256 {
		t.Fatalf("Lookup = (%d, %v), want (256, true)", r, ok)
	}
	if _, ok := pm.Lookup('x', 'y'); ok {
		t.Fatal("unexpected merge found")
	}
	if pm.MaxToken() != 256 {
		t.Fatalf("MaxToken() = %d, want 256", pm.MaxToken())
	}
}

func TestSpanMapVocabInsertConflicts(t *testing.T) {
	bytes := NewByteMapVocab[uint32]()
	sm := NewSpanMapVocab(bytes)

	if err := sm.Insert([]byte("he"), 256); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := sm.Insert([]byte("he"), 256); err != nil {
		t.Fatalf("idempotent Insert: %v", err)
	}
	if err := sm.Insert([]byte("he"), 257); err == nil {
		t.Fatal("expected VocabConflictError for duplicate span, different token")
	}
	if err := sm.Insert([]byte("xy"), 256); err == nil {
		t.Fatal("expected VocabConflictError for duplicate token, different span")
	}
}

func TestBuildSpanMapFromPairMapRoundTrip(t *testing.T) {
	bytes := NewByteMapVocab[uint32]()
	pm := NewPairMapVocab(bytes)
	// "he" -> 256, "ll" -> 257, "hell" -> 258 ('h','e' then 256,'l','l' etc.)
	mustMerge(t, pm, 'h', 'e', 256)
	mustMerge(t, pm, 'l', 'l', 257)
	mustMerge(t, pm, 256, 257, 258)

	sm, err := BuildSpanMapFromPairMap(pm)
	if err != nil {
		t.Fatalf("BuildSpanMapFromPairMap: %v", err)
	}
	span, ok := sm.Span(258)
	if !ok || string(span) != "hell" {
		t.Fatalf("Span(258) = (%q, %v), want (\"hell\", true)", span, ok)
	}
	if tok, ok := sm.Lookup([]byte("hell")); !ok || tok != 258 {
		t.Fatalf("Lookup(\"hell\") = (%d, %v), want (258, true)", tok, ok)
	}

	pm2, err := BuildPairMapFromSpanMap(sm)
	if err != nil {
		t.Fatalf("BuildPairMapFromSpanMap: %v", err)
	}
	if r, ok := pm2.Lookup('h', 'e'); !ok || r != 256 {
		t.Fatalf("factored Lookup('h','e') = (%d, %v), want (256, true)", r, ok)
	}
	if r, ok := pm2.Lookup(256, 257); !ok || r != 258 {
		t.Fatalf("factored Lookup(256,257) = (%d, %v), want (258, true)", r, ok)
	}
}

func TestBuildPairMapFromSpanMapUnfactorizable(t *testing.T) {
	bytes := NewByteMapVocab[uint32]()
	sm := NewSpanMapVocab(bytes)
	// "abc" inserted directly with no "ab"/"c" or "a"/"bc" shorter spans present.
	if err := sm.Insert([]byte("abc"), 1000); err != nil {
		t.Fatal(err)
	}
	if _, err := BuildPairMapFromSpanMap(sm); err == nil {
		t.Fatal("expected VocabConflictError for a span with no valid factorization")
	}
}

func mustMerge(t *testing.T, pm *PairMapVocab[uint32], a, b, result uint32) {
	t.Helper()
	if err := pm.AddMerge(a, b, result); err != nil {
		t.Fatalf("AddMerge(%d,%d,%d): %v", a, b, result, err)
	}
}

func TestSpecialVocabPatternOrdering(t *testing.T) {
	sv := NewSpecialVocab[uint32]()
	if err := sv.Insert("<|endoftext|>", 50256); err != nil {
		t.Fatal(err)
	}
	if err := sv.Insert("<|end|>", 50257); err != nil {
		t.Fatal(err)
	}
	texts := sv.Texts()
	if len(texts) != 2 || texts[0] != "<|endoftext|>" {
		t.Fatalf("Texts() = %v, want longest-first ordering", texts)
	}
	pattern, ok := sv.SpecialPattern()
	if !ok || !strings.HasPrefix(pattern, `<\|endoftext\|>`) {
		t.Fatalf("SpecialPattern() = %q, ok=%v", pattern, ok)
	}
}

func TestSpecialVocabEmpty(t *testing.T) {
	sv := NewSpecialVocab[uint32]()
	if !sv.IsEmpty() {
		t.Fatal("fresh SpecialVocab should be empty")
	}
	if _, ok := sv.SpecialPattern(); ok {
		t.Fatal("SpecialPattern() should report false when empty")
	}
}

func TestNewUnifiedTokenVocab(t *testing.T) {
	sharedBytes := NewByteMapVocab[uint32]()
	pm := NewPairMapVocab(sharedBytes)
	sm := NewSpanMapVocab(sharedBytes)
	cfg := NewTextSpanningConfig[uint32]("pattern", Basic, nil)
	uv, err := NewUnifiedTokenVocab(pm, sm, cfg)
	if err != nil {
		t.Fatalf("unexpected error with matching alphabets: %v", err)
	}
	if uv.Bytes != sharedBytes {
		t.Fatal("UnifiedTokenVocab.Bytes should be the shared alphabet")
	}
}

func TestWriteReadSpanMapRoundTrip(t *testing.T) {
	bytesVocab := NewByteMapVocab[uint32]()
	sm := NewSpanMapVocab(bytesVocab)
	if err := sm.Insert([]byte("he"), 256); err != nil {
		t.Fatal(err)
	}
	if err := sm.Insert([]byte("llo"), 257); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteSpanMap(&buf, sm); err != nil {
		t.Fatalf("WriteSpanMap: %v", err)
	}

	read, err := ReadSpanMap(&buf, bytesVocab)
	if err != nil {
		t.Fatalf("ReadSpanMap: %v", err)
	}
	if read.Len() != sm.Len() {
		t.Fatalf("round-tripped Len() = %d, want %d", read.Len(), sm.Len())
	}
	if tok, ok := read.Lookup([]byte("he")); !ok || tok != 256 {
		t.Fatalf("round-tripped Lookup(\"he\") = (%d, %v), want (256, true)", tok, ok)
	}
}

func TestValidateSizeTooSmall(t *testing.T) {
	err := ValidateSize[uint32](100)
	if err == nil {
		t.Fatal("expected VocabSizeTooSmallError for a vocab size of 100")
	}
	if _, ok := err.(*wordchipper.VocabSizeTooSmallError); !ok {
		t.Fatalf("expected *VocabSizeTooSmallError, got %T", err)
	}
}

func TestValidateSizeOverflow(t *testing.T) {
	err := ValidateSize[uint16](70000)
	if err == nil {
		t.Fatal("expected VocabSizeOverflowError for 70000 into a 16-bit token type")
	}
	if _, ok := err.(*wordchipper.VocabSizeOverflowError); !ok {
		t.Fatalf("expected *VocabSizeOverflowError, got %T", err)
	}
}

func TestValidateSizeWithinRange(t *testing.T) {
	if err := ValidateSize[uint16](65536); err != nil {
		t.Fatalf("unexpected error for a full 16-bit vocab: %v", err)
	}
	if err := ValidateSize[uint32](256); err != nil {
		t.Fatalf("unexpected error for the minimum byte-alphabet size: %v", err)
	}
}

func TestReadSpanMapMalformedLine(t *testing.T) {
	bytesVocab := NewByteMapVocab[uint32]()
	r := strings.NewReader("not-valid-base64!! notanumber\n")
	if _, err := ReadSpanMap(r, bytesVocab); err == nil {
		t.Fatal("expected ParseError for malformed line")
	} else if _, ok := err.(*wordchipper.ParseError); !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}
