package spanning

import (
	"testing"

	"github.com/agentstation/wordchipper/vocab"
)

func collectText(t *testing.T, ts *TextSpanner[uint32], text string) []SpanRef {
	t.Helper()
	return ts.Collect(text)
}

func TestTextSpannerCoversEveryByte(t *testing.T) {
	lex, err := NewFancyLexer(Cl100kPattern)
	if err != nil {
		t.Fatalf("NewFancyLexer: %v", err)
	}
	cfg := vocab.NewTextSpanningConfig[uint32](Cl100kPattern, vocab.Fancy, nil)
	ts, err := NewTextSpanner[uint32](lex, cfg)
	if err != nil {
		t.Fatalf("NewTextSpanner: %v", err)
	}

	text := "hello, world!\nSecond line.  "
	spans := collectText(t, ts, text)
	if len(spans) == 0 {
		t.Fatal("expected at least one span")
	}
	cursor := 0
	for _, s := range spans {
		if s.Start != cursor {
			t.Fatalf("span %+v does not start where the previous one ended (cursor=%d)", s, cursor)
		}
		if s.End < s.Start {
			t.Fatalf("span %+v has End < Start", s)
		}
		cursor = s.End
	}
	if cursor != len(text) {
		t.Fatalf("spans cover %d bytes, want %d (full coverage invariant)", cursor, len(text))
	}
}

func TestTextSpannerSpecialTokenPrecedence(t *testing.T) {
	lex, err := NewFancyLexer(Cl100kPattern)
	if err != nil {
		t.Fatalf("NewFancyLexer: %v", err)
	}
	special := vocab.NewSpecialVocab[uint32]()
	if err := special.Insert("<|endoftext|>", 100257); err != nil {
		t.Fatal(err)
	}
	cfg := vocab.NewTextSpanningConfig[uint32](Cl100kPattern, vocab.Fancy, special)
	ts, err := NewTextSpanner[uint32](lex, cfg)
	if err != nil {
		t.Fatalf("NewTextSpanner: %v", err)
	}

	text := "hello<|endoftext|>world"
	spans := collectText(t, ts, text)

	var sawSpecial bool
	for _, s := range spans {
		if s.Kind == Special {
			sawSpecial = true
			if string(s.Bytes(text)) != "<|endoftext|>" {
				t.Fatalf("special span text = %q, want the literal special token", s.Bytes(text))
			}
		}
	}
	if !sawSpecial {
		t.Fatal("expected a Special span for the registered special token")
	}
}

func TestTextSpannerNoGapsForAdjacentWords(t *testing.T) {
	lex, err := NewFancyLexer(Cl100kPattern)
	if err != nil {
		t.Fatalf("NewFancyLexer: %v", err)
	}
	cfg := vocab.NewTextSpanningConfig[uint32](Cl100kPattern, vocab.Fancy, nil)
	ts, err := NewTextSpanner[uint32](lex, cfg)
	if err != nil {
		t.Fatal(err)
	}

	spans := collectText(t, ts, "hello world")
	for _, s := range spans {
		if s.Kind == Gap {
			t.Fatalf("unexpected Gap span %+v for fully lexer-covered text", s)
		}
	}
}

func TestAcceleratedLexerMatchesFancyLexer(t *testing.T) {
	fancy, err := NewFancyLexer(Cl100kPattern)
	if err != nil {
		t.Fatalf("NewFancyLexer: %v", err)
	}
	accel := NewAcceleratedLexer()

	samples := []string{
		"hello world",
		"HELLO World's can't stop",
		"line one\nline two\r\nline three",
		"tab\tand   spaces",
		"123 4567 89",
		"!!!symbols??? ...",
		"",
		"  leading and trailing spaces  ",
		"MixedCASEWord then lowercase",
		"a\n \nb",
	}

	for _, text := range samples {
		fancySpans := collectSpans(t, fancy, text)
		accelSpans := collectSpans(t, accel, text)
		if len(fancySpans) != len(accelSpans) {
			t.Fatalf("text %q: fancy produced %d spans, accelerated produced %d", text, len(fancySpans), len(accelSpans))
		}
		for i := range fancySpans {
			if fancySpans[i] != accelSpans[i] {
				t.Fatalf("text %q: span %d differs: fancy=%+v accelerated=%+v", text, i, fancySpans[i], accelSpans[i])
			}
		}
	}
}

func collectSpans(t *testing.T, lex SpanLexer, text string) [][2]int {
	t.Helper()
	var out [][2]int
	cursor := 0
	for cursor < len(text) {
		start, end, ok := lex.NextSpan(text, cursor)
		if !ok {
			break
		}
		out = append(out, [2]int{start, end})
		cursor = end
	}
	return out
}

func TestAcceleratedPatternForOnlyMatchesCl100k(t *testing.T) {
	if _, ok := AcceleratedPatternFor(Cl100kPattern); !ok {
		t.Fatal("expected an accelerated lexer for Cl100kPattern")
	}
	if _, ok := AcceleratedPatternFor(R50kPattern); ok {
		t.Fatal("did not expect an accelerated lexer for R50kPattern")
	}
}
