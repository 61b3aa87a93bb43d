package spanning

import (
	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/vocab"
)

// TextSpanner segments an input string into a sequence of SpanRefs
// covering every byte exactly once, in source order.
type TextSpanner[T wordchipper.TokenID] struct {
	word    SpanLexer
	special SpanLexer // nil when no special tokens are registered
}

// NewTextSpanner builds a spanner from a word lexer and a spanning
// configuration. If cfg.Special is non-empty, a lexer for its alternation
// pattern is compiled (always via FancyLexer: the alternation is built
// from regexp.QuoteMeta'd literals, never needing backtracking, but
// reusing the Fancy engine keeps one code path for "locate next match").
func NewTextSpanner[T wordchipper.TokenID](word SpanLexer, cfg vocab.TextSpanningConfig[T]) (*TextSpanner[T], error) {
	ts := &TextSpanner[T]{word: word}
	if pattern, ok := cfg.Special.SpecialPattern(); ok {
		lex, err := NewFancyLexer(pattern)
		if err != nil {
			return nil, err
		}
		ts.special = lex
	}
	return ts, nil
}

// Spans calls yield once per SpanRef, in source order, stopping early if
// yield returns false. This internal-iterator form avoids the self-borrow
// problem a lazy external iterator would pose while still letting callers
// treat the output as a sequence.
func (ts *TextSpanner[T]) Spans(text string, yield func(SpanRef) bool) {
	if ts.special == nil {
		ts.wordLexSegment(text, 0, len(text), yield)
		return
	}

	current := 0
	for current <= len(text) {
		start, end, ok := ts.special.NextSpan(text, current)
		if !ok {
			break
		}
		if !ts.wordLexSegment(text, current, start, yield) {
			return
		}
		if !yield(SpanRef{Kind: Special, Start: start, End: end}) {
			return
		}
		current = end
	}
	ts.wordLexSegment(text, current, len(text), yield)
}

// wordLexSegment runs the word lexer over text[from:to], emitting Word and
// Gap spans shifted into the full-text coordinate space. Returns false if
// yield asked to stop early.
func (ts *TextSpanner[T]) wordLexSegment(text string, from, to int, yield func(SpanRef) bool) bool {
	if from >= to {
		return true
	}
	segment := text[:to]
	cursor := from
	for cursor < to {
		start, end, ok := ts.word.NextSpan(segment, cursor)
		if !ok || start >= to {
			break
		}
		if end > to {
			end = to
		}
		if start > cursor {
			if !yield(SpanRef{Kind: Gap, Start: cursor, End: start}) {
				return false
			}
		}
		if !yield(SpanRef{Kind: Word, Start: start, End: end}) {
			return false
		}
		cursor = end
	}
	if cursor < to {
		if !yield(SpanRef{Kind: Gap, Start: cursor, End: to}) {
			return false
		}
	}
	return true
}

// Collect runs Spans to completion and returns every SpanRef as a slice,
// a convenience for tests and batch call sites that don't need early exit.
func (ts *TextSpanner[T]) Collect(text string) []SpanRef {
	var out []SpanRef
	ts.Spans(text, func(s SpanRef) bool {
		out = append(out, s)
		return true
	})
	return out
}
