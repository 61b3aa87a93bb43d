package spanning

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// SpanLexer finds the next regex match at or after offset in text. A
// single virtual call per matched span keeps the spanner core decoupled
// from the regex engine underneath; accelerated (DFA) lexers plug in
// through this same interface.
type SpanLexer interface {
	NextSpan(text string, offset int) (start, end int, ok bool)
}

// FancyLexer drives a dlclark/regexp2 pattern, the only engine in reach
// that supports the lookahead and possessive quantifiers the canonical
// tiktoken patterns use. A TextSpanner holds a single FancyLexer and calls
// it from every goroutine that encodes through it; nothing in this module
// pools FancyLexer instances. Clone yields an independent copy for callers
// that want one per worker.
type FancyLexer struct {
	re *regexp2.Regexp
}

// NewFancyLexer compiles pattern with RE2-incompatible constructs allowed
// (lookahead, possessive quantifiers, Unicode categories).
func NewFancyLexer(pattern string) (*FancyLexer, error) {
	re, err := regexp2.Compile(pattern, regexp2.Unicode)
	if err != nil {
		return nil, fmt.Errorf("spanning: compile pattern: %w", err)
	}
	re.MatchTimeout = 0
	return &FancyLexer{re: re}, nil
}

// Clone returns an independent compiled copy of the same pattern, for
// handing one instance per pool slot.
func (l *FancyLexer) Clone() (*FancyLexer, error) {
	return NewFancyLexer(l.re.String())
}

// NextSpan implements SpanLexer.
func (l *FancyLexer) NextSpan(text string, offset int) (int, int, bool) {
	if offset > len(text) {
		return 0, 0, false
	}
	m, err := l.re.FindStringMatchStartingAt(text, offset)
	if err != nil || m == nil {
		return 0, 0, false
	}
	return m.Index, m.Index + m.Length, true
}
