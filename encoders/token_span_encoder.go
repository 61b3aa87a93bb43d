package encoders

import (
	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/concurrency"
	"github.com/agentstation/wordchipper/spanning"
	"github.com/agentstation/wordchipper/vocab"
)

// TokenSpanEncoder composes a vocabulary, a text spanner, and a
// span-encoder pool into the public TokenEncoder surface: the whole-span
// dictionary shortcut, special-token bypass, and BPE merges are all driven
// from here. It implements wordchipper.TokenEncoder[T].
type TokenSpanEncoder[T wordchipper.TokenID] struct {
	vocab   *vocab.UnifiedTokenVocab[T]
	spanner *spanning.TextSpanner[T]
	pool    *Pool[T]
	opts    wordchipper.TokenEncoderOptions
}

// New builds a TokenSpanEncoder. word is the word lexer the spanner
// drives; pass spanning.NewAcceleratedLexer() when the vocabulary's
// pattern has a known accelerated match (see
// spanning.AcceleratedPatternFor), otherwise a *spanning.FancyLexer.
func New[T wordchipper.TokenID](v *vocab.UnifiedTokenVocab[T], word spanning.SpanLexer, opts wordchipper.TokenEncoderOptions) (*TokenSpanEncoder[T], error) {
	spanner, err := spanning.NewTextSpanner(word, v.Spanning)
	if err != nil {
		return nil, err
	}
	n := concurrency.ResolveMaxPool(opts.MaxPoolSize)
	return &TokenSpanEncoder[T]{
		vocab:   v,
		spanner: spanner,
		pool:    NewPool[T](n, opts.Selector),
		opts:    opts,
	}, nil
}

// TryEncodeAppend implements wordchipper.TokenEncoder.
func (e *TokenSpanEncoder[T]) TryEncodeAppend(text string, tokens []T) ([]T, error) {
	var appendErr error
	e.spanner.Spans(text, func(s spanning.SpanRef) bool {
		switch s.Kind {
		case spanning.Word:
			span := s.Bytes(text)
			if tok, ok := e.vocab.Spans.Lookup(span); ok {
				tokens = append(tokens, tok)
				return true
			}
			var err error
			tokens, err = e.pool.EncodeAppend(e.vocab, span, tokens)
			if err != nil {
				appendErr = err
				return false
			}
		case spanning.Special:
			tok, ok := e.vocab.Spanning.Special.Lookup(s.Bytes(text))
			if !ok {
				appendErr = &wordchipper.VocabConflictError{
					Op:      "TryEncodeAppend",
					Message: "special span did not resolve in the special vocabulary",
				}
				return false
			}
			tokens = append(tokens, tok)
		case spanning.Gap:
			// no tokens produced
		}
		return true
	})
	if appendErr != nil {
		return nil, appendErr
	}
	return tokens, nil
}

// TryEncode implements wordchipper.TokenEncoder.
func (e *TokenSpanEncoder[T]) TryEncode(text string) ([]T, error) {
	buf := make([]T, 0, wordchipper.PredictedTokenCount(len(text), e.opts.BytesPerToken)+1)
	return e.TryEncodeAppend(text, buf)
}

// TryEncodeBatch implements wordchipper.TokenEncoder. It is a sequential
// loop; the parallel package's wrapper overrides this with a
// worker-pool implementation.
func (e *TokenSpanEncoder[T]) TryEncodeBatch(texts []string) ([][]T, error) {
	out := make([][]T, len(texts))
	for i, t := range texts {
		tokens, err := e.TryEncode(t)
		if err != nil {
			return nil, err
		}
		out[i] = tokens
	}
	return out, nil
}
