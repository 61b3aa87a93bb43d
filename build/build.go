// Package build is the composition root that wires the pretrained
// registry, the vocabulary model, the span encoders, the decoders, and
// the parallel batch wrappers into a ready-to-use wordchipper.Tokenizer.
// It exists as its own package because the vocab/encoders/decoders/
// pretrained packages all depend on the root wordchipper package (for
// TokenID, the error types, and the option types); a helper that depends
// on all of them, in turn, cannot itself live in the root package without
// creating an import cycle.
package build

import (
	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/decoders"
	"github.com/agentstation/wordchipper/encoders"
	"github.com/agentstation/wordchipper/parallel"
	"github.com/agentstation/wordchipper/pretrained"
	"github.com/agentstation/wordchipper/spanning"
	"github.com/agentstation/wordchipper/vocab"
)

// wordLexer picks the word-split lexer for a Model: the accelerated
// scanner when its pattern is known to have one (spec.md §4.3
// "Accelerated lookup"), a FancyLexer over the pattern text otherwise.
func wordLexer(m pretrained.Model) (spanning.SpanLexer, error) {
	if m.PatternKind == vocab.Adaptive {
		if lex, ok := spanning.AcceleratedPatternFor(m.Pattern); ok {
			return lex, nil
		}
	}
	return spanning.NewFancyLexer(m.Pattern)
}

// FromModel wires a single pretrained Model into a Tokenizer. Batch calls
// are always wrapped with the parallel package's data-parallel adapters;
// opts.Encoder.MaxPoolSize only bounds the span-encoder pool size.
func FromModel(m pretrained.Model, loader pretrained.ResourceLoader, opts wordchipper.TokenizerOptions) (*wordchipper.Tokenizer[uint32], error) {
	uv, err := pretrained.LoadModel(m, loader)
	if err != nil {
		return nil, err
	}
	lex, err := wordLexer(m)
	if err != nil {
		return nil, err
	}
	return assemble(uv, lex, opts)
}

// FromName resolves name through the pretrained registry and wires it
// into a Tokenizer, per spec.md §4.9.
func FromName(name string, loader pretrained.ResourceLoader, opts wordchipper.TokenizerOptions) (*wordchipper.Tokenizer[uint32], error) {
	m, ok := pretrained.Lookup(name)
	if !ok {
		return nil, &wordchipper.ExternalError{Op: "FromName", Err: wordchipper.ErrResourceNotFound}
	}
	return FromModel(m, loader, opts)
}

// FromVocab wires an already-loaded UnifiedTokenVocab into a Tokenizer.
// The word lexer is always a FancyLexer here, since a bare UnifiedTokenVocab
// carries no Model metadata to key an accelerated lexer off of; callers
// that want the accelerated path should go through FromModel/FromName.
func FromVocab(uv *vocab.UnifiedTokenVocab[uint32], opts wordchipper.TokenizerOptions) (*wordchipper.Tokenizer[uint32], error) {
	lex, err := spanning.NewFancyLexer(uv.Spanning.Pattern)
	if err != nil {
		return nil, err
	}
	return assemble(uv, lex, opts)
}

func assemble(uv *vocab.UnifiedTokenVocab[uint32], lex spanning.SpanLexer, opts wordchipper.TokenizerOptions) (*wordchipper.Tokenizer[uint32], error) {
	enc, err := encoders.New(uv, lex, opts.Encoder)
	if err != nil {
		return nil, err
	}
	dec := decoders.NewSlabIndexDecoder(uv.Spans, opts.Decoder)

	// Batch calls are always routed through the parallel wrappers;
	// single-item calls pass straight through unchanged (see
	// parallel.Encoder/Decoder doc comments).
	var encoder wordchipper.TokenEncoder[uint32] = parallel.NewEncoder[uint32](enc)
	var decoder wordchipper.TokenDecoder[uint32] = parallel.NewDecoder[uint32](dec)
	return wordchipper.New(encoder, decoder), nil
}
