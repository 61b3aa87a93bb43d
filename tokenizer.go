package wordchipper

// Tokenizer is the top-level facade combining a TokenEncoder and a
// TokenDecoder built over the same vocabulary. It depends only on the two
// interfaces in interfaces.go, never on a concrete vocabulary or encoder/decoder
// package directly: those packages already depend on this one (for
// TokenID, the error types, and the option types), so a direct dependency
// the other way would be an import cycle. Callers assemble a Tokenizer
// from whichever encoder/decoder pair they've built -- see the
// pretrained package for loading a named vocabulary and the encoders /
// decoders / parallel packages for constructing the pair to pass in.
type Tokenizer[T TokenID] struct {
	Encoder TokenEncoder[T]
	Decoder TokenDecoder[T]
}

// New assembles a Tokenizer from a pre-built encoder and decoder. Both
// must be constructed over the same vocabulary; New does not and cannot
// verify that itself, since it only sees the two interfaces.
func New[T TokenID](enc TokenEncoder[T], dec TokenDecoder[T]) *Tokenizer[T] {
	return &Tokenizer[T]{Encoder: enc, Decoder: dec}
}

// Encode tokenizes text, delegating to the wrapped encoder.
func (t *Tokenizer[T]) Encode(text string) ([]T, error) {
	return t.Encoder.TryEncode(text)
}

// EncodeBatch tokenizes every element of texts, preserving order.
func (t *Tokenizer[T]) EncodeBatch(texts []string) ([][]T, error) {
	return t.Encoder.TryEncodeBatch(texts)
}

// Decode turns tokens back into bytes, delegating to the wrapped decoder.
func (t *Tokenizer[T]) Decode(tokens []T) (DecodeResult[[]byte], error) {
	return t.Decoder.TryDecodeToBytes(tokens)
}

// DecodeString turns tokens back into a (possibly lossily converted)
// string.
func (t *Tokenizer[T]) DecodeString(tokens []T) (DecodeResult[string], error) {
	return t.Decoder.TryDecodeToString(tokens)
}

// DecodeBatch decodes every entry of batches, preserving order.
func (t *Tokenizer[T]) DecodeBatch(batches [][]T) ([]DecodeResult[[]byte], error) {
	return t.Decoder.TryDecodeBatchToBytes(batches)
}
