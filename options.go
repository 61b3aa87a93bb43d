package wordchipper

// SpanEncoderSelector chooses which of the four interchangeable BPE merge
// algorithms a TokenSpanEncoder uses. All variants produce byte-identical
// output; they differ only in performance characteristics.
type SpanEncoderSelector int

const (
	// Default selects PriorityMerge, the production algorithm. Never pin
	// serialized configuration to this value directly -- pin one of the
	// concrete algorithms below if you need a stable config, so that the
	// meaning of "default" can evolve independently of saved configs.
	Default SpanEncoderSelector = iota
	// Reference selects BufferSweep, used to cross-check the other
	// algorithms in tests.
	Reference
	// TailSweep scans the full output tail each iteration. Simplest,
	// O(n^2) worst case.
	TailSweep
	// BufferSweep is TailSweep over a reusable working buffer.
	BufferSweep
	// MergeHeap maintains a parallel rank array with targeted neighbor
	// updates instead of rescanning the whole window.
	MergeHeap
	// PriorityMerge maintains an actual priority queue keyed on
	// (rank, position). The production default.
	PriorityMerge
)

func (s SpanEncoderSelector) String() string {
	switch s {
	case Default:
		return "default"
	case Reference:
		return "reference"
	case TailSweep:
		return "tail-sweep"
	case BufferSweep:
		return "buffer-sweep"
	case MergeHeap:
		return "merge-heap"
	case PriorityMerge:
		return "priority-merge"
	default:
		return "unknown"
	}
}

// resolve maps Default/Reference onto their concrete algorithms.
func (s SpanEncoderSelector) resolve() SpanEncoderSelector {
	switch s {
	case Default:
		return PriorityMerge
	case Reference:
		return BufferSweep
	default:
		return s
	}
}

// Resolved returns the concrete algorithm this selector names, collapsing
// Default and Reference onto the algorithm they currently alias.
func (s SpanEncoderSelector) Resolved() SpanEncoderSelector { return s.resolve() }

// DefaultBytesPerToken is the expected bytes-per-token ratio used to
// pre-size encode/decode buffers absent better information. Ported
// verbatim from the source vocabulary crate's DEFAULT_BYTE_PER_TOKEN_RATIO.
const DefaultBytesPerToken = 4.8

// decodeBufferPadding is the multiplicative headroom applied on top of the
// raw bytes-per-token estimate when pre-sizing a decode buffer.
const decodeBufferPadding = 1.1

// encodeBufferPadding is the multiplicative headroom applied on top of the
// raw bytes/bytesPerToken estimate when pre-sizing an encode output buffer
// (spec §4.5 "expected_token_count ... padded by 15%").
const encodeBufferPadding = 1.15

// PredictedTokenCount estimates the token count of a text of the given
// byte length at the given bytes-per-token ratio, padded by
// encodeBufferPadding.
func PredictedTokenCount(textLen int, bytesPerToken float64) int {
	if bytesPerToken <= 0 {
		bytesPerToken = DefaultBytesPerToken
	}
	return int(float64(textLen) / bytesPerToken * encodeBufferPadding)
}

// TokenEncoderOptions configures a TokenSpanEncoder.
type TokenEncoderOptions struct {
	// Selector picks the BPE merge algorithm. Zero value is Default.
	Selector SpanEncoderSelector
	// MaxPoolSize bounds the span-encoder pool size; 0 means resolve from
	// environment and available parallelism (see concurrency.ResolveMaxPool).
	MaxPoolSize int
	// BytesPerToken seeds the output-buffer size estimate for TryEncode.
	BytesPerToken float64
}

// DefaultTokenEncoderOptions returns the baseline encoder configuration.
func DefaultTokenEncoderOptions() TokenEncoderOptions {
	return TokenEncoderOptions{
		Selector:      Default,
		MaxPoolSize:   0,
		BytesPerToken: DefaultBytesPerToken,
	}
}

// TokenEncoderOption is a functional option over TokenEncoderOptions.
type TokenEncoderOption func(*TokenEncoderOptions) error

// NewTokenEncoderOptions starts from DefaultTokenEncoderOptions and applies
// opts in order.
func NewTokenEncoderOptions(opts ...TokenEncoderOption) (TokenEncoderOptions, error) {
	o := DefaultTokenEncoderOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return TokenEncoderOptions{}, err
		}
	}
	return o, nil
}

// WithSpanEncoderSelector overrides the BPE merge algorithm.
func WithSpanEncoderSelector(s SpanEncoderSelector) TokenEncoderOption {
	return func(o *TokenEncoderOptions) error {
		o.Selector = s
		return nil
	}
}

// WithEncoderMaxPoolSize bounds the span-encoder pool size.
func WithEncoderMaxPoolSize(n int) TokenEncoderOption {
	return func(o *TokenEncoderOptions) error {
		if n < 0 {
			return &VocabConflictError{Op: "WithEncoderMaxPoolSize", Message: "pool size must be >= 0"}
		}
		o.MaxPoolSize = n
		return nil
	}
}

// TokenDecoderOptions configures a TokenDecoder.
type TokenDecoderOptions struct {
	// BytesPerToken seeds the output-buffer size estimate for decoding.
	BytesPerToken float64
}

// DefaultTokenDecoderOptions returns the baseline decoder configuration.
func DefaultTokenDecoderOptions() TokenDecoderOptions {
	return TokenDecoderOptions{BytesPerToken: DefaultBytesPerToken}
}

// TokenDecoderOption is a functional option over TokenDecoderOptions.
type TokenDecoderOption func(*TokenDecoderOptions) error

// NewTokenDecoderOptions starts from DefaultTokenDecoderOptions and applies
// opts in order.
func NewTokenDecoderOptions(opts ...TokenDecoderOption) (TokenDecoderOptions, error) {
	o := DefaultTokenDecoderOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return TokenDecoderOptions{}, err
		}
	}
	return o, nil
}

// WithDecoderBytesPerToken overrides the decode buffer size estimate.
func WithDecoderBytesPerToken(ratio float64) TokenDecoderOption {
	return func(o *TokenDecoderOptions) error {
		if ratio <= 0 {
			return &VocabConflictError{Op: "WithDecoderBytesPerToken", Message: "ratio must be > 0"}
		}
		o.BytesPerToken = ratio
		return nil
	}
}

// PredictedByteBufferSize estimates a decode buffer size for n tokens at
// the given bytes-per-token ratio, padded by decodeBufferPadding.
func PredictedByteBufferSize(tokenCount int, bytesPerToken float64) int {
	if bytesPerToken <= 0 {
		bytesPerToken = DefaultBytesPerToken
	}
	return int(float64(tokenCount) * bytesPerToken * decodeBufferPadding)
}

// TokenizerOptions bundles the encoder and decoder configuration for a
// Tokenizer facade.
type TokenizerOptions struct {
	Encoder TokenEncoderOptions
	Decoder TokenDecoderOptions
}

// DefaultTokenizerOptions returns the baseline facade configuration.
func DefaultTokenizerOptions() TokenizerOptions {
	return TokenizerOptions{
		Encoder: DefaultTokenEncoderOptions(),
		Decoder: DefaultTokenDecoderOptions(),
	}
}
