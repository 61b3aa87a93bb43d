package vocab

import "github.com/agentstation/wordchipper"

// byteAlphabetSize is the minimum vocabulary size: every vocabulary must
// cover at least the 256-entry byte alphabet.
const byteAlphabetSize = 256

// ValidateSize checks a requested or assembled vocabulary size against the
// chosen TokenID width, mirroring the source crate's try_vocab_size
// (original_source/crates/wordchipper/src/vocab/utility/validators.rs):
// it must fit in T (VocabSizeOverflowError) and must be at least as large
// as the byte alphabet (VocabSizeTooSmallError). The overflow check runs
// first, matching validators.rs's check order.
func ValidateSize[T wordchipper.TokenID](vocabSize uint64) error {
	max := wordchipper.MaxTokenValue[T]()
	if vocabSize == 0 || vocabSize-1 > max {
		return &wordchipper.VocabSizeOverflowError{Size: vocabSize, Max: max}
	}
	if vocabSize < byteAlphabetSize {
		return &wordchipper.VocabSizeTooSmallError{Size: vocabSize}
	}
	return nil
}
