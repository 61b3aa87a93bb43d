package spanning

// Canonical pretrained word-split patterns. These strings are contract:
// accelerated lexers key off their exact text, and changing a byte changes
// the tokenization of every model built on it. All require a
// backtracking-capable engine (lookahead, possessive quantifiers) and do
// not compile under Go's stdlib RE2-based regexp package.

// R50kPattern is the GPT-2 era r50k_base / p50k_base word-split pattern,
// optimized form. Treated as canonical per the resolved "optimized vs slow
// pattern" open question.
const R50kPattern = `'(?:[sdmt]|ll|ve|re)| ?\p{L}++| ?\p{N}++| ?[^\s\p{L}\p{N}]++|\s++$|\s+(?!\S)|\s`

// r50kPatternSlow is the unoptimized r50k_base pattern, kept only for
// compatibility audits against the optimized pattern above; never used to
// build a live tokenizer.
const r50kPatternSlow = `'s|'t|'re|'ve|'m|'ll|'d| ?[\p{L}]+| ?[\p{N}]+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`

// P50kPattern is identical in shape to R50kPattern; p50k_base and r50k_base
// share one word-split grammar and differ only in vocabulary size.
const P50kPattern = R50kPattern

// Cl100kPattern is the cl100k_base word-split pattern: case-insensitive
// contraction suffixes, a three-digit cap on number runs, and CRLF-aware
// whitespace handling.
const Cl100kPattern = `(?i:'s|'t|'re|'ve|'m|'ll|'d)|[^\r\n\p{L}\p{N}]?+\p{L}++|\p{N}{1,3}+| ?[^\s\p{L}\p{N}]++[\r\n]*|\s++$|\s*[\r\n]|\s+(?!\S)|\s`

// O200kPattern is the o200k_base word-split pattern: separate upper,
// lower, and title-case letter-run categories plus a post-apostrophe
// contraction suffix category, used by GPT-4o/GPT-5-era vocabularies
// including the o200k_harmony special-token variant.
const O200kPattern = `[^\r\n\p{L}\p{N}]?+\p{Lu}+\p{Ll}*(?:'s|'t|'re|'ve|'m|'ll|'d)?+|[^\r\n\p{L}\p{N}]?+\p{Lu}*\p{Ll}+(?:'s|'t|'re|'ve|'m|'ll|'d)?+|\p{N}{1,3}+| ?[^\s\p{L}\p{N}]++[\r\n]*|\s++$|\s*[\r\n]|\s+(?!\S)|\s`
