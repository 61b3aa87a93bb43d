package vocab

import "github.com/agentstation/wordchipper"

// PairMapVocab stores the learned merge table: each entry (a, b) -> r
// records that tokens a and b merge into token r. The merged token id
// equals its rank, so "minimum token id among mergeable pairs" is the
// same thing as "best (earliest-learned) merge" -- no separate rank
// column is stored.
type PairMapVocab[T wordchipper.TokenID] struct {
	bytes   *ByteMapVocab[T]
	pairMap map[wordchipper.Pair[T]]T
	maxTok  T
}

// NewPairMapVocab creates an empty merge table over the given byte
// alphabet.
func NewPairMapVocab[T wordchipper.TokenID](bytes *ByteMapVocab[T]) *PairMapVocab[T] {
	return &PairMapVocab[T]{
		bytes:   bytes,
		pairMap: make(map[wordchipper.Pair[T]]T),
		maxTok:  bytes.MaxToken(),
	}
}

// AddMerge records that (a, b) merges into result. It returns a
// VocabConflictError if the pair is already present with a different
// result, matching the source's "ill-formed vocabulary" failure mode.
func (v *PairMapVocab[T]) AddMerge(a, b, result T) error {
	key := wordchipper.Pair[T]{Left: a, Right: b}
	if existing, ok := v.pairMap[key]; ok && existing != result {
		return &wordchipper.VocabConflictError{
			Op:      "AddMerge",
			Message: "pair already mapped to a different token",
		}
	}
	v.pairMap[key] = result
	if result > v.maxTok {
		v.maxTok = result
	}
	return nil
}

// Lookup returns the merge result of (a, b), if one is learned.
func (v *PairMapVocab[T]) Lookup(a, b T) (T, bool) {
	r, ok := v.pairMap[wordchipper.Pair[T]{Left: a, Right: b}]
	return r, ok
}

// Bytes returns the underlying byte alphabet this merge table was built
// over.
func (v *PairMapVocab[T]) Bytes() *ByteMapVocab[T] { return v.bytes }

// Len reports the number of learned merges (excluding the byte alphabet).
func (v *PairMapVocab[T]) Len() int { return len(v.pairMap) }

// IsEmpty reports whether no merges have been learned yet.
func (v *PairMapVocab[T]) IsEmpty() bool { return len(v.pairMap) == 0 }

// Tokens returns the result token id of every learned merge (excluding the
// byte alphabet), matching the scope of Len.
func (v *PairMapVocab[T]) Tokens() []T {
	out := make([]T, 0, len(v.pairMap))
	for _, r := range v.pairMap {
		out = append(out, r)
	}
	return out
}

// MaxToken returns the largest token id reachable through this merge
// table, including the byte alphabet.
func (v *PairMapVocab[T]) MaxToken() T { return v.maxTok }

// Pairs iterates every learned merge in undefined order; callers that need
// a stable order should sort by result.
func (v *PairMapVocab[T]) Pairs(yield func(a, b, result T) bool) {
	for k, r := range v.pairMap {
		if !yield(k.Left, k.Right, r) {
			return
		}
	}
}
