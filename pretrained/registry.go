package pretrained

import (
	"bufio"
	"fmt"
	"os"

	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/vocab"
)

// Model pairs one or more aliases with everything needed to materialize a
// pretrained vocabulary: a resource key plus URL set a ResourceLoader can
// resolve, the canonical word-split pattern, and a special-token builder.
// Structurally this is the Go rendering of the source's
// ConstPretrainedHook / ConstVocabularyFactory pair, collapsed into one
// type since Go has no const-fn closures to split the two.
type Model struct {
	Aliases     []string
	Description string
	ResourceKey string
	URLs        []string
	Pattern     string
	PatternKind vocab.PatternKind
	Specials    func() []SpecialToken
}

// Name returns the model's primary (first) alias.
func (m Model) Name() string { return m.Aliases[0] }

// registry is the static alias -> Model table. Every known pretrained
// vocabulary is folded in at init time; new providers append here rather
// than through runtime registration, matching the source's const slice.
var registry = buildRegistry()

func buildRegistry() []Model {
	out := make([]Model, 0, len(openaiModels))
	out = append(out, openaiModels...)
	return out
}

// Registry returns every registered Model, primary alias first in each.
// Used by the CLI's "models list" verb (spec.md §6) to print descriptions
// alongside names.
func Registry() []Model {
	out := make([]Model, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds the Model registered under name, checking every alias.
func Lookup(name string) (Model, bool) {
	for _, m := range registry {
		for _, alias := range m.Aliases {
			if alias == name {
				return m, true
			}
		}
	}
	return Model{}, false
}

// ListModels returns every registered model name. If aliases is true every
// alias is listed; otherwise only the primary name of each model.
func ListModels(aliases bool) []string {
	var out []string
	for _, m := range registry {
		if aliases {
			out = append(out, m.Aliases...)
		} else {
			out = append(out, m.Name())
		}
	}
	return out
}

// GetModel resolves name to a Model and loads it into a UnifiedTokenVocab,
// using loader to turn the model's resource key and URLs into a local
// file. Returns wordchipper.ErrResourceNotFound wrapped as an ExternalError
// if name is not registered.
func GetModel(name string, loader ResourceLoader) (*vocab.UnifiedTokenVocab[uint32], error) {
	m, ok := Lookup(name)
	if !ok {
		return nil, &wordchipper.ExternalError{
			Op:  "GetModel",
			Err: fmt.Errorf("%w: %q", wordchipper.ErrResourceNotFound, name),
		}
	}
	return LoadModel(m, loader)
}

// LoadModel materializes a resolved Model into a UnifiedTokenVocab: (1)
// ask loader for a local path, (2) read and base64-decode the span-map
// file, (3) factor the flattened span map back into a merge table, (4)
// attach the model's canonical pattern and special-token map.
func LoadModel(m Model, loader ResourceLoader) (*vocab.UnifiedTokenVocab[uint32], error) {
	path, err := loader.LoadResourcePath(m.ResourceKey, m.URLs)
	if err != nil {
		return nil, &wordchipper.ExternalError{Op: "LoadModel", Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &wordchipper.IoError{Op: "LoadModel", Err: err}
	}
	defer f.Close()

	bytes := vocab.NewByteMapVocab[uint32]()
	spans, err := vocab.ReadSpanMap(bufio.NewReader(f), bytes)
	if err != nil {
		return nil, err
	}
	pairs, err := vocab.BuildPairMapFromSpanMap(spans)
	if err != nil {
		return nil, err
	}

	special := vocab.NewSpecialVocab[uint32]()
	if m.Specials != nil {
		for _, s := range m.Specials() {
			if err := special.Insert(s.Text, s.Token); err != nil {
				return nil, err
			}
		}
	}
	spanning := vocab.NewTextSpanningConfig(m.Pattern, m.PatternKind, special)

	return vocab.NewUnifiedTokenVocab(pairs, spans, spanning)
}
