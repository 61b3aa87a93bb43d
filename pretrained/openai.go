package pretrained

import (
	"github.com/agentstation/wordchipper/spanning"
	"github.com/agentstation/wordchipper/vocab"
)

// SpecialToken pairs a sentinel string with its fixed token id, as
// required by one OpenAI vocabulary's special-token set.
type SpecialToken struct {
	Text  string
	Token uint32
}

// Known OpenAI encoding resource locations. Hashes are recorded in the
// upstream crate this registry was ported from; this port trusts the
// ResourceLoader to verify integrity, so only the URLs are carried here.
var (
	r50kBaseURLs   = []string{"https://openaipublic.blob.core.windows.net/encodings/r50k_base.tiktoken"}
	p50kBaseURLs   = []string{"https://openaipublic.blob.core.windows.net/encodings/p50k_base.tiktoken"}
	cl100kBaseURLs = []string{"https://openaipublic.blob.core.windows.net/encodings/cl100k_base.tiktoken"}
	o200kBaseURLs  = []string{"https://openaipublic.blob.core.windows.net/encodings/o200k_base.tiktoken"}
)

// r50kSpecialTokens is shared by r50k_base and p50k_base.
func r50kSpecialTokens() []SpecialToken {
	return []SpecialToken{{Text: "<|endoftext|>", Token: 50256}}
}

// p50kEditSpecialTokens adds the fill-in-the-middle sentinels p50k_edit
// recognizes on top of the plain p50k_base set.
func p50kEditSpecialTokens() []SpecialToken {
	return []SpecialToken{
		{Text: "<|endoftext|>", Token: 50256},
		{Text: "<|fim_prefix|>", Token: 50281},
		{Text: "<|fim_middle|>", Token: 50282},
		{Text: "<|fim_suffix|>", Token: 50283},
	}
}

func cl100kSpecialTokens() []SpecialToken {
	return []SpecialToken{
		{Text: "<|endoftext|>", Token: 100257},
		{Text: "<|fim_prefix|>", Token: 100258},
		{Text: "<|fim_middle|>", Token: 100259},
		{Text: "<|fim_suffix|>", Token: 100260},
		{Text: "<|endofprompt|>", Token: 100276},
	}
}

func o200kBaseSpecialTokens() []SpecialToken {
	return []SpecialToken{
		{Text: "<|endoftext|>", Token: 199999},
		{Text: "<|endofprompt|>", Token: 200018},
	}
}

// o200kHarmonySpecialTokens extends the o200k_base set with the "harmony"
// role/channel sentinels used by the GPT-5 era chat wire format named in
// spec.md §1 ("a 'harmony' special-token set").
func o200kHarmonySpecialTokens() []SpecialToken {
	return append(o200kBaseSpecialTokens(),
		SpecialToken{Text: "<|start|>", Token: 200006},
		SpecialToken{Text: "<|end|>", Token: 200007},
		SpecialToken{Text: "<|message|>", Token: 200008},
		SpecialToken{Text: "<|channel|>", Token: 200005},
		SpecialToken{Text: "<|constrain|>", Token: 200009},
		SpecialToken{Text: "<|return|>", Token: 200002},
	)
}

// openaiModels is the static alias -> loader table for every OpenAI
// encoding this registry knows how to build, structurally ported from
// original_source's PRETRAINED_HOOKS / ConstPretrainedHook list.
var openaiModels = []Model{
	{
		Aliases:     []string{"r50k_base", "openai/r50k_base"},
		Description: "GPT-2 r50k_base vocabulary",
		ResourceKey: "openai-r50k_base",
		URLs:        r50kBaseURLs,
		Pattern:     spanning.R50kPattern,
		PatternKind: vocab.Fancy,
		Specials:    r50kSpecialTokens,
	},
	{
		Aliases:     []string{"p50k_base", "openai/p50k_base"},
		Description: "GPT-3 p50k_base vocabulary",
		ResourceKey: "openai-p50k_base",
		URLs:        p50kBaseURLs,
		Pattern:     spanning.P50kPattern,
		PatternKind: vocab.Fancy,
		Specials:    r50kSpecialTokens,
	},
	{
		Aliases:     []string{"p50k_edit", "openai/p50k_edit"},
		Description: "GPT-3 p50k_edit vocabulary (adds FIM sentinels)",
		ResourceKey: "openai-p50k_base",
		URLs:        p50kBaseURLs,
		Pattern:     spanning.P50kPattern,
		PatternKind: vocab.Fancy,
		Specials:    p50kEditSpecialTokens,
	},
	{
		Aliases:     []string{"cl100k_base", "openai/cl100k_base"},
		Description: "GPT-3.5 / GPT-4 cl100k_base vocabulary",
		ResourceKey: "openai-cl100k_base",
		URLs:        cl100kBaseURLs,
		Pattern:     spanning.Cl100kPattern,
		PatternKind: vocab.Adaptive,
		Specials:    cl100kSpecialTokens,
	},
	{
		Aliases:     []string{"o200k_base", "openai/o200k_base"},
		Description: "GPT-4o / GPT-5 o200k_base vocabulary",
		ResourceKey: "openai-o200k_base",
		URLs:        o200kBaseURLs,
		Pattern:     spanning.O200kPattern,
		PatternKind: vocab.Fancy,
		Specials:    o200kBaseSpecialTokens,
	},
	{
		Aliases:     []string{"o200k_harmony", "openai/o200k_harmony"},
		Description: "GPT-5 o200k_harmony vocabulary (adds harmony role/channel sentinels)",
		ResourceKey: "openai-o200k_base",
		URLs:        o200kBaseURLs,
		Pattern:     spanning.O200kPattern,
		PatternKind: vocab.Fancy,
		Specials:    o200kHarmonySpecialTokens,
	},
}
