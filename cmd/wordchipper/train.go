package main

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/wordchipper"
)

// newTrainCmd preserves the train verb's flag surface (spec.md §6 pins it
// as part of the CLI contract) without building a trainer: the BPE
// trainer is an explicitly out-of-scope collaborator (spec.md §1). Every
// invocation fails with wordchipper.ErrTrainingUnavailable.
func newTrainCmd() *cobra.Command {
	var (
		inputFormat string
		vocabSize   int
		regex       string
	)

	cmd := &cobra.Command{
		Use:   "train FILE...",
		Short: "Train a vocabulary from a corpus (not implemented in this build)",
		Long: `train pins the flag surface of the vocabulary trainer without
implementing it: training a BPE vocabulary from a corpus is a distinct
subsystem the core tokenizer does not build or consume.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = inputFormat
			_ = vocabSize
			_ = regex
			return &wordchipper.ExternalError{Op: "train", Err: wordchipper.ErrTrainingUnavailable}
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input-format", "text", "input corpus format: text or parquet")
	cmd.Flags().IntVar(&vocabSize, "vocab-size", 0, "target vocabulary size")
	cmd.Flags().StringVar(&regex, "regex", "", "word-split pattern to train against")

	return cmd
}
