package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wordchipper",
	Short: "A tiktoken-compatible byte-pair-encoding tokenizer CLI",
	Long: `wordchipper streams text through a tiktoken-compatible BPE tokenizer.

It supports every pretrained vocabulary family the core recognizes
(r50k, p50k, cl100k, o200k, and the o200k_harmony special-token variant).

Common operations:
  cat         Encode or decode a stream of text / token ids
  models list Print the available pretrained model names
  train       Flag surface for vocabulary training (out of core scope)`,
	Example: `  # Encode text
  echo "hello world" | wordchipper cat --model cl100k_base --encode

  # Decode token ids
  echo "15339 1917" | wordchipper cat --model cl100k_base --decode

  # List available pretrained models
  wordchipper models list`,
	SilenceUsage: true,
}

// versionCmd prints build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wordchipper version %s\n", version)
		if commit != "none" {
			fmt.Printf("  commit: %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Printf("  built:  %s\n", buildDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newCatCmd())
	rootCmd.AddCommand(newModelsCmd())
	rootCmd.AddCommand(newTrainCmd())
}
