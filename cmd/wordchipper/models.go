package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/wordchipper/pretrained"
)

func newModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Inspect the pretrained model registry",
	}
	cmd.AddCommand(newModelsListCmd())
	return cmd
}

func newModelsListCmd() *cobra.Command {
	var showAliases bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print available pretrained model names and descriptions",
		Example: `  # List primary model names
  wordchipper models list

  # List every alias
  wordchipper models list --aliases`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range pretrained.Registry() {
				if showAliases {
					fmt.Printf("%-20s %s\n", strings.Join(m.Aliases, ", "), m.Description)
					continue
				}
				fmt.Printf("%-20s %s\n", m.Name(), m.Description)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showAliases, "aliases", false, "show every alias, not just the primary name")
	return cmd
}
