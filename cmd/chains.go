package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"nexus-bridge/ui"
)

var jsonOutput bool

var chainsCmd = &cobra.Command{
	Use:     "chains",
	Aliases: []string{"list-chains", "ls"},
	Short:   "List supported chains and their tokens",
	Long: `List every chain the bridge form offers, with its selectable tokens.
The first token of each chain is the one selected when the chain is picked.

Examples:
  nexus-bridge chains
  nexus-bridge chains --json`,
	Args: cobra.NoArgs,
	RunE: runListChains,
}

func init() {
	rootCmd.AddCommand(chainsCmd)

	chainsCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
}

func runListChains(cmd *cobra.Command, args []string) error {
	listings := ui.Catalogue()
	out := cmd.OutOrStdout()

	if jsonOutput {
		data, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode chains: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	ui.PrintBanner(out)
	ui.PrintCatalogue(out, listings)
	return nil
}
