package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "Show the resolved chain configuration",
	Long: `Show the chain descriptors the other commands would operate on,
after applying --env, --chains and any registry override file.

Examples:
  bridgekit chains
  bridgekit chains --env local
  bridgekit chains --chains Avalanche,Ethereum --registry ./my-chains.json`,
	Args: cobra.NoArgs,
	RunE: runChains,
}

func runChains(cmd *cobra.Command, args []string) error {
	env, err := resolveEnvironment()
	if err != nil {
		return err
	}
	chains, err := resolveChains(env)
	if err != nil {
		return err
	}

	color.New(color.FgCyan, color.Bold).Printf("Chains (%s)\n\n", env)
	if len(chains) == 0 {
		fmt.Println("no chains matched the requested names")
		return nil
	}
	for _, ch := range chains {
		color.New(color.Bold).Printf("%s (chain id %d)\n", ch.Name, ch.ChainID)
		fmt.Printf("  rpc:         %s\n", ch.RPC)
		fmt.Printf("  token:       %s\n", ch.TokenSymbol)
		fmt.Printf("  gateway:     %s\n", ch.Gateway)
		fmt.Printf("  gas service: %s\n", ch.GasService)
		fmt.Println()
	}
	return nil
}
