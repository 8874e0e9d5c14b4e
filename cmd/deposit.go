package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridgekit/api"
)

var depositCmd = &cobra.Command{
	Use:   "deposit-address <source> <destination> <dest-address> <symbol>",
	Short: "Derive a cross-chain deposit address",
	Long: `Ask the asset transfer service for a one-time deposit address on the
source chain. Anything sent there is bridged to the destination address on
the destination chain.

Examples:
  bridgekit deposit-address Avalanche Fantom 0x1234... aUSDC
  bridgekit deposit-address Ethereum Avalanche 0x1234... aUSDC --env local`,
	Args: cobra.ExactArgs(4),
	RunE: runDeposit,
}

func runDeposit(cmd *cobra.Command, args []string) error {
	env, err := resolveEnvironment()
	if err != nil {
		return err
	}
	source, err := findChain(env, args[0])
	if err != nil {
		return err
	}
	destination, err := findChain(env, args[1])
	if err != nil {
		return err
	}
	destinationAddress, symbol := args[2], args[3]

	client := api.NewClient(env)
	depositAddress, err := client.GetDepositAddress(cmd.Context(), source, destination, destinationAddress, symbol)
	if err != nil {
		return err
	}

	color.New(color.FgCyan, color.Bold).Println("Deposit address")
	fmt.Printf("  route:   %s -> %s\n", source.Name, destination.Name)
	fmt.Printf("  asset:   %s\n", api.TranslateSymbol(symbol))
	fmt.Printf("  send to: %s\n", depositAddress)
	return nil
}
