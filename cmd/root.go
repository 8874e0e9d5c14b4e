package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bridgekit/chain"
)

var (
	version = "0.3.1"

	envFlag      string
	registryFlag string
	chainsFlag   []string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bridgekit",
	Short: "Helpers for the Axelar cross-chain network",
	Long: `Bridgekit is a small toolkit for working with the Axelar cross-chain
messaging network from the command line. It resolves chain configuration,
builds an EVM wallet from your environment, checks native balances, derives
deposit addresses for cross-chain transfers, and estimates bridge fees.

Credentials come from the environment: set EVM_PRIVATE_KEY or EVM_MNEMONIC
(the private key wins when both are set).

Examples:
  bridgekit chains                                  # Show resolved chain config
  bridgekit balance                                 # Wallet balances on the default chains
  bridgekit balance --chains Avalanche,Moonbeam     # Pick your chains
  bridgekit deposit-address Avalanche Fantom 0x1234... aUSDC
  bridgekit fee Avalanche Fantom --gas-limit 700000`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "testnet", `target environment ("local" or "testnet")`)
	rootCmd.PersistentFlags().StringVar(&registryFlag, "registry", chain.OverridePath, "path to a chain registry override file")
	rootCmd.PersistentFlags().StringSliceVar(&chainsFlag, "chains", nil, "chain names to operate on (default Avalanche,Fantom)")

	rootCmd.AddCommand(chainsCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(feeCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveEnvironment parses the --env flag.
func resolveEnvironment() (chain.Environment, error) {
	return chain.ParseEnvironment(envFlag)
}

// resolveChains resolves the --chains selection against the registry.
func resolveChains(env chain.Environment) ([]chain.Chain, error) {
	return chain.ResolveFrom(env, registryFlag, chainsFlag)
}

// findChain resolves one chain by exact name.
func findChain(env chain.Environment, name string) (chain.Chain, error) {
	chains, err := chain.ResolveFrom(env, registryFlag, []string{name})
	if err != nil {
		return chain.Chain{}, err
	}
	for _, ch := range chains {
		if ch.Name == name {
			return ch, nil
		}
	}
	return chain.Chain{}, fmt.Errorf("unknown chain: %s", name)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bridgekit v%s\n", version)
	},
}
