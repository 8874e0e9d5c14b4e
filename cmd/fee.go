package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bridgekit/api"
)

var (
	feeSymbolFlag     string
	feeGasLimitFlag   uint64
	feeMultiplierFlag float64
)

var feeCmd = &cobra.Command{
	Use:   "fee <source> <destination>",
	Short: "Estimate the fee for relaying a cross-chain message",
	Long: `Ask the gas service API what relaying a message from the source chain
to the destination chain will cost, quoted in the source chain's token.

Examples:
  bridgekit fee Avalanche Fantom
  bridgekit fee Avalanche Fantom --gas-limit 700000 --multiplier 1.2
  bridgekit fee Moonbeam Avalanche --symbol GLMR`,
	Args: cobra.ExactArgs(2),
	RunE: runFee,
}

func runFee(cmd *cobra.Command, args []string) error {
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

	client := api.NewClient(env)
	fee, err := client.EstimateBridgeFee(cmd.Context(), source, destination, api.FeeOptions{
		Symbol:        feeSymbolFlag,
		GasLimit:      feeGasLimitFlag,
		GasMultiplier: feeMultiplierFlag,
	})
	if err != nil {
		return err
	}

	raw, err := decimal.NewFromString(fee)
	if err != nil {
		return fmt.Errorf("failed to parse fee estimate: %w", err)
	}

	symbol := feeSymbolFlag
	if symbol == "" {
		symbol = source.TokenSymbol
	}
	color.New(color.FgCyan, color.Bold).Println("Bridge fee estimate")
	fmt.Printf("  route: %s -> %s\n", source.Name, destination.Name)
	fmt.Printf("  fee:   %s %s  (%s wei)\n", raw.Shift(-18).String(), symbol, raw.String())
	return nil
}

func init() {
	feeCmd.Flags().StringVar(&feeSymbolFlag, "symbol", "", "token symbol to quote the fee in (default: source chain token)")
	feeCmd.Flags().Uint64Var(&feeGasLimitFlag, "gas-limit", 0, "gas limit to forward to the estimator")
	feeCmd.Flags().Float64Var(&feeMultiplierFlag, "multiplier", 0, fmt.Sprintf("gas multiplier (default %v)", api.DefaultGasMultiplier))
}
