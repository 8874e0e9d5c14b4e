package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bridgekit/api"
	"bridgekit/wallet"
)

var balanceAddressFlag string

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Check native balances across chains",
	Long: `Check the native balance of an address on every selected chain.
Without --address the address is derived from EVM_PRIVATE_KEY or
EVM_MNEMONIC. All chains are queried concurrently; if any single query
fails the whole command fails.

Examples:
  bridgekit balance
  bridgekit balance --chains Avalanche,Moonbeam
  bridgekit balance --address 0x1234... --env local`,
	Args: cobra.NoArgs,
	RunE: runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	env, err := resolveEnvironment()
	if err != nil {
		return err
	}
	chains, err := resolveChains(env)
	if err != nil {
		return err
	}
	if len(chains) == 0 {
		return fmt.Errorf("no chains matched the requested names")
	}

	address := balanceAddressFlag
	if address == "" {
		w, err := wallet.Resolve(wallet.CredentialsFromEnv())
		if err != nil {
			return err
		}
		address = w.Address.Hex()
	}

	client := api.NewClient(env)

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(fmt.Sprintf("querying %d chains", len(chains))),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				bar.Add(1)
				time.Sleep(100 * time.Millisecond)
			}
		}
	}()

	balances, err := client.GetBalances(cmd.Context(), chains, address)
	close(done)
	bar.Finish()
	if err != nil {
		return err
	}

	color.New(color.FgCyan, color.Bold).Printf("Balances for %s (%s)\n\n", address, env)
	for _, ch := range chains {
		raw, err := decimal.NewFromString(balances[ch.Name])
		if err != nil {
			return fmt.Errorf("failed to parse %s balance: %w", ch.Name, err)
		}
		// native EVM tokens carry 18 decimals
		human := raw.Shift(-18)
		color.New(color.Bold).Printf("%-12s", ch.Name)
		fmt.Printf(" %s %s  (%s wei)\n", human.String(), ch.TokenSymbol, raw.String())
	}
	return nil
}

func init() {
	balanceCmd.Flags().StringVar(&balanceAddressFlag, "address", "", "address to query instead of the wallet address")
}
