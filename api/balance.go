package api

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/sync/errgroup"

	"bridgekit/chain"
)

// GetBalances queries the native balance of address on every chain and
// returns a map from chain name to the balance as a decimal string in the
// smallest unit. Queries run concurrently, each over its own connection;
// the join is all-or-nothing, so a single failed query fails the whole
// call and no partial map is returned.
func (c *Client) GetBalances(ctx context.Context, chains []chain.Chain, address string) (map[string]string, error) {
	g, ctx := errgroup.WithContext(ctx)

	// one slot per chain; no goroutine touches another's index
	results := make([]string, len(chains))
	for i, ch := range chains {
		i, ch := i, ch
		g.Go(func() error {
			client, err := ethclient.DialContext(ctx, ch.RPC)
			if err != nil {
				return fmt.Errorf("failed to connect to %s: %w", ch.Name, err)
			}
			defer client.Close()

			balance, err := client.BalanceAt(ctx, common.HexToAddress(address), nil)
			if err != nil {
				return fmt.Errorf("failed to fetch %s balance: %w", ch.Name, err)
			}
			results[i] = balance.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	balances := make(map[string]string, len(chains))
	for i, ch := range chains {
		balances[ch.Name] = results[i]
	}
	return balances, nil
}
