package api

import (
	"context"
	"encoding/json"
	"fmt"

	"bridgekit/chain"
)

// localDepositSeq is the sequence number the local relayer expects on
// deposit-address requests. Opaque upstream constant.
const localDepositSeq int64 = 8500

// testnetDenominations maps user-facing token symbols to network
// denominations. Symbols without an entry pass through unchanged.
var testnetDenominations = map[string]string{
	"aUSDC": "uausdc",
}

// TranslateSymbol resolves a token symbol to the denomination the asset
// transfer service expects.
func TranslateSymbol(symbol string) string {
	if denom, ok := testnetDenominations[symbol]; ok {
		return denom
	}
	return symbol
}

// GetDepositAddress asks the asset transfer service for a one-time deposit
// address on the source chain. Funds sent there are bridged to
// destinationAddress on the destination chain.
func (c *Client) GetDepositAddress(ctx context.Context, source, destination chain.Chain, destinationAddress, symbol string) (string, error) {
	request := depositAddressRequest{
		SourceChain:        source.Name,
		DestinationChain:   destination.Name,
		DestinationAddress: destinationAddress,
		Asset:              TranslateSymbol(symbol),
	}

	var url string
	switch c.Env {
	case chain.Testnet:
		url = c.TransferURL + "/deposit-address"
	case chain.Local:
		seq := localDepositSeq
		request.Seq = &seq
		url = c.LocalURL + "/deposit-address"
	default:
		return "", fmt.Errorf("%w: %q", chain.ErrInvalidEnvironment, c.Env)
	}

	body, err := c.postJSON(ctx, url, request)
	if err != nil {
		return "", err
	}

	var response depositAddressResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse deposit address response: %w", err)
	}
	return response.DepositAddress, nil
}
