package api

import (
	"context"
	"encoding/json"
	"fmt"

	"bridgekit/chain"
)

// DefaultGasMultiplier is applied to estimates when the caller does not
// override it.
const DefaultGasMultiplier = 1.5

// FeeOptions tunes a bridge-fee estimate. The zero value asks for the
// source chain's native token with the default multiplier.
type FeeOptions struct {
	// Symbol overrides the token the fee is quoted in; defaults to the
	// source chain's TokenSymbol.
	Symbol string
	// GasLimit is forwarded to the estimator when non-zero.
	GasLimit uint64
	// GasMultiplier scales the estimate; defaults to DefaultGasMultiplier.
	GasMultiplier float64
}

// EstimateBridgeFee asks the gas service API what relaying a message from
// source to destination will cost, returned as a decimal string in the
// source token's smallest unit. No fee math happens locally.
func (c *Client) EstimateBridgeFee(ctx context.Context, source, destination chain.Chain, opts FeeOptions) (string, error) {
	symbol := opts.Symbol
	if symbol == "" {
		symbol = source.TokenSymbol
	}
	multiplier := opts.GasMultiplier
	if multiplier == 0 {
		multiplier = DefaultGasMultiplier
	}

	request := feeRequest{
		Method:            "estimateGasFee",
		SourceChain:       source.Name,
		DestinationChain:  destination.Name,
		SourceTokenSymbol: symbol,
		GasLimit:          opts.GasLimit,
		GasMultiplier:     multiplier,
	}

	body, err := c.postJSON(ctx, c.FeeURL, request)
	if err != nil {
		return "", err
	}

	// the gas API answers with a bare JSON string
	var fee string
	if err := json.Unmarshal(body, &fee); err != nil {
		return "", fmt.Errorf("failed to parse fee response: %w", err)
	}
	return fee, nil
}
