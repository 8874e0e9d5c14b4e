package api

import (
	"context"

	"bridgekit/chain"
)

// BalanceFetcher queries native balances across a set of chains.
type BalanceFetcher interface {
	GetBalances(ctx context.Context, chains []chain.Chain, address string) (map[string]string, error)
}

// AssetTransferService resolves deposit addresses for cross-chain
// transfers.
type AssetTransferService interface {
	GetDepositAddress(ctx context.Context, source, destination chain.Chain, destinationAddress, symbol string) (string, error)
}

// FeeEstimator estimates the relay cost of a cross-chain message.
type FeeEstimator interface {
	EstimateBridgeFee(ctx context.Context, source, destination chain.Chain, opts FeeOptions) (string, error)
}

var (
	_ BalanceFetcher       = (*Client)(nil)
	_ AssetTransferService = (*Client)(nil)
	_ FeeEstimator         = (*Client)(nil)
)

// depositAddressRequest is the wire shape of a deposit-address request.
// Seq is only set for the local relayer.
type depositAddressRequest struct {
	SourceChain        string `json:"sourceChain"`
	DestinationChain   string `json:"destinationChain"`
	DestinationAddress string `json:"destinationAddress"`
	Asset              string `json:"asset"`
	Seq                *int64 `json:"seq,omitempty"`
}

// depositAddressResponse is the wire shape of a deposit-address response.
type depositAddressResponse struct {
	DepositAddress string `json:"depositAddress"`
}

// feeRequest is the wire shape of a gas-fee estimation request.
type feeRequest struct {
	Method            string  `json:"method"`
	SourceChain       string  `json:"sourceChain"`
	DestinationChain  string  `json:"destinationChain"`
	SourceTokenSymbol string  `json:"sourceTokenSymbol"`
	GasLimit          uint64  `json:"gasLimit,omitempty"`
	GasMultiplier     float64 `json:"gasMultiplier"`
}
