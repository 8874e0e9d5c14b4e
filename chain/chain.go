package chain

import (
	"errors"
	"fmt"
)

// Environment selects which Axelar network the helpers talk to.
type Environment string

const (
	// Local targets an axelar-local-dev style network running on this machine
	Local Environment = "local"
	// Testnet targets the public Axelar testnet
	Testnet Environment = "testnet"
)

// ErrInvalidEnvironment is returned when an environment string is not one of
// the recognized values.
var ErrInvalidEnvironment = errors.New("invalid environment")

// DefaultChainNames is the chain set used when a caller does not request
// specific chains.
var DefaultChainNames = []string{"Avalanche", "Fantom"}

// ParseEnvironment validates an environment string. Anything other than
// "local" or "testnet" (including the empty string) fails.
func ParseEnvironment(s string) (Environment, error) {
	switch Environment(s) {
	case Local, Testnet:
		return Environment(s), nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidEnvironment, s, Local, Testnet)
	}
}

// Chain describes a single EVM network connected to Axelar. Values are
// immutable once resolved; they live for the duration of one invocation.
type Chain struct {
	Name        string
	ChainID     int64
	RPC         string
	TokenName   string
	TokenSymbol string
	Gateway     string
	// GasService is the address of the AxelarGasService contract on this
	// chain, flattened from the registry's nested record.
	GasService string
}

// registryRecord is the raw shape of one entry in a chain registry file.
type registryRecord struct {
	Name             string `json:"name"`
	ChainID          int64  `json:"chainId"`
	RPC              string `json:"rpc"`
	TokenName        string `json:"tokenName"`
	TokenSymbol      string `json:"tokenSymbol"`
	Gateway          string `json:"gateway"`
	AxelarGasService struct {
		Address string `json:"address"`
	} `json:"AxelarGasService"`
}

// newChain builds an immutable chain descriptor from a raw registry record
// and the gas-service address extracted from its nested sub-record.
func newChain(rec registryRecord, gasService string) Chain {
	return Chain{
		Name:        rec.Name,
		ChainID:     rec.ChainID,
		RPC:         rec.RPC,
		TokenName:   rec.TokenName,
		TokenSymbol: rec.TokenSymbol,
		Gateway:     rec.Gateway,
		GasService:  gasService,
	}
}
