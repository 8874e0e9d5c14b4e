package chain

import "fmt"

// localRelayerBase is the base URL of the axelar-local-dev relayer; each
// chain is exposed as a sub-path of the same listener.
const localRelayerBase = "http://localhost:8500"

// localChainNames mirrors the chains axelar-local-dev boots by default.
var localChainNames = []struct {
	name   string
	symbol string
}{
	{"Moonbeam", "GLMR"},
	{"Avalanche", "AVAX"},
	{"Fantom", "FTM"},
	{"Ethereum", "ETH"},
	{"Polygon", "MATIC"},
}

// LocalChains returns the fixture used when developing against a local
// Axelar network. The list is returned unfiltered; contract addresses are
// the deterministic ones produced by the local deployer.
func LocalChains() []Chain {
	chains := make([]Chain, 0, len(localChainNames))
	for i, def := range localChainNames {
		chains = append(chains, Chain{
			Name:        def.name,
			ChainID:     int64(2500 + i),
			RPC:         fmt.Sprintf("%s/%d", localRelayerBase, i),
			TokenName:   def.name,
			TokenSymbol: def.symbol,
			Gateway:     "0x013459EC3E8Aeced878C5C4bFfe126A366cd19E9",
			GasService:  "0x28f8B50E1Be6152da35e923602a2641491E71Ed8",
		})
	}
	return chains
}
