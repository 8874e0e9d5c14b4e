package chain

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// OverridePath is where Resolve looks for a registry file before falling
// back to the bundled default. Relative to the working directory.
const OverridePath = "testnet-chains.json"

//go:embed testnet.json
var defaultTestnetRegistry []byte

// Resolve returns the chain descriptors for an environment, using the
// default override path. See ResolveFrom.
func Resolve(env Environment, names []string) ([]Chain, error) {
	return ResolveFrom(env, OverridePath, names)
}

// ResolveFrom returns the chain descriptors for an environment.
//
// For Local the fixture list is returned unfiltered. For Testnet the
// registry at registryPath (or the bundled default if that file does not
// exist) is filtered down to the entries whose name exactly matches one of
// the requested names. Matching is case-sensitive and a requested name with
// no registry entry is silently omitted. A nil or empty names slice selects
// DefaultChainNames.
func ResolveFrom(env Environment, registryPath string, names []string) ([]Chain, error) {
	switch env {
	case Local:
		return LocalChains(), nil
	case Testnet:
		// fall through below
	default:
		return nil, fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidEnvironment, env, Local, Testnet)
	}

	records, err := loadRegistry(registryPath)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		names = DefaultChainNames
	}
	requested := make(map[string]bool, len(names))
	for _, name := range names {
		requested[name] = true
	}

	chains := make([]Chain, 0, len(names))
	for _, rec := range records {
		if !requested[rec.Name] {
			continue
		}
		chains = append(chains, newChain(rec, rec.AxelarGasService.Address))
	}
	return chains, nil
}

// loadRegistry reads a registry file, preferring the on-disk override and
// falling back to the registry bundled into the binary.
func loadRegistry(path string) ([]registryRecord, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		data = defaultTestnetRegistry
	} else if err != nil {
		return nil, fmt.Errorf("failed to read chain registry: %w", err)
	}

	var records []registryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse chain registry: %w", err)
	}
	return records, nil
}
