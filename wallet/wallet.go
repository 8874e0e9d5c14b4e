package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Environment variable names for the two credential slots.
const (
	PrivateKeyEnv = "EVM_PRIVATE_KEY"
	MnemonicEnv   = "EVM_MNEMONIC"
)

// ErrMissingCredentials is returned when neither credential slot is set.
var ErrMissingCredentials = errors.New("missing credentials: set " + PrivateKeyEnv + " or " + MnemonicEnv)

// Credentials carries the two supported signing-key sources. Populate it
// once at process start (see CredentialsFromEnv) and pass it explicitly;
// nothing in this package reads the environment on its own.
type Credentials struct {
	PrivateKey string
	Mnemonic   string
}

// CredentialsFromEnv reads both credential slots from the process
// environment.
func CredentialsFromEnv() Credentials {
	return Credentials{
		PrivateKey: strings.TrimSpace(os.Getenv(PrivateKeyEnv)),
		Mnemonic:   strings.TrimSpace(os.Getenv(MnemonicEnv)),
	}
}

// Wallet is a resolved EVM signing identity.
type Wallet struct {
	PrivateKey *ecdsa.PrivateKey
	Address    common.Address
}

// Resolve derives a wallet from the given credentials. A raw private key
// takes precedence over a mnemonic when both are set; if neither is set the
// call fails with ErrMissingCredentials. Malformed values surface as errors
// from the underlying derivation routines.
func Resolve(creds Credentials) (*Wallet, error) {
	switch {
	case creds.PrivateKey != "":
		key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(creds.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		return fromKey(key), nil
	case creds.Mnemonic != "":
		key, err := deriveEthereumKey(creds.Mnemonic)
		if err != nil {
			return nil, fmt.Errorf("failed to derive key from mnemonic: %w", err)
		}
		return fromKey(key), nil
	default:
		return nil, ErrMissingCredentials
	}
}

func fromKey(key *ecdsa.PrivateKey) *Wallet {
	return &Wallet{
		PrivateKey: key,
		Address:    ethcrypto.PubkeyToAddress(key.PublicKey),
	}
}
