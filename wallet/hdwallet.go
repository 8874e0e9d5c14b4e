package wallet

import (
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

// DerivationPath is the account path used for mnemonic-derived wallets,
// the standard first EVM account (m/44'/60'/0'/0/0).
var DerivationPath = accounts.DefaultBaseDerivationPath

// secp256k1N is the order of the secp256k1 curve.
var secp256k1N, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

// hdKey is an extended key in a BIP-32 derivation chain.
type hdKey struct {
	privateKey []byte
	publicKey  []byte
	chainCode  []byte
}

// deriveEthereumKey turns a BIP-39 mnemonic into the ECDSA key at
// DerivationPath.
func deriveEthereumKey(mnemonic string) (*ecdsa.PrivateKey, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, err
	}

	key, err := newMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}
	for _, childNum := range DerivationPath {
		key, err = deriveChild(key, childNum)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child: %w", err)
		}
	}

	privateKey, err := crypto.ToECDSA(key.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to convert to ECDSA key: %w", err)
	}
	return privateKey, nil
}

// newMasterKey creates the BIP-32 master key from a seed.
func newMasterKey(seed []byte) (*hdKey, error) {
	hash := hmacSHA512([]byte("Bitcoin seed"), seed)

	privateKey := hash[:32]
	if !isValidPrivateKey(privateKey) {
		return nil, fmt.Errorf("invalid private key")
	}

	return &hdKey{
		privateKey: privateKey,
		publicKey:  compressPublicKey(privateKey),
		chainCode:  hash[32:],
	}, nil
}

// deriveChild derives one child key from a parent.
func deriveChild(parent *hdKey, childNum uint32) (*hdKey, error) {
	var data []byte
	if childNum >= 0x80000000 {
		// Hardened derivation uses the private key
		data = append([]byte{0x00}, parent.privateKey...)
	} else {
		data = parent.publicKey
	}

	childNumBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(childNumBytes, childNum)
	data = append(data, childNumBytes...)

	hash := hmacSHA512(parent.chainCode, data)
	il := hash[:32]
	ir := hash[32:]

	// child = (parent + IL) mod n
	childInt := new(big.Int).SetBytes(parent.privateKey)
	childInt.Add(childInt, new(big.Int).SetBytes(il))
	childInt.Mod(childInt, secp256k1N)
	if childInt.Sign() == 0 {
		return nil, fmt.Errorf("invalid private key")
	}

	privateKey := make([]byte, 32)
	childInt.FillBytes(privateKey)

	return &hdKey{
		privateKey: privateKey,
		publicKey:  compressPublicKey(privateKey),
		chainCode:  ir,
	}, nil
}

// compressPublicKey computes the 33-byte compressed public key for a
// private key.
func compressPublicKey(privateKey []byte) []byte {
	x, y := crypto.S256().ScalarBaseMult(privateKey)
	out := make([]byte, 33)
	out[0] = 0x02 + byte(y.Bit(0))
	x.FillBytes(out[1:])
	return out
}

// hmacSHA512 computes HMAC-SHA512
func hmacSHA512(key, data []byte) []byte {
	h := hmac.New(sha512.New, key)
	h.Write(data)
	return h.Sum(nil)
}

// isValidPrivateKey checks that a scalar is in the valid secp256k1 range.
func isValidPrivateKey(privateKey []byte) bool {
	if len(privateKey) != 32 {
		return false
	}
	keyInt := new(big.Int).SetBytes(privateKey)
	return keyInt.Sign() != 0 && keyInt.Cmp(secp256k1N) < 0
}
