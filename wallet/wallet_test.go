package wallet

import (
	"errors"
	"testing"
)

// The standard development mnemonic; account 0 at m/44'/60'/0'/0/0.
const (
	testMnemonic        = "test test test test test test test test test test test junk"
	testMnemonicAddress = "0xf39Fd6e5aEA63F94721636f8fC8a68F0dC4BbE7B"

	testPrivateKey        = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testPrivateKeyAddress = "0xf39Fd6e5aEA63F94721636f8fC8a68F0dC4BbE7B"

	otherPrivateKey        = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	otherPrivateKeyAddress = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

func TestResolveMissingCredentials(t *testing.T) {
	if _, err := Resolve(Credentials{}); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("Resolve error = %v, want ErrMissingCredentials", err)
	}
}

func TestResolveFromPrivateKey(t *testing.T) {
	w, err := Resolve(Credentials{PrivateKey: testPrivateKey})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := w.Address.Hex(); got != testPrivateKeyAddress {
		t.Fatalf("address = %s, want %s", got, testPrivateKeyAddress)
	}

	// the 0x prefix is optional
	w, err = Resolve(Credentials{PrivateKey: testPrivateKey[2:]})
	if err != nil {
		t.Fatalf("Resolve without prefix: %v", err)
	}
	if got := w.Address.Hex(); got != testPrivateKeyAddress {
		t.Fatalf("address = %s, want %s", got, testPrivateKeyAddress)
	}
}

func TestResolveFromMnemonic(t *testing.T) {
	w, err := Resolve(Credentials{Mnemonic: testMnemonic})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := w.Address.Hex(); got != testMnemonicAddress {
		t.Fatalf("address = %s, want %s", got, testMnemonicAddress)
	}
	if w.PrivateKey == nil {
		t.Fatal("wallet has no private key")
	}
}

func TestResolvePrivateKeyPrecedence(t *testing.T) {
	// when both slots are set the private key wins
	w, err := Resolve(Credentials{
		PrivateKey: otherPrivateKey,
		Mnemonic:   testMnemonic,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := w.Address.Hex(); got != otherPrivateKeyAddress {
		t.Fatalf("address = %s, want private key address %s", got, otherPrivateKeyAddress)
	}
}

func TestResolveMalformedInputs(t *testing.T) {
	if _, err := Resolve(Credentials{PrivateKey: "not-hex"}); err == nil {
		t.Fatal("expected error for malformed private key")
	}
	if _, err := Resolve(Credentials{Mnemonic: "definitely not a valid phrase"}); err == nil {
		t.Fatal("expected error for malformed mnemonic")
	}
	// malformed inputs are not the missing-credentials case
	if _, err := Resolve(Credentials{Mnemonic: "bad"}); errors.Is(err, ErrMissingCredentials) {
		t.Fatal("malformed mnemonic reported as missing credentials")
	}
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv(PrivateKeyEnv, "  "+testPrivateKey+"  ")
	t.Setenv(MnemonicEnv, testMnemonic)

	creds := CredentialsFromEnv()
	if creds.PrivateKey != testPrivateKey {
		t.Fatalf("PrivateKey = %q", creds.PrivateKey)
	}
	if creds.Mnemonic != testMnemonic {
		t.Fatalf("Mnemonic = %q", creds.Mnemonic)
	}

	t.Setenv(PrivateKeyEnv, "")
	t.Setenv(MnemonicEnv, "")
	if _, err := Resolve(CredentialsFromEnv()); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("Resolve error = %v, want ErrMissingCredentials", err)
	}
}
