package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bridgekit/chain"
)

// feeServer fakes the gas service API and records the last request.
func feeServer(t *testing.T, lastReq *feeRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(lastReq); err != nil {
			t.Errorf("decode request: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, `"575000000000000000"`)
	}))
}

func TestEstimateBridgeFeeDefaults(t *testing.T) {
	var got feeRequest
	server := feeServer(t, &got)
	defer server.Close()

	client := NewClient(chain.Testnet)
	client.FeeURL = server.URL

	fee, err := client.EstimateBridgeFee(context.Background(), avalanche, fantom, FeeOptions{})
	if err != nil {
		t.Fatalf("EstimateBridgeFee: %v", err)
	}
	if fee != "575000000000000000" {
		t.Fatalf("fee = %q", fee)
	}
	if got.Method != "estimateGasFee" {
		t.Fatalf("method = %q", got.Method)
	}
	if got.SourceChain != "Avalanche" || got.DestinationChain != "Fantom" {
		t.Fatalf("route = %s -> %s", got.SourceChain, got.DestinationChain)
	}
	if got.SourceTokenSymbol != "AVAX" {
		t.Fatalf("symbol = %q, want source chain default AVAX", got.SourceTokenSymbol)
	}
	if got.GasMultiplier != 1.5 {
		t.Fatalf("multiplier = %v, want 1.5", got.GasMultiplier)
	}
	if got.GasLimit != 0 {
		t.Fatalf("gas limit = %d, want omitted", got.GasLimit)
	}
}

func TestEstimateBridgeFeeOverrides(t *testing.T) {
	var got feeRequest
	server := feeServer(t, &got)
	defer server.Close()

	client := NewClient(chain.Testnet)
	client.FeeURL = server.URL

	_, err := client.EstimateBridgeFee(context.Background(), avalanche, fantom, FeeOptions{
		Symbol:        "aUSDC",
		GasLimit:      700000,
		GasMultiplier: 1.2,
	})
	if err != nil {
		t.Fatalf("EstimateBridgeFee: %v", err)
	}
	if got.SourceTokenSymbol != "aUSDC" {
		t.Fatalf("symbol = %q", got.SourceTokenSymbol)
	}
	if got.GasLimit != 700000 {
		t.Fatalf("gas limit = %d", got.GasLimit)
	}
	if got.GasMultiplier != 1.2 {
		t.Fatalf("multiplier = %v", got.GasMultiplier)
	}
}

func TestEstimateBridgeFeeServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unsupported chain", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(chain.Testnet)
	client.FeeURL = server.URL

	if _, err := client.EstimateBridgeFee(context.Background(), avalanche, fantom, FeeOptions{}); err == nil {
		t.Fatal("expected service error to propagate")
	}
}
