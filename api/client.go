package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bridgekit/chain"
)

// Default service endpoints per environment.
const (
	// testnet Axelar services
	TestnetTransferAPI = "https://nest-server-testnet.axelar.dev"
	TestnetGasAPI      = "https://testnet.api.gmp.axelarscan.io"

	// axelar-local-dev relayer
	LocalRelayerAPI = "http://localhost:8500"
)

// Client handles calls to the Axelar services and the per-chain RPC nodes.
// The URL fields default to the public endpoints and can be overridden,
// e.g. to point at a test server.
type Client struct {
	HTTPClient *http.Client
	Env        chain.Environment

	TransferURL string
	FeeURL      string
	LocalURL    string
}

// NewClient creates a client for the given environment.
func NewClient(env chain.Environment) *Client {
	return &Client{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Env:         env,
		TransferURL: TestnetTransferAPI,
		FeeURL:      TestnetGasAPI,
		LocalURL:    LocalRelayerAPI,
	}
}

// postJSON sends a POST request with a JSON payload
func (c *Client) postJSON(ctx context.Context, url string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
