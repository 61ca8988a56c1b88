package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"chainforge/blockchain"
)

// Client fetches chains from peer nodes over their HTTP API. It satisfies
// the resolver's Fetcher interface.
type Client struct {
	http *http.Client
}

// NewClient creates a chain-fetching client with the given per-request
// timeout. A zero timeout means no timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// FetchChain retrieves the chain reported by the peer at address
// (host:port). Transport failures, non-success statuses and undecodable
// bodies all come back as errors, which the resolver maps to "skip".
func (c *Client) FetchChain(ctx context.Context, address string) ([]blockchain.Block, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://%s/chain", address), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create chain request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch chain from %s: %w", address, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("peer %s returned status %d", address, res.StatusCode)
	}

	var body ChainResponse
	err = json.NewDecoder(res.Body).Decode(&body)
	if err != nil {
		return nil, fmt.Errorf("could not decode chain from %s: %w", address, err)
	}

	return body.Chain, nil
}
