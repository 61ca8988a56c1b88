package mocks

import (
	"context"
	"testing"

	"chainforge/blockchain"
)

// Fetcher mocks the consensus resolver's chain fetcher.
type Fetcher struct {
	FetchChainFunc func(ctx context.Context, address string) ([]blockchain.Block, error)
}

// BaselineFetcher returns a fetcher whose calls all succeed with an empty
// chain. Tests override the fields they care about.
func BaselineFetcher(t *testing.T) *Fetcher {
	t.Helper()

	f := Fetcher{
		FetchChainFunc: func(context.Context, string) ([]blockchain.Block, error) {
			return []blockchain.Block{}, nil
		},
	}

	return &f
}

func (f *Fetcher) FetchChain(ctx context.Context, address string) ([]blockchain.Block, error) {
	return f.FetchChainFunc(ctx, address)
}
