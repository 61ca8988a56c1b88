// Package consensus reconciles this node's chain with the chains reported
// by its peers, using the longest-valid-chain rule.
package consensus

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"chainforge/blockchain"
	"chainforge/peers"
)

// Fetcher retrieves the chain a peer currently reports. Implementations
// return an error for unreachable peers and non-success responses; the
// resolver treats any error as "skip this peer".
type Fetcher interface {
	FetchChain(ctx context.Context, address string) ([]blockchain.Block, error)
}

// Outcome describes the result of one resolution pass.
type Outcome struct {
	Replaced bool
	Chain    []blockchain.Block
}

// Resolver queries every registered peer and adopts the longest chain
// that passes validation, if any is longer than the local one.
type Resolver struct {
	log      zerolog.Logger
	ledger   *blockchain.Ledger
	registry *peers.Registry
	fetch    Fetcher
}

// NewResolver creates a resolver over the given ledger and peer registry.
func NewResolver(log zerolog.Logger, ledger *blockchain.Ledger, registry *peers.Registry, fetch Fetcher) *Resolver {
	return &Resolver{
		log:      log.With().Str("component", "resolver").Logger(),
		ledger:   ledger,
		registry: registry,
		fetch:    fetch,
	}
}

// Resolve fetches every peer's chain, validates the candidates and
// replaces the local chain with the longest valid one found, atomically.
// Candidates must be strictly longer than both the local chain and any
// earlier candidate to be considered, so ties never cause a replacement
// and, among equally long candidates, the first peer in registry order
// wins. Unreachable peers and invalid chains are skipped, never fatal;
// their reasons are logged and not reported to the caller.
func (r *Resolver) Resolve(ctx context.Context) Outcome {
	addresses := r.registry.Addresses()

	// Fan out one fetch per peer. Failures land in a multierror for the
	// log; a failed slot stays nil and is skipped during the scan.
	candidates := make([][]blockchain.Block, len(addresses))

	var (
		mu   sync.Mutex
		merr *multierror.Error
	)
	g, gctx := errgroup.WithContext(ctx)
	for i, address := range addresses {
		i, address := i, address
		g.Go(func() error {
			chain, err := r.fetch.FetchChain(gctx, address)
			if err != nil {
				mu.Lock()
				merr = multierror.Append(merr, err)
				mu.Unlock()
				return nil
			}
			candidates[i] = chain
			return nil
		})
	}
	_ = g.Wait()

	if err := merr.ErrorOrNil(); err != nil {
		r.log.Debug().Err(err).Msg("some peers skipped during resolution")
	}

	// All peers have been observed; pick the winner in registry order.
	maxLength := r.ledger.Length()
	var best []blockchain.Block
	for i, candidate := range candidates {
		if candidate == nil || len(candidate) <= maxLength {
			continue
		}
		if !blockchain.ValidChain(candidate, r.ledger.Difficulty()) {
			r.log.Debug().Str("peer", addresses[i]).Int("length", len(candidate)).Msg("candidate chain rejected")
			continue
		}
		best = candidate
		maxLength = len(candidate)
	}

	if best == nil {
		return Outcome{Replaced: false, Chain: r.ledger.Chain()}
	}

	replaced := r.ledger.Replace(best)
	if replaced {
		r.log.Info().Int("length", maxLength).Msg("local chain replaced")
	}

	return Outcome{Replaced: replaced, Chain: r.ledger.Chain()}
}
