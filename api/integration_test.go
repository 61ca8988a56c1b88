package api_test

import (
	"context"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainforge/api"
	"chainforge/blockchain"
	"chainforge/consensus"
	"chainforge/peers"
)

// liveNode is a full node surface mounted on an httptest server, so two
// replicas can talk to each other over real HTTP.
type liveNode struct {
	ledger   *blockchain.Ledger
	registry *peers.Registry
	resolver *consensus.Resolver
	address  string
}

func startLiveNode(t *testing.T, identity string) *liveNode {
	t.Helper()

	ledger := blockchain.NewLedger(1)
	registry := peers.NewRegistry()
	resolver := consensus.NewResolver(zerolog.Nop(), ledger, registry, api.NewClient(time.Second))
	ctrl := api.NewController(zerolog.Nop(), ledger, registry, resolver, identity)

	srv := httptest.NewServer(api.NewServer(zerolog.Nop(), ctrl))
	t.Cleanup(srv.Close)

	parsed, err := url.Parse(srv.URL)
	require.NoError(t, err)

	return &liveNode{
		ledger:   ledger,
		registry: registry,
		resolver: resolver,
		address:  parsed.Host,
	}
}

func TestTwoNodes_LongestChainAdoption(t *testing.T) {
	alpha := startLiveNode(t, "alpha")
	bravo := startLiveNode(t, "bravo")

	// Alpha mines ahead of bravo.
	for i := 0; i < 3; i++ {
		_, err := blockchain.Mine(context.Background(), alpha.ledger, "alpha")
		require.NoError(t, err)
	}
	_, err := blockchain.Mine(context.Background(), bravo.ledger, "bravo")
	require.NoError(t, err)

	require.Equal(t, 4, alpha.ledger.Length())
	require.Equal(t, 2, bravo.ledger.Length())

	// Bravo learns about alpha and resolves over live HTTP.
	require.NoError(t, bravo.registry.Register(alpha.address))
	outcome := bravo.resolver.Resolve(context.Background())

	assert.True(t, outcome.Replaced)
	assert.Equal(t, 4, bravo.ledger.Length())
	assert.Equal(t, alpha.ledger.Chain(), bravo.ledger.Chain())
	assert.True(t, blockchain.ValidChain(bravo.ledger.Chain(), 1))

	// Alpha has nothing to gain from bravo's shorter fork.
	require.NoError(t, alpha.registry.Register(bravo.address))
	outcome = alpha.resolver.Resolve(context.Background())

	assert.False(t, outcome.Replaced)
	assert.Equal(t, 4, alpha.ledger.Length())
}

func TestTwoNodes_TamperedChainNotAdopted(t *testing.T) {
	alpha := startLiveNode(t, "alpha")
	bravo := startLiveNode(t, "bravo")

	for i := 0; i < 3; i++ {
		_, err := blockchain.Mine(context.Background(), alpha.ledger, "alpha")
		require.NoError(t, err)
	}

	// Corrupt alpha's chain by splicing in a forged proof.
	forged := alpha.ledger.Chain()
	forged[2].Proof++
	tampered := make([]blockchain.Block, len(forged)+1)
	copy(tampered, forged)
	tampered[len(forged)] = forged[len(forged)-1]
	require.True(t, alpha.ledger.Replace(tampered))

	require.NoError(t, bravo.registry.Register(alpha.address))
	outcome := bravo.resolver.Resolve(context.Background())

	assert.False(t, outcome.Replaced)
	assert.Equal(t, 1, bravo.ledger.Length())
}
