package node_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainforge/node"
)

func TestNew(t *testing.T) {
	n, err := node.New(zerolog.Nop(), node.Config{
		Port:       5000,
		Difficulty: 1,
		SeedPeers:  []string{"localhost:5001", "http://localhost:5002"},
	})
	require.NoError(t, err)

	assert.Len(t, n.Identity(), 32)
	assert.NotContains(t, n.Identity(), "-")
	assert.Equal(t, 1, n.Ledger().Length())
}

func TestNew_DistinctIdentities(t *testing.T) {
	a, err := node.New(zerolog.Nop(), node.Config{Difficulty: 1})
	require.NoError(t, err)
	b, err := node.New(zerolog.Nop(), node.Config{Difficulty: 1})
	require.NoError(t, err)

	assert.NotEqual(t, a.Identity(), b.Identity())
}

func TestNew_InvalidSeedPeer(t *testing.T) {
	_, err := node.New(zerolog.Nop(), node.Config{
		Difficulty: 1,
		SeedPeers:  []string{""},
	})

	assert.Error(t, err)
}
