package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"chainforge/blockchain"
)

// GrowChain seals count blocks onto the ledger, each carrying one filler
// transaction, and returns the resulting chain snapshot. Proofs are solved
// for real, so use a low-difficulty ledger to keep tests fast.
func GrowChain(t *testing.T, ledger *blockchain.Ledger, count int) []blockchain.Block {
	t.Helper()

	for i := 0; i < count; i++ {
		proof, err := blockchain.SolveProof(context.Background(), ledger.LastBlock().Proof, ledger.Difficulty())
		require.NoError(t, err)

		ledger.NewTransaction("alice", "bob", float64(i+1))
		ledger.SealBlock(proof, "")
	}

	return ledger.Chain()
}
