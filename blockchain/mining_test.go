package blockchain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainforge/blockchain"
)

func TestMine(t *testing.T) {
	ledger := blockchain.NewLedger(1)
	ledger.NewTransaction("alice", "bob", 3)

	block, err := blockchain.Mine(context.Background(), ledger, "node1")
	require.NoError(t, err)

	assert.Equal(t, uint64(2), block.Index)
	assert.Empty(t, ledger.Pending())

	// The queued transaction comes first, the mining reward last.
	require.Len(t, block.Transactions, 2)
	assert.Equal(t, blockchain.Transaction{Amount: 3, Recipient: "bob", Sender: "alice"}, block.Transactions[0])
	assert.Equal(t, blockchain.Transaction{Amount: blockchain.RewardAmount, Recipient: "node1", Sender: blockchain.RewardSender}, block.Transactions[1])

	assert.True(t, blockchain.ValidChain(ledger.Chain(), ledger.Difficulty()))
}

func TestMine_RepeatedSealingStaysValid(t *testing.T) {
	ledger := blockchain.NewLedger(1)

	for i := 0; i < 3; i++ {
		_, err := blockchain.Mine(context.Background(), ledger, "node1")
		require.NoError(t, err)
	}

	assert.Equal(t, 4, ledger.Length())
	assert.True(t, blockchain.ValidChain(ledger.Chain(), ledger.Difficulty()))
}

func TestMine_Cancelled(t *testing.T) {
	ledger := blockchain.NewLedger(16)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := blockchain.Mine(ctx, ledger, "node1")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, ledger.Length())
}
