package blockchain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chainforge/blockchain"
)

func testBlock() blockchain.Block {
	return blockchain.Block{
		Index:     2,
		Timestamp: 1693400000.123456,
		Transactions: []blockchain.Transaction{
			{Amount: 5, Recipient: "bob", Sender: "alice"},
			{Amount: 1, Recipient: "node1", Sender: "0"},
		},
		Proof:        35293,
		PreviousHash: "9b2f",
	}
}

func TestHashBlock_Deterministic(t *testing.T) {
	block := testBlock()

	first := blockchain.HashBlock(block)
	second := blockchain.HashBlock(block)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)

	// A separately constructed but structurally identical block hashes
	// to the same digest.
	assert.Equal(t, first, blockchain.HashBlock(testBlock()))
}

func TestHashBlock_FieldChangesDigest(t *testing.T) {
	reference := blockchain.HashBlock(testBlock())

	tests := []struct {
		name   string
		modify func(*blockchain.Block)
	}{
		{
			name:   "index",
			modify: func(b *blockchain.Block) { b.Index++ },
		},
		{
			name:   "timestamp",
			modify: func(b *blockchain.Block) { b.Timestamp++ },
		},
		{
			name:   "transaction amount",
			modify: func(b *blockchain.Block) { b.Transactions[0].Amount++ },
		},
		{
			name:   "transaction recipient",
			modify: func(b *blockchain.Block) { b.Transactions[1].Recipient = "mallory" },
		},
		{
			name:   "extra transaction",
			modify: func(b *blockchain.Block) { b.Transactions = append(b.Transactions, blockchain.Transaction{Amount: 1}) },
		},
		{
			name:   "proof",
			modify: func(b *blockchain.Block) { b.Proof++ },
		},
		{
			name:   "previous hash",
			modify: func(b *blockchain.Block) { b.PreviousHash = "deadbeef" },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			block := testBlock()
			test.modify(&block)

			assert.NotEqual(t, reference, blockchain.HashBlock(block))
		})
	}
}
