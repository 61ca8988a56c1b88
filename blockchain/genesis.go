package blockchain

import "time"

// genesisBlock builds the first block of a fresh chain. Its proof and
// previous hash are fixed sentinels rather than solved values, so
// ValidProof is never applied to the genesis block itself.
func genesisBlock() Block {
	return Block{
		Index:        1,
		Timestamp:    float64(time.Now().UnixNano()) / float64(time.Second),
		Transactions: []Transaction{},
		Proof:        GenesisProof,
		PreviousHash: GenesisPreviousHash,
	}
}
