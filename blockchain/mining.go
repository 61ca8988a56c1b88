package blockchain

import "context"

const (
	// RewardSender marks a transaction as a mining reward.
	RewardSender = "0"
	// RewardAmount is minted to the miner with every sealed block.
	RewardAmount = 1
)

// Mine solves the proof-of-work puzzle for the ledger's current tip,
// credits the reward to recipient and seals a new block from the pending
// pool. It blocks until a proof is found or ctx is cancelled.
//
// If another block lands between reading the tip and sealing, the sealed
// block links to the newer tip but carries a proof solved against the
// older one, and the chain stops validating past that point. Nodes run a
// single miner, so this stays a theoretical window.
func Mine(ctx context.Context, ledger *Ledger, recipient string) (Block, error) {
	last := ledger.LastBlock()

	proof, err := SolveProof(ctx, last.Proof, ledger.Difficulty())
	if err != nil {
		return Block{}, err
	}

	ledger.NewTransaction(RewardSender, recipient, RewardAmount)

	return ledger.SealBlock(proof, HashBlock(last)), nil
}
