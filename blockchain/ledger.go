package blockchain

import (
	"sync"
	"time"
)

// Ledger owns one chain and the pool of transactions waiting to be sealed
// into its next block. All methods are safe for concurrent use; sealing
// and chain replacement are atomic with respect to every other operation.
type Ledger struct {
	mu         sync.RWMutex
	difficulty uint
	blocks     []Block
	pending    []Transaction
}

// NewLedger creates a ledger seeded with a genesis block. A zero
// difficulty falls back to DefaultDifficulty.
func NewLedger(difficulty uint) *Ledger {
	if difficulty == 0 {
		difficulty = DefaultDifficulty
	}
	return &Ledger{
		difficulty: difficulty,
		blocks:     []Block{genesisBlock()},
	}
}

// Difficulty returns the proof-of-work difficulty this ledger validates
// and mines against.
func (l *Ledger) Difficulty() uint {
	return l.difficulty
}

// NewTransaction queues a transaction for inclusion in the next sealed
// block and returns the index that block will have. Sender, recipient and
// amount are accepted as given; the ledger does not interpret them.
func (l *Ledger) NewTransaction(sender, recipient string, amount float64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = append(l.pending, Transaction{
		Amount:    amount,
		Recipient: recipient,
		Sender:    sender,
	})

	return l.blocks[len(l.blocks)-1].Index + 1
}

// SealBlock bakes the pending pool into a new block carrying the given
// proof, appends it to the chain and empties the pool, all as one step.
// An empty previousHash means "link to the current tip"; callers that
// hashed the tip themselves before solving can pass the value through.
func (l *Ledger) SealBlock(proof int64, previousHash string) Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	last := l.blocks[len(l.blocks)-1]
	if previousHash == "" {
		previousHash = HashBlock(last)
	}

	block := Block{
		Index:        last.Index + 1,
		Timestamp:    float64(time.Now().UnixNano()) / float64(time.Second),
		Transactions: l.pending,
		Proof:        proof,
		PreviousHash: previousHash,
	}

	l.pending = nil
	l.blocks = append(l.blocks, block)

	return block
}

// LastBlock returns the current tip of the chain.
func (l *Ledger) LastBlock() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.blocks[len(l.blocks)-1]
}

// Length returns the number of blocks in the chain, genesis included.
func (l *Ledger) Length() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.blocks)
}

// Pending returns a copy of the transactions not yet sealed into a block.
func (l *Ledger) Pending() []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	pending := make([]Transaction, len(l.pending))
	copy(pending, l.pending)
	return pending
}

// Chain returns a snapshot of the full chain. The snapshot is detached
// from the ledger, so callers may hold or modify it freely.
func (l *Ledger) Chain() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return copyChain(l.blocks)
}

// Replace swaps in candidate as the new chain if it is strictly longer
// than the current one, and reports whether the swap happened. The length
// check runs under the same lock as the swap, so a chain that grew since
// the caller inspected it is never shortened. Validity of the candidate is
// the caller's responsibility.
func (l *Ledger) Replace(candidate []Block) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(candidate) <= len(l.blocks) {
		return false
	}

	l.blocks = copyChain(candidate)
	return true
}

func copyChain(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	copy(out, blocks)
	for i := range out {
		txs := make([]Transaction, len(out[i].Transactions))
		copy(txs, out[i].Transactions)
		out[i].Transactions = txs
	}
	return out
}
