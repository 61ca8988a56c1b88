package blockchain

const (
	// DefaultDifficulty is the number of leading zero hex characters a
	// block's proof digest must carry. Kept low enough that mining on a
	// laptop finishes in well under a second.
	DefaultDifficulty = 4

	// GenesisProof and GenesisPreviousHash seed the first block of every
	// chain. All nodes share them, so independently started nodes grow
	// chains that can adopt one another during consensus.
	GenesisProof        = 100
	GenesisPreviousHash = "1"
)

// Transaction is the payload carried by blocks. There is no signature and
// no balance accounting; sender and recipient are opaque identifiers.
// Fields are declared in alphabetical order so the JSON encoding of a
// transaction is key-sorted, which the canonical block hash relies on.
type Transaction struct {
	Amount    float64 `json:"amount"`
	Recipient string  `json:"recipient"`
	Sender    string  `json:"sender"`
}

// Block is immutable once appended to a chain. Index is 1-based and
// increases by exactly one per block. PreviousHash is the canonical hash
// of the preceding block, except on the genesis block where it holds the
// sentinel value.
type Block struct {
	Index        uint64        `json:"index"`
	Timestamp    float64       `json:"timestamp"`
	Transactions []Transaction `json:"transactions"`
	Proof        int64         `json:"proof"`
	PreviousHash string        `json:"previous_hash"`
}
