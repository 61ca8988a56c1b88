package blockchain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashBlock computes the canonical hex digest of a block. The block's
// fields are rendered into a map before marshalling because encoding/json
// sorts map keys, which pins the byte representation regardless of how the
// block was constructed. Every validity check in the system depends on two
// structurally identical blocks hashing identically, on every node.
func HashBlock(block Block) string {
	fields := map[string]interface{}{
		"index":         block.Index,
		"timestamp":     block.Timestamp,
		"transactions":  block.Transactions,
		"proof":         block.Proof,
		"previous_hash": block.PreviousHash,
	}

	// Marshalling a map of JSON-encodable values cannot fail.
	data, _ := json.Marshal(fields)

	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}
