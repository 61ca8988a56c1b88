package blockchain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// cancelCheckInterval is how many candidate proofs the solver tries
// between checks of its context.
const cancelCheckInterval = 4096

// ValidProof reports whether proof solves the puzzle posed by lastProof:
// the hex digest of the two decimal-rendered integers concatenated must
// start with difficulty '0' characters. This predicate is the single
// source of truth for proof validity; the solver and every chain
// validator, local or remote, go through it.
func ValidProof(lastProof, proof int64, difficulty uint) bool {
	guess := strconv.FormatInt(lastProof, 10) + strconv.FormatInt(proof, 10)
	digest := sha256.Sum256([]byte(guess))
	encoded := hex.EncodeToString(digest[:])

	if difficulty > uint(len(encoded)) {
		return false
	}
	for i := uint(0); i < difficulty; i++ {
		if encoded[i] != '0' {
			return false
		}
	}
	return true
}

// SolveProof searches for a proof satisfying ValidProof against lastProof.
// The search is a linear increment-and-test scan with no upper bound; at
// difficulty 4 it takes around 65536 attempts on average. The context is
// the only way to interrupt it.
func SolveProof(ctx context.Context, lastProof int64, difficulty uint) (int64, error) {
	for proof := int64(0); ; proof++ {
		if proof%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			default:
			}
		}
		if ValidProof(lastProof, proof, difficulty) {
			return proof, nil
		}
	}
}
