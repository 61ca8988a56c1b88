package blockchain

// ValidChain walks candidate pairwise from the genesis block and reports
// whether every adjacent pair upholds both chain invariants: the later
// block's previous hash matches the canonical hash of the earlier one,
// and the later block's proof solves the puzzle posed by the earlier
// proof. The walk short-circuits on the first violation.
//
// The candidate is read but never modified, so it is safe to call against
// a chain reported by an untrusted remote peer; this is the trust boundary
// for consensus. Empty and single-block candidates are trivially valid.
func ValidChain(candidate []Block, difficulty uint) bool {
	for i := 1; i < len(candidate); i++ {
		prev := candidate[i-1]
		cur := candidate[i]

		if cur.PreviousHash != HashBlock(prev) {
			return false
		}
		if !ValidProof(prev.Proof, cur.Proof, difficulty) {
			return false
		}
	}
	return true
}
