// Package escrow implements the escrow controller: deterministic sub-account
// derivation per manuscript, fee deposit at submission, and exactly-once
// settlement at finalization.
package escrow

import (
	"crypto/sha256"
	"encoding/hex"
)

// Seed is the fixed label mixed into every escrow derivation.
const Seed = "escrow"

// DeriveID maps a manuscript to its escrow identity: a hash of the fixed seed,
// the manuscript ID, and a nonce byte. The function is pure, so any component
// can recompute the address without a lookup table; the nonce resolves the
// (practically unreachable) collision on first creation.
func DeriveID(manuscriptID string, nonce uint8) string {
	h := sha256.New()
	h.Write([]byte(Seed))
	h.Write([]byte(manuscriptID))
	h.Write([]byte{nonce})
	return hex.EncodeToString(h.Sum(nil))
}
