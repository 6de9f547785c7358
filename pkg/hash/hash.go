package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex-encoded SHA-256 digest of b. The digest identifies
// transcript content: equal bytes always produce equal digests, and any byte
// change produces a different digest. Truth records store it as transcriptHash
// and derived rows carry it as part of their cache key.
func Sum(b []byte) string {
	d := sha256.Sum256(b)
	return hex.EncodeToString(d[:])
}

// SumString is a convenience wrapper for text transcripts.
func SumString(s string) string {
	return Sum([]byte(s))
}
