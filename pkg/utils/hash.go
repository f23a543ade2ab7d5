package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes the SHA-256 hash of a string, hex encoded.
// Used for render cache keys.
func HashString(content string) string {
	hash := sha256.New()
	hash.Write([]byte(content))
	return hex.EncodeToString(hash.Sum(nil))
}
