package core

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint returns the hex encoded BLAKE3-256 digest of content.
func Fingerprint(content []byte) string {
	sum := blake3.Sum256(content)
	return hex.EncodeToString(sum[:])
}

