package utils

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// HashContent returns the hex BLAKE3 digest of data.
func HashContent(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
