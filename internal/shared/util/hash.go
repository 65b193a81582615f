package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey maps a principal (user id or guest:<id>) to the hex digest
// used as its object-store prefix, so raw ids never appear in keys.
func HashUserKey(principal string) string {
	sum := sha256.Sum256([]byte(principal))
	return hex.EncodeToString(sum[:])
}
