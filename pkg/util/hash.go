// Package util carries small provenance helpers shared by the commands.
package util

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/google/uuid"
)

// Digest is a quick content hasher for provenance logging.
func Digest(value []byte) string {
	hasher := md5.New()
	hasher.Write(value)
	return hex.EncodeToString(hasher.Sum(nil))
}

// ContentUUID derives a stable UUID from a byte buffer, so identical inputs
// map to identical ids across runs.
func ContentUUID(value []byte) string {
	hasher := md5.New()
	hasher.Write(value)
	hash := hasher.Sum(nil)
	id, err := uuid.FromBytes(hash[:16])
	if err != nil {
		return ""
	}
	return id.String()
}
