package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// MeshKey derives a cache key for a serialized colored mesh.
// The key format is: mesh:hash(data).
func MeshKey(data []byte) string {
	return "mesh:" + Hash(data)
}
