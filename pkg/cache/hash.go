package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds "prefix:" followed by the hash of the JSON encoding of parts.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// ColoringKey identifies one coloring run. graphHash is the [Hash] of the
// serialized graph; options carries whatever else changes the result, such
// as Iterated Greedy settings, and may be nil.
func ColoringKey(graphHash, algorithm string, seed uint64, options any) string {
	return hashKey("coloring", graphHash, algorithm, seed, options)
}
