// Package cache stores serialized diagram documents and rendered
// artifacts between runs. Diagram builds are pure functions of the seed
// and move switches, so cached results never go stale; TTLs exist only
// to bound disk and Redis usage.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the storage interface shared by the file, Redis and null
// implementations.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any underlying resources.
	Close() error
}

// DiagramKey builds the cache key of a diagram document from the seed's
// deduplication key and the build switches.
func DiagramKey(seedKey string, opts any) string {
	return hashKey("diagram", seedKey, opts)
}

// ArtifactKey builds the cache key of a rendered artifact (DOT, SVG,
// PNG) from the diagram key and the output format.
func ArtifactKey(diagramKey, format string) string {
	return hashKey("artifact", diagramKey, format)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
