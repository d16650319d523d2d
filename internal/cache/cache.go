package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache memoizes serialized analysis results keyed by document content hash.
type Cache interface {
	// GetResult retrieves a cached result by key.
	// Returns nil on a miss.
	GetResult(ctx context.Context, key string) ([]byte, error)

	// SetResult stores a serialized result with TTL.
	SetResult(ctx context.Context, key string, result []byte, ttl time.Duration) error

	// Close closes the cache connection.
	Close() error
}

// Key derives the cache key for a document's bytes. Identical documents map
// to the same key regardless of filename or origin.
func Key(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
