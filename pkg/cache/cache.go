// Package cache stores computed layouts and rendered artifacts.
//
// # Backends
//
//   - [FileCache]: JSON files under the user cache directory (CLI default)
//   - [RedisCache]: a shared Redis instance (server deployments)
//   - [MongoCache]: a MongoDB collection with a TTL index
//   - [NullCache]: caching disabled
//
// [Open] builds a backend from [Options]. All backends are safe for
// concurrent use.
//
// # Keys
//
// A [Keyer] derives keys from content hashes. Layout keys combine the hash of
// the input document with every option that affects geometry; artifact keys
// combine the hash of the layout with the output format options:
//
//	k := cache.NewDefaultKeyer()
//	key := k.LayoutKey(cache.Hash(input), cache.LayoutKeyOpts{Kind: "graph", Width: 320})
//
// [ScopedKeyer] prefixes every key, for sharing one backend between tenants
// or environments.
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (false, nil error), not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 stores without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by backends that can drop all entries at once.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Keyer derives cache keys.
type Keyer interface {
	LayoutKey(inputHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts lists everything that changes a computed layout.
type LayoutKeyOpts struct {
	Kind              string     `json:"kind"`
	Width             float64    `json:"width"`
	Height            float64    `json:"height"`
	NodeSize          float64    `json:"node_size"`
	LevelSpacing      float64    `json:"level_spacing,omitempty"`
	Iterations        int        `json:"iterations,omitempty"`
	CircularThreshold int        `json:"circular_threshold,omitempty"`
	Badge             [4]float64 `json:"badge"`
	Palette           []string   `json:"palette,omitempty"`
	SequentialIDs     bool       `json:"sequential_ids,omitempty"`
}

// ArtifactKeyOpts lists everything that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Theme  string `json:"theme,omitempty"`
	Labels bool   `json:"labels"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(inputHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", inputHash, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
