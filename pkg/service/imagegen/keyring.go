package imagegen

import "sync/atomic"

// FallbackAPIKey is handed out when no credentials are configured, so
// the client always has something to send. It may well be rejected
// upstream; that failure surfaces through the client, not here.
const FallbackAPIKey = "infip-bc358361"

// KeyRing hands out API credentials round-robin so load spreads across
// rate-limited keys. The pool is read-only after construction; the only
// mutable state is the atomic cursor shared by all callers.
type KeyRing struct {
	keys   []string
	cursor atomic.Uint64
}

// NewKeyRing builds a ring from the given keys, dropping empty entries
func NewKeyRing(keys []string) *KeyRing {
	filtered := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			filtered = append(filtered, k)
		}
	}
	return &KeyRing{keys: filtered}
}

// Next returns the next credential in the cycle. It never fails and
// never returns an empty string: an empty ring yields FallbackAPIKey.
func (r *KeyRing) Next() string {
	if len(r.keys) == 0 {
		return FallbackAPIKey
	}
	n := r.cursor.Add(1) - 1
	return r.keys[n%uint64(len(r.keys))]
}

// Size returns the number of configured keys (0 means fallback only)
func (r *KeyRing) Size() int {
	return len(r.keys)
}
