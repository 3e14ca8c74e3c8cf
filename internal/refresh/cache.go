package refresh

import "sync"

// Cache holds the latest snapshot per round. Writes are
// last-write-wins on FetchedAt: a stale snapshot arriving after a
// newer one is discarded, never merged.
type Cache struct {
	mu     sync.RWMutex
	latest map[string]Snapshot // key: roundID
}

// NewCache creates an empty snapshot cache.
func NewCache() *Cache {
	return &Cache{latest: make(map[string]Snapshot)}
}

// Put stores the snapshot unless a newer one for the same round is
// already cached. It reports whether the snapshot was accepted.
func (c *Cache) Put(snap Snapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur, ok := c.latest[snap.RoundID]; ok && cur.FetchedAt.After(snap.FetchedAt) {
		return false
	}
	c.latest[snap.RoundID] = snap
	return true
}

// Get returns the latest snapshot for a round, if any.
func (c *Cache) Get(roundID string) (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap, ok := c.latest[roundID]
	return snap, ok
}
