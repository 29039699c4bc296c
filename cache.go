package brochure

import (
	"sync"
	"time"
)

// ContentCache is the cache the Resolver reads through. It is an
// explicit dependency rather than a process-wide singleton so the
// interval expiry and the invalidate-on-save path can be tested
// independently.
type ContentCache interface {
	// Get returns the cached document and true while the entry is fresh.
	Get() (ContentDocument, bool)
	// Set stores doc and restarts the freshness interval.
	Set(doc ContentDocument)
	// Invalidate clears the entry so the next read goes to the store.
	Invalidate()
}

// TTLCache holds the last resolved document for a fixed interval.
type TTLCache struct {
	mu      sync.RWMutex
	doc     ContentDocument
	ok      bool
	fetched time.Time
	ttl     time.Duration
}

// NewTTLCache creates a TTLCache with the given freshness interval.
func NewTTLCache(ttl time.Duration) *TTLCache {
	return &TTLCache{ttl: ttl}
}

// Get returns a copy of the cached document while it is fresh.
func (c *TTLCache) Get() (ContentDocument, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.ok || time.Since(c.fetched) >= c.ttl {
		return ContentDocument{}, false
	}
	return c.doc.Clone(), true
}

// Set stores doc and restarts the freshness interval.
func (c *TTLCache) Set(doc ContentDocument) {
	c.mu.Lock()
	c.doc = doc.Clone()
	c.ok = true
	c.fetched = time.Now()
	c.mu.Unlock()
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *TTLCache) Invalidate() {
	c.mu.Lock()
	c.doc = ContentDocument{}
	c.ok = false
	c.mu.Unlock()
}
