package brochure

import "context"

// Regenerator marks cached renderings of a route stale so the next
// request recomputes them from a fresh resolve. Implementations must
// be idempotent; the save path treats a failure as a soft warning
// because the cache expires on its own at the end of its interval.
type Regenerator interface {
	Invalidate(route string) error
}

// Resolver mediates between the content store and the bundled default
// document. Reads always succeed: a store that is unconfigured,
// unreachable, or serving a malformed document yields the default
// instead of an error. Writes validate before touching the network.
type Resolver struct {
	client *KVClient
	cache  ContentCache
	key    string
}

// NewResolver creates a Resolver over client and cache. key is the
// store key holding the document.
func NewResolver(client *KVClient, cache ContentCache, key string) *Resolver {
	return &Resolver{client: client, cache: cache, key: key}
}

// Resolve returns the current document. The cached copy is served
// while fresh; otherwise the store is read once and the result cached.
// A document that fails validation is treated the same as an
// unavailable store: the bundled default is served, never a
// partially-broken payload.
func (r *Resolver) Resolve(ctx context.Context) ContentDocument {
	if doc, ok := r.cache.Get(); ok {
		return doc
	}
	doc, err := r.client.Get(ctx, r.key)
	if err == nil && doc.Validate() == nil {
		r.cache.Set(doc)
		return doc
	}
	def := DefaultContent()
	r.cache.Set(def)
	return def
}

// Persist validates doc and writes it to the store. An invalid
// document is rejected without a network call. On success the cache is
// invalidated so the next Resolve picks up the write immediately
// instead of waiting out the interval.
func (r *Resolver) Persist(ctx context.Context, doc ContentDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if err := r.client.Put(ctx, r.key, doc); err != nil {
		return err
	}
	r.cache.Invalidate()
	return nil
}

// Invalidate implements Regenerator. The site renders a single
// document, so the route argument is accepted and ignored.
func (r *Resolver) Invalidate(route string) error {
	r.cache.Invalidate()
	return nil
}
