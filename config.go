package brochure

import "time"

// SiteConfig holds all configuration for a brochure site.
type SiteConfig struct {
	Name        string // Site name (default "Brochure")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags

	Addr string // Listen address (default ":3000")

	StoreBaseURL string // Content store endpoint; empty means default-content-only mode
	StoreAPIKey  string // Content store API key
	ContentKey   string // Store key holding the document (default "page-content")

	AdminUsername string // Required: admin login username
	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session cookie secret
	CookieSecure  bool   // Set true for HTTPS

	ContentCacheTTL time.Duration // Resolver cache interval (default 1h)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Brochure"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentKey == "" {
		c.ContentKey = "page-content"
	}
	if c.ContentCacheTTL == 0 {
		c.ContentCacheTTL = time.Hour
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes, before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets
// (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithContentCache replaces the default TTL cache with a custom
// ContentCache implementation.
func WithContentCache(cache ContentCache) Option {
	return func(a *App) {
		a.cache = cache
	}
}

// WithRegenerator replaces the default regeneration trigger (the
// resolver's own cache invalidation) with an external one, e.g. a CDN
// purge. Failures from it are warnings, never save failures.
func WithRegenerator(r Regenerator) Option {
	return func(a *App) {
		a.regen = r
	}
}
