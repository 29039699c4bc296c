// Package brochure is a marketing-site engine built with Go, Echo, and
// templ. It renders a landing page whose copy lives as a single JSON
// document in a remote key-value store, falls back to a bundled default
// whenever that store cannot serve a valid document, and ships an
// admin panel for editing the document behind a session-cookie gate.
//
// Users provide their own templ components via the ViewFuncs struct;
// brochure handles content resolution, caching, authentication, and
// the HTTP surface.
package brochure

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds user-provided templ components that the engine calls
// when rendering pages. This is the inversion-of-control mechanism that
// lets users own and customize all templates.
type ViewFuncs struct {
	Home        func(doc ContentDocument, cfg SiteConfig) templ.Component
	AdminLogin  func(showError bool, csrfToken string) templ.Component
	AdminEditor func(cfg SiteConfig, csrfToken string) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central brochure application. It wires together the store
// client, resolver, session gate, middleware, and user templates.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Resolver *Resolver
	Views    ViewFuncs

	cache        ContentCache
	regen        Regenerator
	loginLimiter *loginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a brochure App with the given configuration and views.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the resolver, middleware, and routes, then starts
// the HTTP server.
func (a *App) Start() error {
	if err := a.setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setup() error {
	if a.Config.AdminUsername == "" {
		return fmt.Errorf("brochure: AdminUsername is required")
	}
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("brochure: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("brochure: SessionSecret is required")
	}

	if a.cache == nil {
		a.cache = NewTTLCache(a.Config.ContentCacheTTL)
	}
	client := NewKVClient(a.Config.StoreBaseURL, a.Config.StoreAPIKey)
	a.Resolver = NewResolver(client, a.cache, a.Config.ContentKey)
	if a.regen == nil {
		a.regen = a.Resolver
	}

	a.loginLimiter = newLoginLimiter(loginRate, loginBurst)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Serve embedded engine assets under /public/, falling through to
	// the user's static dir for everything else.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/editor.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes — content reads are never guarded.
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/", a.handleHome)
	e.GET("/content", a.handleContentGet)

	// Admin API
	e.PUT("/content", a.handleContentPut)
	e.POST("/content/reset", a.handleContentReset)
	e.POST("/revalidate", a.handleRevalidate)
	e.POST("/auth/login", a.handleLogin)
	e.POST("/auth/logout", a.handleLogout)
	e.GET("/auth/check", a.handleAuthCheck)

	// Admin panel
	e.GET("/admin/", a.handleAdmin)
}
