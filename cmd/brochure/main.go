// Command brochure serves the marketing site and its admin panel.
// Configuration comes from the environment (and an optional .env file
// in the working directory).
package main

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/eringen/brochure"
	"github.com/eringen/brochure/views"
)

type config struct {
	SiteName        string        `env:"SITE_NAME" envDefault:"Brochure"`
	SiteURL         string        `env:"SITE_URL" envDefault:"http://localhost:3000"`
	SiteDescription string        `env:"SITE_DESCRIPTION"`
	Addr            string        `env:"ADDR" envDefault:":3000"`
	StoreBaseURL    string        `env:"KV_API_BASE_URL"`
	StoreAPIKey     string        `env:"KV_API_KEY"`
	ContentKey      string        `env:"CONTENT_KEY" envDefault:"page-content"`
	AdminUsername   string        `env:"ADMIN_USERNAME,required"`
	AdminPassword   string        `env:"ADMIN_PASSWORD,required"`
	SessionSecret   string        `env:"SESSION_SECRET,required"`
	CookieSecure    bool          `env:"COOKIE_SECURE"`
	ContentCacheTTL time.Duration `env:"CONTENT_CACHE_TTL" envDefault:"1h"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"public"`
}

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("brochure: parse config: %v", err)
	}

	app := brochure.New(brochure.SiteConfig{
		Name:            cfg.SiteName,
		URL:             cfg.SiteURL,
		Description:     cfg.SiteDescription,
		Addr:            cfg.Addr,
		StoreBaseURL:    cfg.StoreBaseURL,
		StoreAPIKey:     cfg.StoreAPIKey,
		ContentKey:      cfg.ContentKey,
		AdminUsername:   cfg.AdminUsername,
		AdminPassword:   cfg.AdminPassword,
		SessionSecret:   cfg.SessionSecret,
		CookieSecure:    cfg.CookieSecure,
		ContentCacheTTL: cfg.ContentCacheTTL,
	}, views.Default(), brochure.WithStaticDir(cfg.StaticDir))

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
