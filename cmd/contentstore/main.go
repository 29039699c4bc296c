// Command contentstore runs the key-value blob service backing a
// brochure site. It speaks the same protocol as hosted KV products:
// GET/PUT /{key} with an X-API-Key header and a {key, value} read
// envelope.
package main

import (
	"log"
	"net/http"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/eringen/brochure/contentstore"
)

type config struct {
	Addr         string `env:"STORE_ADDR" envDefault:":4000"`
	DatabasePath string `env:"STORE_DATABASE_PATH" envDefault:"data/contentstore.db"`
	APIKey       string `env:"STORE_API_KEY,required"`
}

func main() {
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("contentstore: parse config: %v", err)
	}

	store, err := contentstore.NewStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("contentstore: init store: %v", err)
	}
	defer store.Close()

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	contentstore.NewHandler(store, cfg.APIKey).Register(e)

	if err := e.Start(cfg.Addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
