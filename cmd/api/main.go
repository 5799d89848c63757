package main

import (
	"log"
	"net/http"
	"time"

	"github.com/adichatupes-source/Portfolio/cmd/api/router"
	"github.com/adichatupes-source/Portfolio/config"
	"github.com/adichatupes-source/Portfolio/internal/contentstore"
	"github.com/adichatupes-source/Portfolio/internal/gatewayclient"
	"github.com/adichatupes-source/Portfolio/internal/logger"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	// Without a gateway URL the store serves the bundled datasets only;
	// that configuration is valid, not an error.
	var fetcher contentstore.Fetcher
	if cfg.Gateway.BaseURL != "" {
		fetcher = gatewayclient.New(cfg.Gateway.BaseURL)
	} else {
		logger.Log.Info("no gateway base_url configured; serving fallback datasets")
	}

	store := contentstore.New(fetcher, contentstore.Options{
		FreshFor:   time.Duration(cfg.Cache.FreshFor),
		EvictAfter: time.Duration(cfg.Cache.EvictAfter),
	})

	r := router.New(cfg, store)
	if err := r.Run(cfg.Server.APIAddr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
