package main

import (
	"log"
	"net/http"

	"github.com/adichatupes-source/Portfolio/cmd/gateway/router"
	"github.com/adichatupes-source/Portfolio/config"
	"github.com/adichatupes-source/Portfolio/internal/logger"
	"github.com/adichatupes-source/Portfolio/internal/notion"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	secrets, err := config.LoadNotionSecrets()
	if err != nil {
		log.Fatal(err)
	}
	if !secrets.Complete() {
		// The gateway still serves; every content request answers with the
		// configuration error until the secrets are provided.
		logger.Log.Warn("Notion secrets incomplete; content requests will fail with a configuration error")
	}

	var client *notion.Client
	if secrets.Complete() {
		client = notion.NewClient(secrets.Token)
	}

	r := router.New(cfg, secrets, client)
	if err := r.Run(cfg.Server.GatewayAddr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
