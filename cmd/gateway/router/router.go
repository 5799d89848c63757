package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adichatupes-source/Portfolio/cmd/gateway/handlers"
	gwmiddleware "github.com/adichatupes-source/Portfolio/cmd/gateway/middleware"
	"github.com/adichatupes-source/Portfolio/config"
	"github.com/adichatupes-source/Portfolio/internal/middleware"
	"github.com/adichatupes-source/Portfolio/internal/notion"
)

func New(cfg config.AppConfig, secrets config.NotionSecrets, client *notion.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		notionState := "configured"
		if !secrets.Complete() {
			notionState = "unconfigured"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "notion": notionState})
	})

	// Content endpoint with the site's CORS policy. OPTIONS is answered by
	// the middleware before the handler runs.
	api := r.Group("/api", gwmiddleware.CORS(cfg.Gateway.AllowedOrigins))
	{
		api.GET("/content", handlers.ContentHandler(secrets, client))
		api.OPTIONS("/content", handlers.ContentHandler(secrets, client))
	}

	return r
}
