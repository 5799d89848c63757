package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adichatupes-source/Portfolio/cmd/api/handlers"
	"github.com/adichatupes-source/Portfolio/cmd/api/services"
	"github.com/adichatupes-source/Portfolio/config"
	"github.com/adichatupes-source/Portfolio/internal/contentstore"
	"github.com/adichatupes-source/Portfolio/internal/middleware"
)

func New(cfg config.AppConfig, store *contentstore.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check. The API stays healthy without a gateway; it just serves
	// the bundled datasets.
	r.GET("/health", func(c *gin.Context) {
		mode := "live"
		if cfg.Gateway.BaseURL == "" {
			mode = "static"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "content_mode": mode})
	})

	// v1 routes
	api := r.Group("/api/v1")
	{
		blogSvc := services.NewBlogService(store, cfg.Content.BlogPosts.PublishedStatus)
		api.GET("/blog-posts", handlers.ListBlogPostsHandler(blogSvc))
		api.GET("/blog-posts/:slug", handlers.GetBlogPostHandler(blogSvc))

		studySvc := services.NewCaseStudyService(store, cfg.Content.CaseStudies.PublishedStatus)
		api.GET("/case-studies", handlers.ListCaseStudiesHandler(studySvc))
		api.GET("/case-studies/:slug", handlers.GetCaseStudyHandler(studySvc))
	}

	return r
}
